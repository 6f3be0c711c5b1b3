package product_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/repository/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "mysql")
	repo := product.NewProductRepository(sqlxDB)

	mock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM product WHERE id IN (?, ?, ?) ORDER BY id FOR UPDATE`)).
		WithArgs(uint64(3), uint64(1), uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	missing, err := repo.MissingTx(context.Background(), tx, []uint64{3, 1, 42})
	require.NoError(t, err)
	assert.Equal(t, []uint64{42}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "mysql")
	repo := product.NewProductRepository(sqlxDB)

	mock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM product WHERE id = ? FOR UPDATE`)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM product WHERE id = ? FOR UPDATE`)).
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	found, err := repo.LockTx(context.Background(), tx, 7)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.LockTx(context.Background(), tx, 8)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingTx_Empty(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := product.NewProductRepository(sqlx.NewDb(db, "mysql"))

	missing, err := repo.MissingTx(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, missing)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := product.NewProductRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery(regexp.QuoteMeta(`FROM product WHERE id = ?`)).
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "weight", "height", "width", "breadth", "popularity"}))

	got, err := repo.GetByID(context.Background(), 8)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := product.NewProductRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product WHERE id = ?`)).
		WithArgs(uint64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 8)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
