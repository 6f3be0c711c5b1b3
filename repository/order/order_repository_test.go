package order_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/repository/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, order.OrderRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	sqlxDB := sqlx.NewDb(db, "mysql")
	return sqlxDB, mock, order.NewOrderRepository(sqlxDB)
}

func TestInsertOrderTx(t *testing.T) {
	db, mock, repo := setup(t)
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	date := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `order` (customer_id, order_date) VALUES (?, ?)")).
		WithArgs(uint64(1), date).
		WillReturnResult(sqlmock.NewResult(17, 1))

	id, err := repo.InsertOrderTx(context.Background(), tx, &model.InsertOrderTxItem{CustomerID: 1, OrderDate: date})
	require.NoError(t, err)
	assert.Equal(t, uint64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertOrderItemsTx_StopsAtFirstFailure(t *testing.T) {
	db, mock, repo := setup(t)
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	insert := regexp.QuoteMeta("INSERT INTO order_item (order_id, product_id, quantity) VALUES (?, ?, ?)")
	mock.ExpectExec(insert).WithArgs(uint64(17), uint64(1), 2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insert).WithArgs(uint64(17), uint64(3), 1).WillReturnError(errors.New("foreign key constraint fails"))

	err = repo.InsertOrderItemsTx(context.Background(), tx, 17, []model.CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
		{ProductID: 5, Quantity: 1},
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_NotFound(t *testing.T) {
	_, mock, repo := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, customer_id, order_date FROM `order` WHERE id = ?")).
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "order_date"}))

	got, err := repo.GetOrder(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
