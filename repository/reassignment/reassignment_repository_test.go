package reassignment_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/repository/reassignment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"id", "product_id", "old_rack_id", "new_rack_id", "reason", "requested_by", "reassigned_at"}

func TestInsertTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "mysql")
	repo := reassignment.NewReassignmentRepository(sqlxDB)

	mock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO re_assignment`)).
		WithArgs(uint64(4), uint64(1), uint64(6), constant.ReassignReasonPolicy, "supervisor-2", at).
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := repo.InsertTx(context.Background(), tx, &model.ReassignmentRecord{
		ProductID:    4,
		OldRackID:    1,
		NewRackID:    6,
		Reason:       constant.ReassignReasonPolicy,
		RequestedBy:  "supervisor-2",
		ReassignedAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := reassignment.NewReassignmentRepository(sqlx.NewDb(db, "mysql"))

	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM re_assignment ORDER BY id DESC LIMIT ?`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(7, 4, 6, 2, "manual", "stocker-7", at).
			AddRow(5, 4, 1, 6, "policy", "supervisor-2", at))

	got, err := repo.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(7), got[0].ID)
	assert.Equal(t, constant.ReassignReasonManual, got[0].Reason)
	assert.Equal(t, uint64(6), got[1].NewRackID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
