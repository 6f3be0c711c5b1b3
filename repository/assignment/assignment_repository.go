package assignment

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AssignmentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, rows []model.PickerAssignment) error
	ListForPickerOrderTx(ctx context.Context, tx *sqlx.Tx, pickerID, orderID uint64) ([]model.PickerAssignment, error)
	ListByOrder(ctx context.Context, orderID uint64) ([]model.PickerAssignmentView, error)
	ListByPicker(ctx context.Context, pickerID uint64) ([]model.PickerAssignmentView, error)
}

func NewAssignmentRepository(conn *sqlx.DB) AssignmentRepository {
	return &SQL{conn: conn}
}

const (
	// existing (picker, order, rack) tuples are kept as they were first routed
	insertAssignment = `INSERT IGNORE INTO picker_assignment (picker_id, rack_id, order_id, assigned_at) VALUES (?, ?, ?, ?)`
	listPickerOrder  = `SELECT picker_id, rack_id, order_id, assigned_at FROM picker_assignment
WHERE picker_id = ? AND order_id = ? ORDER BY rack_id`
	listViewBase = "SELECT pa.picker_id, pa.rack_id, pa.order_id, pa.assigned_at, o.order_date " +
		"FROM picker_assignment pa JOIN `order` o ON o.id = pa.order_id "
	listByOrder  = listViewBase + `WHERE pa.order_id = ? ORDER BY pa.picker_id, pa.rack_id`
	listByPicker = listViewBase + `WHERE pa.picker_id = ? ORDER BY o.order_date DESC, pa.order_id DESC, pa.rack_id`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, rows []model.PickerAssignment) error {
	for _, a := range rows {
		if _, err := tx.ExecContext(ctx, insertAssignment, a.PickerID, a.RackID, a.OrderID, a.AssignedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) ListForPickerOrderTx(ctx context.Context, tx *sqlx.Tx, pickerID, orderID uint64) ([]model.PickerAssignment, error) {
	res := make([]model.PickerAssignment, 0)
	if err := tx.SelectContext(ctx, &res, listPickerOrder, pickerID, orderID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) ListByOrder(ctx context.Context, orderID uint64) ([]model.PickerAssignmentView, error) {
	res := make([]model.PickerAssignmentView, 0)
	if err := r.conn.SelectContext(ctx, &res, listByOrder, orderID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) ListByPicker(ctx context.Context, pickerID uint64) ([]model.PickerAssignmentView, error) {
	res := make([]model.PickerAssignmentView, 0)
	if err := r.conn.SelectContext(ctx, &res, listByPicker, pickerID); err != nil {
		return nil, err
	}
	return res, nil
}
