package reassignment

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

// ReassignmentRepository is append-only: there is deliberately no update or delete.
type ReassignmentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, rec *model.ReassignmentRecord) (uint64, error)
	ListRecent(ctx context.Context, limit int) ([]model.ReassignmentRecord, error)
	ListSince(ctx context.Context, afterID uint64) ([]model.ReassignmentRecord, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReassignmentRepository(conn *sqlx.DB) ReassignmentRepository {
	return &SQL{conn: conn}
}

const (
	recordColumns  = `id, product_id, old_rack_id, new_rack_id, reason, requested_by, reassigned_at`
	insertRecord   = `INSERT INTO re_assignment (product_id, old_rack_id, new_rack_id, reason, requested_by, reassigned_at) VALUES (?, ?, ?, ?, ?, ?)`
	listRecent     = `SELECT ` + recordColumns + ` FROM re_assignment ORDER BY id DESC LIMIT ?`
	listSinceQuery = `SELECT ` + recordColumns + ` FROM re_assignment WHERE id > ? ORDER BY id`
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, rec *model.ReassignmentRecord) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertRecord, rec.ProductID, rec.OldRackID, rec.NewRackID, rec.Reason, rec.RequestedBy, rec.ReassignedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListRecent(ctx context.Context, limit int) ([]model.ReassignmentRecord, error) {
	res := make([]model.ReassignmentRecord, 0)
	if err := r.conn.SelectContext(ctx, &res, listRecent, limit); err != nil {
		return nil, err
	}
	return res, nil
}

// ListSince returns records with id greater than afterID in log order.
func (r *SQL) ListSince(ctx context.Context, afterID uint64) ([]model.ReassignmentRecord, error) {
	res := make([]model.ReassignmentRecord, 0)
	if err := r.conn.SelectContext(ctx, &res, listSinceQuery, afterID); err != nil {
		return nil, err
	}
	return res, nil
}
