package rack

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type RackRepository interface {
	List(ctx context.Context) ([]model.RackEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.RackEntity, error)
	UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.RackEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	LockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.RackEntity, error)
	LockAllTx(ctx context.Context, tx *sqlx.Tx) ([]model.RackEntity, error)
}

func NewRackRepository(conn *sqlx.DB) RackRepository {
	return &SQL{conn: conn}
}

const (
	rackColumns = `id, aisle_number, level, distance, capacity`
	listRacks   = `SELECT ` + rackColumns + ` FROM rack ORDER BY id`
	getRack     = `SELECT ` + rackColumns + ` FROM rack WHERE id = ?`
	upsertRack  = `INSERT INTO rack (id, aisle_number, level, distance, capacity) VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE aisle_number = VALUES(aisle_number), level = VALUES(level),
distance = VALUES(distance), capacity = VALUES(capacity)`
	deleteRack = `DELETE FROM rack WHERE id = ?`
	// rack rows are the serialization point for every placement write
	lockRack     = `SELECT ` + rackColumns + ` FROM rack WHERE id = ? FOR UPDATE`
	lockAllRacks = `SELECT ` + rackColumns + ` FROM rack ORDER BY id FOR UPDATE`
)

func (s *SQL) List(ctx context.Context) ([]model.RackEntity, error) {
	res := make([]model.RackEntity, 0)
	if err := s.conn.SelectContext(ctx, &res, listRacks); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.RackEntity, error) {
	var r model.RackEntity
	if err := s.conn.GetContext(ctx, &r, getRack, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

func (s *SQL) UpsertTx(ctx context.Context, tx *sqlx.Tx, data *model.RackEntity) error {
	_, err := tx.ExecContext(ctx, upsertRack, data.ID, data.AisleNumber, data.Level, data.Distance, data.Capacity)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteRack, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) LockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.RackEntity, error) {
	var r model.RackEntity
	if err := tx.GetContext(ctx, &r, lockRack, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// LockAllTx locks every rack in id order so concurrent movers acquire locks in the same sequence.
func (s *SQL) LockAllTx(ctx context.Context, tx *sqlx.Tx) ([]model.RackEntity, error) {
	res := make([]model.RackEntity, 0)
	if err := tx.SelectContext(ctx, &res, lockAllRacks); err != nil {
		return nil, err
	}
	return res, nil
}
