package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type StorageRepository interface {
	GetPlacement(ctx context.Context, productID uint64) (*model.Placement, error)
	ListOccupants(ctx context.Context, rackID uint64) ([]uint64, error)
	ListPlacements(ctx context.Context) ([]model.Placement, error)
	GetPlacementForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Placement, error)
	GetPlacementShareTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Placement, error)
	CountOccupantsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64) (int, error)
	OccupancyByRackTx(ctx context.Context, tx *sqlx.Tx) (map[uint64]int, error)
	UpsertPlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64, at time.Time) error
	InsertPlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64, at time.Time) error
	DeletePlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewStorageRepository(conn *sqlx.DB) StorageRepository {
	return &SQL{conn: conn}
}

const (
	getPlacement        = `SELECT product_id, rack_id, placed_at FROM product_storage WHERE product_id = ?`
	getPlacementLock    = getPlacement + ` FOR UPDATE`
	getPlacementShare   = getPlacement + ` LOCK IN SHARE MODE`
	listOccupants       = `SELECT product_id FROM product_storage WHERE rack_id = ? ORDER BY product_id`
	listPlacements      = `SELECT product_id, rack_id, placed_at FROM product_storage ORDER BY product_id`
	countOccupants      = `SELECT COUNT(*) FROM product_storage WHERE rack_id = ?`
	occupancyByRack     = `SELECT rack_id, COUNT(*) AS occupants FROM product_storage GROUP BY rack_id`
	upsertPlacement     = `INSERT INTO product_storage (product_id, rack_id, placed_at) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE rack_id = VALUES(rack_id), placed_at = VALUES(placed_at)`
	insertPlacement = `INSERT INTO product_storage (product_id, rack_id, placed_at) VALUES (?, ?, ?)`
	deletePlacement = `DELETE FROM product_storage WHERE product_id = ? AND rack_id = ?`
)

func (r *SQL) GetPlacement(ctx context.Context, productID uint64) (*model.Placement, error) {
	return getPlacementWith(ctx, r.conn, getPlacement, productID)
}

func (r *SQL) ListOccupants(ctx context.Context, rackID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, listOccupants, rackID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQL) ListPlacements(ctx context.Context) ([]model.Placement, error) {
	res := make([]model.Placement, 0)
	if err := r.conn.SelectContext(ctx, &res, listPlacements); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetPlacementForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Placement, error) {
	return getPlacementWith(ctx, tx, getPlacementLock, productID)
}

func (r *SQL) GetPlacementShareTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.Placement, error) {
	return getPlacementWith(ctx, tx, getPlacementShare, productID)
}

func (r *SQL) CountOccupantsTx(ctx context.Context, tx *sqlx.Tx, rackID uint64) (int, error) {
	var n int
	if err := tx.GetContext(ctx, &n, countOccupants, rackID); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQL) OccupancyByRackTx(ctx context.Context, tx *sqlx.Tx) (map[uint64]int, error) {
	rows, err := tx.QueryxContext(ctx, occupancyByRack)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[uint64]int)
	for rows.Next() {
		var (
			rackID    uint64
			occupants int
		)
		if err := rows.Scan(&rackID, &occupants); err != nil {
			return nil, err
		}
		res[rackID] = occupants
	}
	return res, rows.Err()
}

func (r *SQL) UpsertPlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64, at time.Time) error {
	_, err := tx.ExecContext(ctx, upsertPlacement, productID, rackID, at)
	return err
}

func (r *SQL) InsertPlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64, at time.Time) error {
	_, err := tx.ExecContext(ctx, insertPlacement, productID, rackID, at)
	return err
}

// DeletePlacementTx removes the row only if it still points at rackID and fails otherwise.
func (r *SQL) DeletePlacementTx(ctx context.Context, tx *sqlx.Tx, productID, rackID uint64) error {
	res, err := tx.ExecContext(ctx, deletePlacement, productID, rackID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return ErrPlacementChanged
	}
	return nil
}

func getPlacementWith(ctx context.Context, q sqlx.QueryerContext, query string, productID uint64) (*model.Placement, error) {
	var p model.Placement
	if err := sqlx.GetContext(ctx, q, &p, query, productID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
