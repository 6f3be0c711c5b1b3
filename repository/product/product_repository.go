package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	Upsert(ctx context.Context, data *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
	LockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
	MissingTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]uint64, error)
	IncrementPopularityTx(ctx context.Context, tx *sqlx.Tx, id uint64, by int) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns    = `id, name, weight, height, width, breadth, popularity`
	listProducts      = `SELECT ` + productColumns + ` FROM product ORDER BY id`
	getProductDetail  = `SELECT ` + productColumns + ` FROM product WHERE id = ?`
	upsertProduct     = `INSERT INTO product (id, name, weight, height, width, breadth, popularity)
VALUES (?, ?, ?, ?, ?, ?, 0)
ON DUPLICATE KEY UPDATE name = VALUES(name), weight = VALUES(weight), height = VALUES(height),
width = VALUES(width), breadth = VALUES(breadth)`
	deleteProduct     = `DELETE FROM product WHERE id = ?`
	lockProduct       = `SELECT id FROM product WHERE id = ? FOR UPDATE`
	lockProducts      = `SELECT id FROM product WHERE id IN (?) ORDER BY id FOR UPDATE`
	incPopularity     = `UPDATE product SET popularity = popularity + ? WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var it model.ProductEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var detail model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) Upsert(ctx context.Context, data *model.ProductEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertProduct, data.ID, data.Name, data.Weight, data.Height, data.Width, data.Breadth)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteProduct, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// LockTx takes an exclusive lock on one product row and reports whether it exists.
// Placement changes for a product serialize on this row, including the first one.
func (s *SQL) LockTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	var found uint64
	if err := tx.QueryRowxContext(ctx, lockProduct, id).Scan(&found); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MissingTx locks the given products in id order and returns the ids that do not exist.
// The exclusive lock is taken up front because the same transaction bumps popularity.
func (s *SQL) MissingTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(lockProducts, ids)
	if err != nil {
		return nil, err
	}
	found := make([]uint64, 0, len(ids))
	if err := tx.SelectContext(ctx, &found, tx.Rebind(query), args...); err != nil {
		return nil, err
	}

	seen := make(map[uint64]struct{}, len(found))
	for _, id := range found {
		seen[id] = struct{}{}
	}
	missing := make([]uint64, 0)
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (s *SQL) IncrementPopularityTx(ctx context.Context, tx *sqlx.Tx, id uint64, by int) error {
	_, err := tx.ExecContext(ctx, incPopularity, by, id)
	return err
}
