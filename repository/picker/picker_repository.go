package picker

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PickerRepository interface {
	List(ctx context.Context) ([]model.PickerEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.PickerEntity, error)
	Upsert(ctx context.Context, data *model.PickerEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewPickerRepository(conn *sqlx.DB) PickerRepository {
	return &SQL{conn: conn}
}

const (
	listPickers  = `SELECT id, name, shift FROM picker ORDER BY id`
	getPicker    = `SELECT id, name, shift FROM picker WHERE id = ?`
	upsertPicker = `INSERT INTO picker (id, name, shift) VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE name = VALUES(name), shift = VALUES(shift)`
	deletePicker = `DELETE FROM picker WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.PickerEntity, error) {
	res := make([]model.PickerEntity, 0)
	if err := s.conn.SelectContext(ctx, &res, listPickers); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PickerEntity, error) {
	var p model.PickerEntity
	if err := s.conn.GetContext(ctx, &p, getPicker, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) Upsert(ctx context.Context, data *model.PickerEntity) error {
	_, err := s.conn.ExecContext(ctx, upsertPicker, data.ID, data.Name, data.Shift)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deletePicker, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
