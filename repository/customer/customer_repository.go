package customer

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CustomerRepository interface {
	Create(ctx context.Context, req *model.CustomerEntity) (*model.CustomerEntity, error)
	Get(ctx context.Context, filter *model.CustomerFilter) (*model.CustomerEntity, error)
	List(ctx context.Context) ([]model.CustomerEntity, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	ExistsTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error)
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

const (
	insertCustomerQuery = `INSERT INTO customer (name, email, phone, created_at) VALUES (?, ?, ?, ?)`
	getCustomerBase     = `SELECT id, name, email, phone, created_at FROM customer WHERE true`
	listCustomersQuery  = `SELECT id, name, email, phone, created_at FROM customer ORDER BY id`
	deleteCustomerQuery = `DELETE FROM customer WHERE id = ?`
	// shared lock keeps the customer from being deleted until the order commits
	customerExistsTx = `SELECT id FROM customer WHERE id = ? LOCK IN SHARE MODE`
)

func (s *SQL) Create(ctx context.Context, data *model.CustomerEntity) (*model.CustomerEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCustomerQuery, data.Name, data.Email, data.Phone, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.CustomerFilter) (*model.CustomerEntity, error) {
	query := getCustomerBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.CustomerEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.CustomerEntity, error) {
	res := make([]model.CustomerEntity, 0)
	if err := s.conn.SelectContext(ctx, &res, listCustomersQuery); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteCustomerQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) ExistsTx(ctx context.Context, tx *sqlx.Tx, id uint64) (bool, error) {
	var found uint64
	if err := tx.GetContext(ctx, &found, customerExistsTx, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
