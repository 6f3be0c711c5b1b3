package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.CartItem) error
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error)
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	ListItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrder     = "INSERT INTO `order` (customer_id, order_date) VALUES (?, ?)"
	insertOrderItem = "INSERT INTO order_item (order_id, product_id, quantity) VALUES (?, ?, ?)"
	getOrder        = "SELECT id, customer_id, order_date FROM `order` WHERE id = ?"
	getOrderShare   = getOrder + " LOCK IN SHARE MODE"
	listItems       = "SELECT order_id, product_id, quantity FROM order_item WHERE order_id = ? ORDER BY product_id"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrder, req.CustomerID, req.OrderDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.CartItem) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItem, orderID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var o model.OrderEntity
	if err := r.conn.GetContext(ctx, &o, getOrder, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *SQL) ListItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error) {
	res := make([]model.OrderItemEntity, 0)
	if err := r.conn.SelectContext(ctx, &res, listItems, orderID); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var detail model.OrderEntity
	row := tx.QueryRowxContext(ctx, getOrderShare, orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) ListItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItemEntity, error) {
	res := make([]model.OrderItemEntity, 0)
	if err := tx.SelectContext(ctx, &res, listItems, orderID); err != nil {
		return nil, err
	}
	return res, nil
}
