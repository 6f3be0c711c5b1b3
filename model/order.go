package model

import "time"

type OrderEntity struct {
	ID         uint64    `db:"id" json:"id"`
	CustomerID uint64    `db:"customer_id" json:"customer_id"`
	OrderDate  time.Time `db:"order_date" json:"order_date"`
}

type OrderItemEntity struct {
	OrderID   uint64 `db:"order_id" json:"order_id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

type InsertOrderTxItem struct {
	CustomerID uint64
	OrderDate  time.Time
}

// CommitOrderRequest carries an explicit cart; an empty body commits the staged cart.
type CommitOrderRequest struct {
	Items []CartItem `json:"items" validate:"omitempty,dive"`
}

type CommitOrderResponse struct {
	OrderID   uint64    `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
	ItemCount int       `json:"item_count"`
}

type OrderDetail struct {
	OrderEntity
	Items []OrderItemEntity `json:"items"`
}
