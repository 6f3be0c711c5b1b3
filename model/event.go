package model

import (
	"time"

	"github.com/muhammadheryan/warehouse/constant"
)

type Event struct {
	ID         string             `json:"id"`
	Type       constant.EventType `json:"type"`
	Key        string             `json:"key"`
	OccurredAt time.Time          `json:"occurred_at"`
	Payload    interface{}        `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID    uint64     `json:"order_id"`
	CustomerID uint64     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	PlacedBy   string     `json:"placed_by"`
}

type ReassignRequestMessage struct {
	ProductID   uint64 `json:"product_id"`
	RequestedBy string `json:"requested_by"`
}
