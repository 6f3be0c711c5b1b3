package model

import "github.com/shopspring/decimal"

type RackEntity struct {
	ID          uint64          `db:"id" json:"id"`
	AisleNumber int             `db:"aisle_number" json:"aisle_number"`
	Level       int             `db:"level" json:"level"`
	Distance    decimal.Decimal `db:"distance" json:"distance"`
	Capacity    int             `db:"capacity" json:"capacity"`
}

// RackOccupancy is a rack together with its current number of distinct products.
type RackOccupancy struct {
	RackEntity
	Occupants int `db:"occupants" json:"occupants"`
}

// Full reports whether the rack cannot take another product.
func (r RackOccupancy) Full() bool {
	return r.Occupants >= r.Capacity
}

type UpsertRackRequest struct {
	ID          uint64          `json:"-" validate:"required"`
	AisleNumber int             `json:"aisle_number" validate:"gte=0"`
	Level       int             `json:"level" validate:"gte=0"`
	Distance    decimal.Decimal `json:"distance" validate:"gte=0"`
	// Capacity of zero falls back to the configured default.
	Capacity int `json:"capacity" validate:"gte=0"`
}
