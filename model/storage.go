package model

import "time"

// Placement is a row of the storage ledger.
type Placement struct {
	ProductID uint64    `db:"product_id" json:"product_id"`
	RackID    uint64    `db:"rack_id" json:"rack_id"`
	PlacedAt  time.Time `db:"placed_at" json:"placed_at"`
}

type PlaceProductRequest struct {
	RackID uint64 `json:"rack_id" validate:"required"`
}

type PlaceProductResponse struct {
	Placement  Placement           `json:"placement"`
	Relocation *ReassignmentRecord `json:"relocation,omitempty"`
}

type RackOccupantsResponse struct {
	RackID     uint64   `json:"rack_id"`
	Capacity   int      `json:"capacity"`
	ProductIDs []uint64 `json:"product_ids"`
}
