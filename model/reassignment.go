package model

import (
	"time"

	"github.com/muhammadheryan/warehouse/constant"
)

// ReassignmentRecord is one immutable entry of the reassignment log.
type ReassignmentRecord struct {
	ID           uint64                  `db:"id" json:"id"`
	ProductID    uint64                  `db:"product_id" json:"product_id"`
	OldRackID    uint64                  `db:"old_rack_id" json:"old_rack_id"`
	NewRackID    uint64                  `db:"new_rack_id" json:"new_rack_id"`
	Reason       constant.ReassignReason `db:"reason" json:"reason"`
	RequestedBy  string                  `db:"requested_by" json:"requested_by"`
	ReassignedAt time.Time               `db:"reassigned_at" json:"reassigned_at"`
}

// ReassignResult separates "moved" from "already on the best rack".
type ReassignResult struct {
	Moved     bool                `json:"moved"`
	ProductID uint64              `json:"product_id"`
	RackID    uint64              `json:"rack_id"`
	Record    *ReassignmentRecord `json:"record,omitempty"`
}
