package model

import "time"

type PickerEntity struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Shift string `db:"shift" json:"shift"`
}

type UpsertPickerRequest struct {
	ID    uint64 `json:"-" validate:"required"`
	Name  string `json:"name" validate:"required,max=100"`
	Shift string `json:"shift" validate:"required,max=20"`
}

type PickerAssignment struct {
	PickerID   uint64    `db:"picker_id" json:"picker_id"`
	RackID     uint64    `db:"rack_id" json:"rack_id"`
	OrderID    uint64    `db:"order_id" json:"order_id"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

// PickerAssignmentView joins an assignment with the order date it routes.
type PickerAssignmentView struct {
	PickerAssignment
	OrderDate time.Time `db:"order_date" json:"order_date"`
}

type AssignPickerRequest struct {
	PickerID uint64 `json:"picker_id" validate:"required"`
}
