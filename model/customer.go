package model

import "time"

// CustomerEntity represents the customer table entity
type CustomerEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CustomerFilter for querying customers
type CustomerFilter struct {
	ID    uint64
	Email string
}

type RegisterCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=150"`
	Phone string `json:"phone" validate:"required,max=20"`
}
