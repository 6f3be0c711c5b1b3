package model

import "github.com/shopspring/decimal"

type ProductEntity struct {
	ID         uint64          `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Weight     decimal.Decimal `db:"weight" json:"weight"`
	Height     decimal.Decimal `db:"height" json:"height"`
	Width      decimal.Decimal `db:"width" json:"width"`
	Breadth    decimal.Decimal `db:"breadth" json:"breadth"`
	Popularity int64           `db:"popularity" json:"popularity"`
}

type UpsertProductRequest struct {
	ID      uint64          `json:"-" validate:"required"`
	Name    string          `json:"name" validate:"required,max=100"`
	Weight  decimal.Decimal `json:"weight" validate:"gte=0"`
	Height  decimal.Decimal `json:"height" validate:"gte=0"`
	Width   decimal.Decimal `json:"width" validate:"gte=0"`
	Breadth decimal.Decimal `json:"breadth" validate:"gte=0"`
}
