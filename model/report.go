package model

type TopSellingProduct struct {
	ProductID     uint64 `db:"product_id" json:"product_id"`
	Name          string `db:"name" json:"name"`
	TotalQuantity int64  `db:"total_quantity" json:"total_quantity"`
}

type PopularProduct struct {
	ProductID  uint64 `db:"product_id" json:"product_id"`
	Name       string `db:"name" json:"name"`
	Popularity int64  `db:"popularity" json:"popularity"`
}

type RackUtilization struct {
	RackID      uint64  `db:"rack_id" json:"rack_id"`
	AisleNumber int     `db:"aisle_number" json:"aisle_number"`
	Level       int     `db:"level" json:"level"`
	Capacity    int     `db:"capacity" json:"capacity"`
	Occupants   int     `db:"occupants" json:"occupants"`
	Ratio       float64 `db:"-" json:"ratio"`
}

// StorageComparisonRow is one row of the product x rack outer join; either side may be absent.
type StorageComparisonRow struct {
	ProductID   *uint64 `db:"product_id" json:"product_id"`
	ProductName *string `db:"product_name" json:"product_name"`
	RackID      *uint64 `db:"rack_id" json:"rack_id"`
	AisleNumber *int    `db:"aisle_number" json:"aisle_number"`
	Level       *int    `db:"level" json:"level"`
}

type PickerRackProduct struct {
	PickerID    uint64  `db:"picker_id" json:"picker_id"`
	PickerName  string  `db:"picker_name" json:"picker_name"`
	RackID      uint64  `db:"rack_id" json:"rack_id"`
	ProductID   *uint64 `db:"product_id" json:"product_id"`
	ProductName *string `db:"product_name" json:"product_name"`
}
