package report

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warehouse/model"
)

// ReportRepository holds read-only projections; nothing here writes.
type ReportRepository interface {
	TopSelling(ctx context.Context, n int) ([]model.TopSellingProduct, error)
	MostPopular(ctx context.Context, n int) ([]model.PopularProduct, error)
	RackUtilization(ctx context.Context, minRatio float64) ([]model.RackUtilization, error)
	StorageComparison(ctx context.Context) ([]model.StorageComparisonRow, error)
	PickerRackProducts(ctx context.Context) ([]model.PickerRackProduct, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReportRepository(conn *sqlx.DB) ReportRepository {
	return &SQL{conn: conn}
}

const (
	topSellingQuery = `SELECT p.id AS product_id, p.name, SUM(oi.quantity) AS total_quantity
FROM order_item oi
JOIN product p ON p.id = oi.product_id
GROUP BY p.id, p.name
ORDER BY total_quantity DESC, p.id ASC
LIMIT ?`

	mostPopularQuery = `SELECT id AS product_id, name, popularity FROM product ORDER BY popularity DESC, id ASC LIMIT ?`

	rackUtilizationQuery = `SELECT r.id AS rack_id, r.aisle_number, r.level, r.capacity, COUNT(ps.product_id) AS occupants
FROM product_storage ps
RIGHT JOIN rack r ON r.id = ps.rack_id
GROUP BY r.id, r.aisle_number, r.level, r.capacity
HAVING COUNT(ps.product_id) >= r.capacity * ?
ORDER BY occupants / r.capacity DESC, r.id ASC`

	// MySQL has no FULL OUTER JOIN; the UNION adds racks that hold nothing.
	storageComparisonQuery = `SELECT p.id AS product_id, p.name AS product_name, r.id AS rack_id, r.aisle_number, r.level
FROM product p
LEFT JOIN product_storage ps ON ps.product_id = p.id
LEFT JOIN rack r ON r.id = ps.rack_id
UNION ALL
SELECT NULL, NULL, r.id, r.aisle_number, r.level
FROM rack r
LEFT JOIN product_storage ps ON ps.rack_id = r.id
WHERE ps.product_id IS NULL
ORDER BY rack_id IS NULL, rack_id, product_id`

	pickerRackProductsQuery = `SELECT DISTINCT pk.id AS picker_id, pk.name AS picker_name, pa.rack_id, prd.id AS product_id, prd.name AS product_name
FROM picker_assignment pa
JOIN picker pk ON pk.id = pa.picker_id
LEFT JOIN product_storage ps ON ps.rack_id = pa.rack_id
LEFT JOIN product prd ON prd.id = ps.product_id
ORDER BY pk.id, pa.rack_id, prd.id`
)

func (r *SQL) TopSelling(ctx context.Context, n int) ([]model.TopSellingProduct, error) {
	res := make([]model.TopSellingProduct, 0)
	if err := r.conn.SelectContext(ctx, &res, topSellingQuery, n); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) MostPopular(ctx context.Context, n int) ([]model.PopularProduct, error) {
	res := make([]model.PopularProduct, 0)
	if err := r.conn.SelectContext(ctx, &res, mostPopularQuery, n); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) RackUtilization(ctx context.Context, minRatio float64) ([]model.RackUtilization, error) {
	res := make([]model.RackUtilization, 0)
	if err := r.conn.SelectContext(ctx, &res, rackUtilizationQuery, minRatio); err != nil {
		return nil, err
	}
	for i := range res {
		if res[i].Capacity > 0 {
			res[i].Ratio = float64(res[i].Occupants) / float64(res[i].Capacity)
		}
	}
	return res, nil
}

func (r *SQL) StorageComparison(ctx context.Context) ([]model.StorageComparisonRow, error) {
	res := make([]model.StorageComparisonRow, 0)
	if err := r.conn.SelectContext(ctx, &res, storageComparisonQuery); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *SQL) PickerRackProducts(ctx context.Context) ([]model.PickerRackProduct, error) {
	res := make([]model.PickerRackProduct, 0)
	if err := r.conn.SelectContext(ctx, &res, pickerRackProductsQuery); err != nil {
		return nil, err
	}
	return res, nil
}
