package report

import (
	"context"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	reportrepo "github.com/muhammadheryan/warehouse/repository/report"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/export"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

var log = logger.Component("report")

// ReportApp exposes read-only projections. Empty results are not errors.
type ReportApp interface {
	TopSelling(ctx context.Context, n int) ([]model.TopSellingProduct, error)
	MostPopular(ctx context.Context, n int) ([]model.PopularProduct, error)
	RackUtilization(ctx context.Context, minRatio float64) ([]model.RackUtilization, error)
	StorageComparison(ctx context.Context) ([]model.StorageComparisonRow, error)
	PickerRackProducts(ctx context.Context) ([]model.PickerRackProduct, error)
}

type reportAppImpl struct {
	config     *config.Config
	reportRepo reportrepo.ReportRepository
}

func NewReportApp(config *config.Config, reportRepo reportrepo.ReportRepository) ReportApp {
	return &reportAppImpl{
		config:     config,
		reportRepo: reportRepo,
	}
}

func (s *reportAppImpl) limit(n int) int {
	if n <= 0 {
		n = constant.DefaultTopN
	}
	if maxRows := s.config.Warehouse.ReportMaxRows; maxRows > 0 && n > maxRows {
		n = maxRows
	}
	return n
}

func (s *reportAppImpl) TopSelling(ctx context.Context, n int) ([]model.TopSellingProduct, error) {
	rows, err := s.reportRepo.TopSelling(ctx, s.limit(n))
	if err != nil {
		log.Error("[TopSelling] error reportRepo.TopSelling", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *reportAppImpl) MostPopular(ctx context.Context, n int) ([]model.PopularProduct, error) {
	rows, err := s.reportRepo.MostPopular(ctx, s.limit(n))
	if err != nil {
		log.Error("[MostPopular] error reportRepo.MostPopular", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

// RackUtilization lists racks whose occupants/capacity is at least minRatio, a value in [0, 1].
func (s *reportAppImpl) RackUtilization(ctx context.Context, minRatio float64) ([]model.RackUtilization, error) {
	if minRatio < 0 || minRatio > 1 {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "min_ratio must be between 0 and 1")
	}
	rows, err := s.reportRepo.RackUtilization(ctx, minRatio)
	if err != nil {
		log.Error("[RackUtilization] error reportRepo.RackUtilization", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *reportAppImpl) StorageComparison(ctx context.Context) ([]model.StorageComparisonRow, error) {
	rows, err := s.reportRepo.StorageComparison(ctx)
	if err != nil {
		log.Error("[StorageComparison] error reportRepo.StorageComparison", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func (s *reportAppImpl) PickerRackProducts(ctx context.Context) ([]model.PickerRackProduct, error) {
	rows, err := s.reportRepo.PickerRackProducts(ctx)
	if err != nil {
		log.Error("[PickerRackProducts] error reportRepo.PickerRackProducts", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rows, nil
}

func TopSellingTable(rows []model.TopSellingProduct) export.Table {
	t := export.Table{Name: "top-selling", Headers: []string{"product_id", "name", "total_quantity"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{r.ProductID, r.Name, r.TotalQuantity})
	}
	return t
}

func MostPopularTable(rows []model.PopularProduct) export.Table {
	t := export.Table{Name: "most-popular", Headers: []string{"product_id", "name", "popularity"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{r.ProductID, r.Name, r.Popularity})
	}
	return t
}

func RackUtilizationTable(rows []model.RackUtilization) export.Table {
	t := export.Table{Name: "rack-utilization", Headers: []string{"rack_id", "aisle_number", "level", "capacity", "occupants", "ratio"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{r.RackID, r.AisleNumber, r.Level, r.Capacity, r.Occupants, r.Ratio})
	}
	return t
}

func StorageComparisonTable(rows []model.StorageComparisonRow) export.Table {
	t := export.Table{Name: "storage-comparison", Headers: []string{"product_id", "product_name", "rack_id", "aisle_number", "level"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{deref(r.ProductID), deref(r.ProductName), deref(r.RackID), deref(r.AisleNumber), deref(r.Level)})
	}
	return t
}

func PickerRackProductsTable(rows []model.PickerRackProduct) export.Table {
	t := export.Table{Name: "picker-racks", Headers: []string{"picker_id", "picker_name", "rack_id", "product_id", "product_name"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{r.PickerID, r.PickerName, r.RackID, deref(r.ProductID), deref(r.ProductName)})
	}
	return t
}

// deref turns a nil pointer into an empty cell.
func deref[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
