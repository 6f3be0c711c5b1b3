package report_test

import (
	"context"
	"errors"
	"testing"

	appreport "github.com/muhammadheryan/warehouse/application/report"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	reportmocks "github.com/muhammadheryan/warehouse/mocks/repository/report"
	"github.com/muhammadheryan/warehouse/model"
	cerr "github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (appreport.ReportApp, *reportmocks.ReportRepository) {
	repo := reportmocks.NewReportRepository(t)
	cfg := &config.Config{Warehouse: config.WarehouseConfig{ReportMaxRows: 100}}
	return appreport.NewReportApp(cfg, repo), repo
}

func TestReportApp_TopSelling(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		wantN int
	}{
		{name: "default n", n: 0, wantN: constant.DefaultTopN},
		{name: "explicit n", n: 3, wantN: 3},
		{name: "clamped n", n: 1000, wantN: 100},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app, repo := newApp(t)
			repo.On("TopSelling", mock.Anything, tt.wantN).Return([]model.TopSellingProduct{}, nil).Once()

			got, err := app.TopSelling(context.Background(), tt.n)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestReportApp_RackUtilization(t *testing.T) {
	t.Run("threshold out of range", func(t *testing.T) {
		app, _ := newApp(t)
		_, err := app.RackUtilization(context.Background(), 1.5)
		assert.Equal(t, constant.ErrInvalidRequest, cerr.TypeOf(err))
	})

	t.Run("rows passed through", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("RackUtilization", mock.Anything, 0.5).Return([]model.RackUtilization{
			{RackID: 1, Capacity: 2, Occupants: 2, Ratio: 1},
		}, nil).Once()

		got, err := app.RackUtilization(context.Background(), 0.5)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("store error", func(t *testing.T) {
		app, repo := newApp(t)
		repo.On("RackUtilization", mock.Anything, 0.0).Return(nil, errors.New("gone")).Once()

		_, err := app.RackUtilization(context.Background(), 0)
		assert.Equal(t, constant.ErrInternal, cerr.TypeOf(err))
	})
}

func TestStorageComparisonTable(t *testing.T) {
	pid, rid := uint64(1), uint64(2)
	name := "Crate"
	table := appreport.StorageComparisonTable([]model.StorageComparisonRow{
		{ProductID: &pid, ProductName: &name, RackID: &rid},
		{RackID: &rid},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []interface{}{uint64(1), "Crate", uint64(2), nil, nil}, table.Rows[0])
	assert.Equal(t, []interface{}{nil, nil, uint64(2), nil, nil}, table.Rows[1])
	assert.Equal(t, "storage-comparison.xlsx", table.Filename())
}
