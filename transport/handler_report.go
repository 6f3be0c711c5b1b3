package transport

import (
	"net/http"

	reportapp "github.com/muhammadheryan/warehouse/application/report"
)

// TopSelling handler
// @Summary Top selling products by ordered quantity
// @Tags Report
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param n query int false "Number of rows"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {array} model.TopSellingProduct
// @Router /reports/top-selling [get]
func (s *RestHandler) TopSelling(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReportApp.TopSelling(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsXLSX(r) {
		writeXLSX(w, reportapp.TopSellingTable(res))
		return
	}
	writeSuccess(w, res)
}

// MostPopular handler
// @Summary Most popular products by popularity counter
// @Tags Report
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param n query int false "Number of rows"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {array} model.PopularProduct
// @Router /reports/most-popular [get]
func (s *RestHandler) MostPopular(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReportApp.MostPopular(r.Context(), n)
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsXLSX(r) {
		writeXLSX(w, reportapp.MostPopularTable(res))
		return
	}
	writeSuccess(w, res)
}

// RackUtilization handler
// @Summary Racks at or above a utilization ratio
// @Tags Report
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param min_ratio query number false "Threshold in [0,1]"
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {array} model.RackUtilization
// @Failure 400 {object} errors.CustomError
// @Router /reports/rack-utilization [get]
func (s *RestHandler) RackUtilization(w http.ResponseWriter, r *http.Request) {
	minRatio, err := queryFloat(r, "min_ratio", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReportApp.RackUtilization(r.Context(), minRatio)
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsXLSX(r) {
		writeXLSX(w, reportapp.RackUtilizationTable(res))
		return
	}
	writeSuccess(w, res)
}

// StorageComparison handler
// @Summary Every product and every rack, matched where a placement exists
// @Tags Report
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {array} model.StorageComparisonRow
// @Router /reports/storage-comparison [get]
func (s *RestHandler) StorageComparison(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.StorageComparison(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsXLSX(r) {
		writeXLSX(w, reportapp.StorageComparisonTable(res))
		return
	}
	writeSuccess(w, res)
}

// PickerRackProducts handler
// @Summary Pickers, their assigned racks and the products stored there
// @Tags Report
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "xlsx for a spreadsheet"
// @Success 200 {array} model.PickerRackProduct
// @Router /reports/picker-racks [get]
func (s *RestHandler) PickerRackProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReportApp.PickerRackProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsXLSX(r) {
		writeXLSX(w, reportapp.PickerRackProductsTable(res))
		return
	}
	writeSuccess(w, res)
}
