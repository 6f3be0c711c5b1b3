package transport

import (
	"net/http"

	"github.com/muhammadheryan/warehouse/model"
)

// PlaceProduct handler
// @Summary Place product on rack
// @Description Places an unplaced product, or relocates it and records a manual reassignment
// @Tags Storage
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.PlaceProductRequest true "Target rack"
// @Success 200 {object} model.PlaceProductResponse
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /products/{id}/placement [put]
func (s *RestHandler) PlaceProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PlaceProductRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StorageApp.PlaceProduct(r.Context(), actorFrom(r), productID, req.RackID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CurrentRack handler
// @Summary Current rack of a product
// @Tags Storage
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.Placement
// @Failure 404 {object} errors.CustomError
// @Router /products/{id}/placement [get]
func (s *RestHandler) CurrentRack(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StorageApp.CurrentRack(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RackOccupants handler
// @Summary Products stored on a rack
// @Tags Storage
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rack ID"
// @Success 200 {object} model.RackOccupantsResponse
// @Failure 404 {object} errors.CustomError
// @Router /racks/{id}/occupants [get]
func (s *RestHandler) RackOccupants(w http.ResponseWriter, r *http.Request) {
	rackID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StorageApp.RackOccupants(r.Context(), rackID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReassignProduct handler
// @Summary Reassign product to the least utilized rack
// @Description Moves the product if a strictly better rack exists; moved=false when it already sits on the best one
// @Tags Storage
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.ReassignResult
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /products/{id}/reassign [post]
func (s *RestHandler) ReassignProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReassignmentApp.ReassignSafely(r.Context(), actorFrom(r), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListReassignments handler
// @Summary Reassignment log, newest first
// @Tags Storage
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max records"
// @Success 200 {array} model.ReassignmentRecord
// @Router /reassignments [get]
func (s *RestHandler) ListReassignments(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ReassignmentApp.ListReassignments(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AssignPicker handler
// @Summary Assign picker to every rack holding an item of the order
// @Tags Assignment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body model.AssignPickerRequest true "Picker"
// @Success 200 {array} model.PickerAssignment
// @Failure 404 {object} errors.CustomError
// @Failure 422 {object} errors.CustomError
// @Router /orders/{id}/assignments [post]
func (s *RestHandler) AssignPicker(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AssignPickerRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AssignmentApp.AssignPicker(r.Context(), actorFrom(r), req.PickerID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListOrderAssignments handler
// @Summary Picker assignments of an order
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {array} model.PickerAssignmentView
// @Failure 404 {object} errors.CustomError
// @Router /orders/{id}/assignments [get]
func (s *RestHandler) ListOrderAssignments(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AssignmentApp.ListOrderAssignments(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListPickerAssignments handler
// @Summary Assignments of a picker
// @Tags Assignment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Picker ID"
// @Success 200 {array} model.PickerAssignmentView
// @Failure 404 {object} errors.CustomError
// @Router /pickers/{id}/assignments [get]
func (s *RestHandler) ListPickerAssignments(w http.ResponseWriter, r *http.Request) {
	pickerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AssignmentApp.ListPickerAssignments(r.Context(), pickerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
