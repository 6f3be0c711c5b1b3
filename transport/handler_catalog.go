package transport

import (
	"net/http"

	"github.com/muhammadheryan/warehouse/model"
)

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ProductEntity
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} errors.CustomError
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpsertProduct handler
// @Summary Create or update product
// @Description Popularity is maintained by order commits and cannot be set here
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.UpsertProductRequest true "Product"
// @Success 200 {object} model.ProductEntity
// @Failure 400 {object} errors.CustomError
// @Router /products/{id} [put]
func (s *RestHandler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpsertProductRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	req.ID = id

	res, err := s.CatalogApp.UpsertProduct(r.Context(), actorFrom(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.DeleteProduct(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListRacks handler
// @Summary List racks
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RackEntity
// @Router /racks [get]
func (s *RestHandler) ListRacks(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListRacks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetRack handler
// @Summary Get rack
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rack ID"
// @Success 200 {object} model.RackEntity
// @Failure 404 {object} errors.CustomError
// @Router /racks/{id} [get]
func (s *RestHandler) GetRack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CatalogApp.GetRack(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpsertRack handler
// @Summary Create or update rack
// @Description Capacity cannot drop below the number of products currently stored
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rack ID"
// @Param request body model.UpsertRackRequest true "Rack"
// @Success 200 {object} model.RackEntity
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /racks/{id} [put]
func (s *RestHandler) UpsertRack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpsertRackRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	req.ID = id

	res, err := s.CatalogApp.UpsertRack(r.Context(), actorFrom(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteRack handler
// @Summary Delete rack
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rack ID"
// @Success 200 {object} successResponse
// @Failure 409 {object} errors.CustomError
// @Router /racks/{id} [delete]
func (s *RestHandler) DeleteRack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.DeleteRack(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListPickers handler
// @Summary List pickers
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PickerEntity
// @Router /pickers [get]
func (s *RestHandler) ListPickers(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListPickers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpsertPicker handler
// @Summary Create or update picker
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Picker ID"
// @Param request body model.UpsertPickerRequest true "Picker"
// @Success 200 {object} model.PickerEntity
// @Failure 400 {object} errors.CustomError
// @Router /pickers/{id} [put]
func (s *RestHandler) UpsertPicker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpsertPickerRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	req.ID = id

	res, err := s.CatalogApp.UpsertPicker(r.Context(), actorFrom(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeletePicker handler
// @Summary Delete picker
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Picker ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.CustomError
// @Router /pickers/{id} [delete]
func (s *RestHandler) DeletePicker(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CatalogApp.DeletePicker(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
