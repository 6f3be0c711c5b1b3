package transport

import (
	"net/http"

	"github.com/muhammadheryan/warehouse/model"
)

// GetCart handler
// @Summary Get staged cart
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} model.Cart
// @Router /customers/{id}/cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetCart(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// StageItem handler
// @Summary Stage an item in the cart
// @Description Staging a product already in the cart adds to its quantity
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body model.StageItemRequest true "Item"
// @Success 200 {object} model.Cart
// @Failure 400 {object} errors.CustomError
// @Router /customers/{id}/cart/items [post]
func (s *RestHandler) StageItem(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.StageItemRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.StageItem(r.Context(), customerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearCart handler
// @Summary Discard staged cart
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} successResponse
// @Router /customers/{id}/cart [delete]
func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.OrderApp.ClearCart(r.Context(), customerID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CommitOrder handler
// @Summary Commit order
// @Description Commits the items in the body, or the staged cart when the body is empty. All or nothing.
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param request body model.CommitOrderRequest false "Explicit cart"
// @Success 200 {object} model.CommitOrderResponse
// @Failure 400 {object} errors.CustomError
// @Failure 500 {object} errors.CustomError
// @Router /customers/{id}/orders [post]
func (s *RestHandler) CommitOrder(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CommitOrderRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	var res *model.CommitOrderResponse
	if len(req.Items) == 0 {
		res, err = s.OrderApp.CommitStagedCart(r.Context(), actorFrom(r), customerID)
	} else {
		res, err = s.OrderApp.CommitOrder(r.Context(), actorFrom(r), &model.Cart{CustomerID: customerID, Items: req.Items})
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order with items
// @Tags Order
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 404 {object} errors.CustomError
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
