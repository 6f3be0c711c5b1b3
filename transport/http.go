package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	assignmentapp "github.com/muhammadheryan/warehouse/application/assignment"
	catalogapp "github.com/muhammadheryan/warehouse/application/catalog"
	customerapp "github.com/muhammadheryan/warehouse/application/customer"
	orderapp "github.com/muhammadheryan/warehouse/application/order"
	reassignmentapp "github.com/muhammadheryan/warehouse/application/reassignment"
	reportapp "github.com/muhammadheryan/warehouse/application/report"
	storageapp "github.com/muhammadheryan/warehouse/application/storage"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/model"
	utilsContext "github.com/muhammadheryan/warehouse/utils/context"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

type RestHandler struct {
	CustomerApp     customerapp.CustomerApp
	CatalogApp      catalogapp.CatalogApp
	OrderApp        orderapp.OrderApp
	StorageApp      storageapp.StorageApp
	ReassignmentApp reassignmentapp.ReassignmentApp
	AssignmentApp   assignmentapp.AssignmentApp
	ReportApp       reportapp.ReportApp
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// customers and cart staging
	mux.HandleFunc("/customers", rh.RegisterCustomer).Methods(http.MethodPost)
	mux.HandleFunc("/customers", rh.ListCustomers).Methods(http.MethodGet)
	mux.HandleFunc("/customers/{id}", rh.GetCustomer).Methods(http.MethodGet)
	mux.HandleFunc("/customers/{id}", rh.DeleteCustomer).Methods(http.MethodDelete)
	mux.HandleFunc("/customers/{id}/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/customers/{id}/cart", rh.ClearCart).Methods(http.MethodDelete)
	mux.HandleFunc("/customers/{id}/cart/items", rh.StageItem).Methods(http.MethodPost)
	mux.HandleFunc("/customers/{id}/orders", rh.CommitOrder).Methods(http.MethodPost)

	// catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.UpsertProduct).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)
	mux.HandleFunc("/racks", rh.ListRacks).Methods(http.MethodGet)
	mux.HandleFunc("/racks/{id}", rh.GetRack).Methods(http.MethodGet)
	mux.HandleFunc("/racks/{id}", rh.UpsertRack).Methods(http.MethodPut)
	mux.HandleFunc("/racks/{id}", rh.DeleteRack).Methods(http.MethodDelete)
	mux.HandleFunc("/pickers", rh.ListPickers).Methods(http.MethodGet)
	mux.HandleFunc("/pickers/{id}", rh.UpsertPicker).Methods(http.MethodPut)
	mux.HandleFunc("/pickers/{id}", rh.DeletePicker).Methods(http.MethodDelete)

	// storage ledger and reassignment
	mux.HandleFunc("/products/{id}/placement", rh.PlaceProduct).Methods(http.MethodPut)
	mux.HandleFunc("/products/{id}/placement", rh.CurrentRack).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}/reassign", rh.ReassignProduct).Methods(http.MethodPost)
	mux.HandleFunc("/racks/{id}/occupants", rh.RackOccupants).Methods(http.MethodGet)
	mux.HandleFunc("/reassignments", rh.ListReassignments).Methods(http.MethodGet)

	// orders and picker assignment
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}/assignments", rh.AssignPicker).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}/assignments", rh.ListOrderAssignments).Methods(http.MethodGet)
	mux.HandleFunc("/pickers/{id}/assignments", rh.ListPickerAssignments).Methods(http.MethodGet)

	// reports
	mux.HandleFunc("/reports/top-selling", rh.TopSelling).Methods(http.MethodGet)
	mux.HandleFunc("/reports/most-popular", rh.MostPopular).Methods(http.MethodGet)
	mux.HandleFunc("/reports/rack-utilization", rh.RackUtilization).Methods(http.MethodGet)
	mux.HandleFunc("/reports/storage-comparison", rh.StorageComparison).Methods(http.MethodGet)
	mux.HandleFunc("/reports/picker-racks", rh.PickerRackProducts).Methods(http.MethodGet)

	// internal routes, called by the reassignment consumer
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.HandleFunc("/products/{id}/reassign", rh.ReassignProduct).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RateLimitMiddleware(NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)))
	mux.Use(TimeoutMiddleware(cfg.Server.RequestTimeout))
	mux.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	return mux
}

// actorFrom returns the identity attached by the auth or internal middleware.
func actorFrom(r *http.Request) model.Actor {
	actor, _ := utilsContext.GetActor(r.Context())
	return actor
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} successResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// RegisterCustomer handler
// @Summary Register customer
// @Description Register a new customer with a unique email
// @Tags Customer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterCustomerRequest true "Register Request"
// @Success 200 {object} model.CustomerEntity
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /customers [post]
func (s *RestHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterCustomerRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CustomerApp.Register(r.Context(), actorFrom(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListCustomers handler
// @Summary List customers
// @Tags Customer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CustomerEntity
// @Router /customers [get]
func (s *RestHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	res, err := s.CustomerApp.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCustomer handler
// @Summary Get customer
// @Tags Customer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} model.CustomerEntity
// @Failure 404 {object} errors.CustomError
// @Router /customers/{id} [get]
func (s *RestHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CustomerApp.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteCustomer handler
// @Summary Delete customer
// @Description Fails while orders still reference the customer
// @Tags Customer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /customers/{id} [delete]
func (s *RestHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.CustomerApp.DeleteCustomer(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
