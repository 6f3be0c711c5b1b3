package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/constant"
	assignmentmocks "github.com/muhammadheryan/warehouse/mocks/application/assignment"
	catalogmocks "github.com/muhammadheryan/warehouse/mocks/application/catalog"
	customermocks "github.com/muhammadheryan/warehouse/mocks/application/customer"
	ordermocks "github.com/muhammadheryan/warehouse/mocks/application/order"
	reassignmentmocks "github.com/muhammadheryan/warehouse/mocks/application/reassignment"
	reportmocks "github.com/muhammadheryan/warehouse/mocks/application/report"
	storagemocks "github.com/muhammadheryan/warehouse/mocks/application/storage"
	"github.com/muhammadheryan/warehouse/model"
	"github.com/muhammadheryan/warehouse/transport"
	"github.com/muhammadheryan/warehouse/utils/errors"
	"github.com/muhammadheryan/warehouse/utils/export"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "test-secret"
	testAPIKey = "internal-key"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	os.Exit(m.Run())
}

type apps struct {
	customer     *customermocks.CustomerApp
	catalog      *catalogmocks.CatalogApp
	order        *ordermocks.OrderApp
	storage      *storagemocks.StorageApp
	reassignment *reassignmentmocks.ReassignmentApp
	assignment   *assignmentmocks.AssignmentApp
	report       *reportmocks.ReportApp
}

func newApps(t *testing.T) apps {
	return apps{
		customer:     customermocks.NewCustomerApp(t),
		catalog:      catalogmocks.NewCatalogApp(t),
		order:        ordermocks.NewOrderApp(t),
		storage:      storagemocks.NewStorageApp(t),
		reassignment: reassignmentmocks.NewReassignmentApp(t),
		assignment:   assignmentmocks.NewAssignmentApp(t),
		report:       reportmocks.NewReportApp(t),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{RequestTimeout: time.Second},
		Auth:      config.AuthConfig{JWTSecret: testSecret, InternalAPIKey: testAPIKey},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}
}

func (a apps) handler(cfg *config.Config) http.Handler {
	return transport.NewTransport(cfg, &transport.RestHandler{
		CustomerApp:     a.customer,
		CatalogApp:      a.catalog,
		OrderApp:        a.order,
		StorageApp:      a.storage,
		ReassignmentApp: a.reassignment,
		AssignmentApp:   a.assignment,
		ReportApp:       a.report,
	})
}

func bearer(t *testing.T, subject, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, transport.ActorClaims{
		Role: "stocker",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func do(h http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["code"]
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		auth       func(t *testing.T) string
		wantStatus int
	}{
		{name: "health is public", path: "/health", auth: func(*testing.T) string { return "" }, wantStatus: http.StatusOK},
		{name: "missing token", path: "/reassignments", auth: func(*testing.T) string { return "" }, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", path: "/reassignments", auth: func(t *testing.T) string { return bearer(t, "stocker-7", "other") }, wantStatus: http.StatusUnauthorized},
		{name: "token without subject", path: "/reassignments", auth: func(t *testing.T) string { return bearer(t, "", testSecret) }, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newApps(t).handler(testConfig()), http.MethodGet, tt.path, tt.auth(t), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, constant.ErrorTypeCode[constant.ErrUnauthorize], errorCode(t, rec))
			}
		})
	}
}

func TestPlaceProduct_ActorFromToken(t *testing.T) {
	a := newApps(t)
	a.storage.On("PlaceProduct", mock.Anything, model.Actor{ID: "stocker-7", Role: "stocker"}, uint64(4), uint64(6)).
		Return(&model.PlaceProductResponse{Placement: model.Placement{ProductID: 4, RackID: 6}}, nil).Once()

	rec := do(a.handler(testConfig()), http.MethodPut, "/products/4/placement", bearer(t, "stocker-7", testSecret), `{"rack_id":6}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Code string                     `json:"code"`
		Data model.PlaceProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0000", body.Code)
	assert.Equal(t, uint64(6), body.Data.Placement.RackID)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		errType    constant.ErrorType
		wantStatus int
	}{
		{name: "no capacity", errType: constant.ErrNoCapacity, wantStatus: http.StatusConflict},
		{name: "not placed", errType: constant.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "transaction", errType: constant.ErrTransaction, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.reassignment.On("ReassignSafely", mock.Anything, mock.Anything, uint64(4)).
				Return(nil, errors.SetCustomError(tt.errType)).Once()

			rec := do(a.handler(testConfig()), http.MethodPost, "/products/4/reassign", bearer(t, "supervisor-2", testSecret), "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, constant.ErrorTypeCode[tt.errType], errorCode(t, rec))
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	rec := do(newApps(t).handler(testConfig()), http.MethodGet, "/orders/abc", bearer(t, "lead-1", testSecret), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], errorCode(t, rec))
}

func TestInternalReassign(t *testing.T) {
	t.Run("wrong api key", func(t *testing.T) {
		rec := do(newApps(t).handler(testConfig()), http.MethodPost, "/internal/v1/products/4/reassign", "Bearer nope", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("calling service becomes the actor", func(t *testing.T) {
		a := newApps(t)
		a.reassignment.On("ReassignSafely", mock.Anything, mock.MatchedBy(func(actor model.Actor) bool {
			return actor.ID == "internal:reassign-consumer"
		}), uint64(4)).Return(&model.ReassignResult{Moved: false, ProductID: 4, RackID: 6}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/internal/v1/products/4/reassign", nil)
		req.Header.Set("Authorization", "Bearer "+testAPIKey)
		req.Header.Set("X-Internal-Service", "reassign-consumer")
		rec := httptest.NewRecorder()
		a.handler(testConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCommitOrder(t *testing.T) {
	resp := &model.CommitOrderResponse{OrderID: 17, ItemCount: 1}

	t.Run("empty body commits staged cart", func(t *testing.T) {
		a := newApps(t)
		a.order.On("CommitStagedCart", mock.Anything, mock.Anything, uint64(1)).Return(resp, nil).Once()

		rec := do(a.handler(testConfig()), http.MethodPost, "/customers/1/orders", bearer(t, "clerk", testSecret), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("explicit items", func(t *testing.T) {
		a := newApps(t)
		a.order.On("CommitOrder", mock.Anything, mock.Anything, mock.MatchedBy(func(c *model.Cart) bool {
			return c.CustomerID == 1 && len(c.Items) == 1 && c.Items[0].ProductID == 3 && c.Items[0].Quantity == 2
		})).Return(resp, nil).Once()

		rec := do(a.handler(testConfig()), http.MethodPost, "/customers/1/orders", bearer(t, "clerk", testSecret),
			`{"items":[{"product_id":3,"quantity":2}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(newApps(t).handler(testConfig()), http.MethodPost, "/customers/1/orders", bearer(t, "clerk", testSecret), `{"items":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportXLSX(t *testing.T) {
	a := newApps(t)
	a.report.On("TopSelling", mock.Anything, 3).Return([]model.TopSellingProduct{
		{ProductID: 1, Name: "Crate", TotalQuantity: 9},
	}, nil).Twice()
	h := a.handler(testConfig())
	auth := bearer(t, "analyst", testSecret)

	rec := do(h, http.MethodGet, "/reports/top-selling?n=3&format=xlsx", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "top-selling.xlsx")

	rec = do(h, http.MethodGet, "/reports/top-selling?n=3", auth, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1}
	h := newApps(t).handler(cfg)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/health", "", "").Code)
	rec := do(h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrTooManyRequests], errorCode(t, rec))
}
