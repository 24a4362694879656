package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/http/handler"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/service"
	"github.com/presswork-as/estimate-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func createOrderHandler(db *gorm.DB) *handler.OrderHandler {
	logger := zap.NewNop()
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, logger)
	return handler.NewOrderHandler(orderService, logger)
}

func createOrder(t *testing.T, db *gorm.DB, status domain.OrderStatus, valid bool, severity string) *domain.PrintOrder {
	order := &domain.PrintOrder{
		InputType: domain.InputTypeAPI,
		Status:    status,
		Valid:     valid,
		Severity:  severity,
		Flags:     []string{},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

// TestOrderHandler_List tests the List endpoint
func TestOrderHandler_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createOrderHandler(db)

	createOrder(t, db, domain.OrderStatusEstimated, true, "")
	createOrder(t, db, domain.OrderStatusEstimated, false, "high")
	createOrder(t, db, domain.OrderStatusPending, true, "")

	t.Run("list all orders", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)

		rr := httptest.NewRecorder()
		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		err := json.Unmarshal(rr.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Total)
		assert.Equal(t, 1, result.Page)
	})

	t.Run("filter by status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders?status=pending", nil)

		rr := httptest.NewRecorder()
		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		err := json.Unmarshal(rr.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("filter by validity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders?valid=false", nil)

		rr := httptest.NewRecorder()
		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		err := json.Unmarshal(rr.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("filter by severity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders?severity=high", nil)

		rr := httptest.NewRecorder()
		h.List(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result domain.PaginatedResponse
		err := json.Unmarshal(rr.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
	})
}

// TestOrderHandler_Get tests the Get endpoint
func TestOrderHandler_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createOrderHandler(db)

	order := createOrder(t, db, domain.OrderStatusEstimated, true, "")

	t.Run("get existing order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", order.ID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var dto domain.OrderDTO
		err := json.Unmarshal(rr.Body.Bytes(), &dto)
		require.NoError(t, err)
		assert.Equal(t, order.ID, dto.ID)
		assert.Equal(t, domain.OrderStatusEstimated, dto.Status)
		assert.NotNil(t, dto.Flags)
	})

	t.Run("order not found", func(t *testing.T) {
		nonExistentID := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/orders/"+nonExistentID.String(), nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", nonExistentID.String())
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid order id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/invalid-id", nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", "invalid-id")
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		rr := httptest.NewRecorder()
		h.Get(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
