package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"github.com/presswork-as/estimate-api/internal/http/handler"
	"github.com/presswork-as/estimate-api/internal/repository"
	"github.com/presswork-as/estimate-api/internal/service"
	"github.com/presswork-as/estimate-api/internal/validation"
	"github.com/presswork-as/estimate-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func stringPtr(s string) *string  { return &s }

func createEstimateHandler(t *testing.T, db *gorm.DB) *handler.EstimateHandler {
	logger := zap.NewNop()
	cfg := config.DefaultConfig()

	orderRepo := repository.NewOrderRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditService := service.NewAuditLogService(auditRepo, logger)
	engine := validation.NewEngine(&cfg.Validation, &cfg.Pricing)
	estimateService := service.NewEstimateService(orderRepo, estimateRepo, auditService, nil, engine, cfg, logger)

	return handler.NewEstimateHandler(estimateService, logger)
}

func validEstimateBody() *domain.EstimateRequest {
	return &domain.EstimateRequest{
		Specs: domain.SpecInput{
			Quantity:        intPtr(300),
			WidthMM:         floatPtr(210),
			HeightMM:        floatPtr(297),
			MaterialGSM:     intPtr(120),
			Sides:           stringPtr("single"),
			TurnaroundDays:  floatPtr(5),
			ArtworkProvided: true,
		},
		Input: domain.InputTypeAPI,
	}
}

// TestEstimateHandler_Create tests the Create endpoint
func TestEstimateHandler_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := createEstimateHandler(t, db)

	t.Run("create estimate from valid specification", func(t *testing.T) {
		body, err := json.Marshal(validEstimateBody())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp domain.EstimateResponse
		err = json.Unmarshal(rr.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEqual(t, "", resp.OrderID.String())
		assert.Equal(t, 300, resp.Specs.Quantity)
		assert.Greater(t, resp.Pricing.TotalPrice, 0.0)
		assert.Equal(t, "rule_based", resp.Pricing.Source)
		assert.True(t, resp.Validation.Valid)
		assert.Len(t, resp.Pricing.Competitors, 2)

		// Order and estimate are persisted
		var orderCount, estimateCount int64
		db.Model(&domain.PrintOrder{}).Count(&orderCount)
		db.Model(&domain.Estimate{}).Count(&estimateCount)
		assert.Equal(t, int64(1), orderCount)
		assert.Equal(t, int64(1), estimateCount)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed specification", func(t *testing.T) {
		body := validEstimateBody()
		body.Specs.WidthMM = floatPtr(-10)
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var apiErr domain.APIError
		err = json.Unmarshal(rr.Body.Bytes(), &apiErr)
		require.NoError(t, err)
		assert.Contains(t, apiErr.Detail, "width_mm")
	})

	t.Run("validation tag rejects unknown sides value", func(t *testing.T) {
		body := validEstimateBody()
		body.Specs.Sides = stringPtr("triple")
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("incomplete specification is flagged but priced", func(t *testing.T) {
		body := validEstimateBody()
		body.Specs.Quantity = intPtr(0)
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		h.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp domain.EstimateResponse
		err = json.Unmarshal(rr.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.False(t, resp.Validation.Valid)
		assert.Contains(t, resp.Validation.Flags, domain.FlagMissingQty)
	})
}
