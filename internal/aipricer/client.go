// Package aipricer provides the client for the external AI pricing
// service. The service proposes a price with its own breakdown for a
// normalized specification; the proposal is of unknown trustworthiness and
// is always reconciled against the rule-based calculator by the caller.
package aipricer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/presswork-as/estimate-api/internal/config"
	"github.com/presswork-as/estimate-api/internal/domain"
	"go.uber.org/zap"
)

// Client calls the external AI pricing service over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a new AI pricing client.
// Returns nil if the service is not enabled or not configured; estimation
// then reduces to pure rule-based pricing.
func NewClient(cfg *config.AIPricerConfig, logger *zap.Logger) *Client {
	if cfg == nil || !cfg.Enabled || cfg.BaseURL == "" {
		logger.Info("AI pricing service disabled")
		return nil
	}

	logger.Info("AI pricing client initialized",
		zap.String("base_url", cfg.BaseURL),
		zap.Int("timeout_seconds", cfg.Timeout),
	)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

type proposalResponse struct {
	TotalPrice float64                 `json:"total_price"`
	Breakdown  domain.PricingBreakdown `json:"breakdown"`
}

// ProposePrice posts the normalized specification and returns the service's
// price proposal. Any failure (timeout, non-2xx, malformed body) is
// returned as an error; callers treat errors as "no proposal".
func (c *Client) ProposePrice(ctx context.Context, spec domain.Specification) (*domain.PriceProposal, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode specification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pricing", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build pricing request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("pricing service returned status %d", resp.StatusCode)
	}

	var pr proposalResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("failed to decode pricing response: %w", err)
	}
	if pr.TotalPrice <= 0 {
		return nil, fmt.Errorf("pricing service returned non-positive total %.2f", pr.TotalPrice)
	}

	c.logger.Debug("AI pricing proposal received",
		zap.Float64("total_price", pr.TotalPrice),
	)

	return &domain.PriceProposal{
		TotalPrice: pr.TotalPrice,
		Breakdown:  pr.Breakdown,
	}, nil
}
