package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onnuriprint/printshop-backend/pkg/config"
	pkgerrors "github.com/onnuriprint/printshop-backend/pkg/errors"
	"github.com/onnuriprint/printshop-backend/pkg/logger"
	"github.com/onnuriprint/printshop-backend/pkg/metrics"
)

const (
	pathQuote          = "/quote"
	pathCalculatePrice = "/calculate_price"
	pathPreviewQuote   = "/preview_quote"

	maxResponseBytes = 1 << 20
)

var (
	errBaseURLRequired = errors.New("pricing base url is required")
	errLoggerRequired  = errors.New("pricing logger is required")
)

// Doer lets tests substitute the HTTP transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the upstream pricing engine with centralized logging,
// timeout, and error mapping. The engine is a trusted black box; responses
// are decoded but never re-validated numerically.
type Client struct {
	baseURL string
	http    Doer
	logger  *logger.Logger
	metrics *metrics.PricingMetrics
}

// NewClient validates the configuration and builds the pricing client.
func NewClient(cfg config.PricingConfig, logg *logger.Logger, m *metrics.PricingMetrics) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logg,
		metrics: m,
	}, nil
}

// Quote forwards the order form to /quote and returns the bare breakdown.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*PriceBreakdown, error) {
	return c.requestBreakdown(ctx, pathQuote, req)
}

// CalculatePrice forwards the order form to /calculate_price.
func (c *Client) CalculatePrice(ctx context.Context, req QuoteRequest) (*PriceBreakdown, error) {
	return c.requestBreakdown(ctx, pathCalculatePrice, req)
}

// PreviewQuote calls /preview_quote, which wraps the breakdown in the legacy
// {success, price_info, error} envelope. A success:false body maps to a
// service error carrying the engine-supplied message.
func (c *Client) PreviewQuote(ctx context.Context, req QuoteRequest) (*PriceBreakdown, error) {
	body, err := c.post(ctx, pathPreviewQuote, req)
	if err != nil {
		return nil, err
	}

	var envelope previewEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.observeFailure(pathPreviewQuote)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "decoding preview response")
	}
	if !envelope.Success {
		c.observeFailure(pathPreviewQuote)
		message := envelope.Error
		if message == "" {
			message = "pricing engine rejected the request"
		}
		return nil, pkgerrors.New(pkgerrors.CodeService, message)
	}

	var breakdown PriceBreakdown
	if err := json.Unmarshal(envelope.PriceInfo, &breakdown); err != nil {
		c.observeFailure(pathPreviewQuote)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "decoding price_info")
	}
	c.observeSuccess(pathPreviewQuote)
	return &breakdown, nil
}

// Ping checks reachability of the pricing engine for readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pricing engine unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("pricing engine returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) requestBreakdown(ctx context.Context, path string, req QuoteRequest) (*PriceBreakdown, error) {
	body, err := c.post(ctx, path, req)
	if err != nil {
		return nil, err
	}

	var breakdown PriceBreakdown
	if err := json.Unmarshal(body, &breakdown); err != nil {
		c.observeFailure(path)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "decoding price breakdown")
	}
	c.observeSuccess(path)
	return &breakdown, nil
}

func (c *Client) post(ctx context.Context, path string, payload QuoteRequest) ([]byte, error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveDuration(operationLabel(path), time.Since(start))
	}()

	encoded, err := json.Marshal(payload)
	if err != nil {
		c.observeFailure(path)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding pricing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		c.observeFailure(path)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building pricing request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Info(c.logger.WithFields(ctx, map[string]any{"path": path}), "pricing request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.observeFailure(path)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "calling pricing engine")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.observeFailure(path)
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "reading pricing response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.observeFailure(path)
		return nil, pkgerrors.New(pkgerrors.CodeTransport, fmt.Sprintf("pricing engine returned status %d", resp.StatusCode)).
			WithDetails(map[string]any{"status": resp.StatusCode, "path": path})
	}
	return body, nil
}

func (c *Client) observeSuccess(path string) {
	c.metrics.IncSuccess(operationLabel(path))
}

func (c *Client) observeFailure(path string) {
	c.metrics.IncFailure(operationLabel(path))
}

func operationLabel(path string) string {
	return strings.TrimPrefix(path, "/")
}
