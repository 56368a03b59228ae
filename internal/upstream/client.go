// Package upstream is the typed HTTP client for the tailoring platform
// REST API. Every call carries the caller's bearer token (when present)
// and maps failure statuses onto the client's error taxonomy; nothing
// here retries automatically.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/config"
	"github.com/spec-kit/tailoring-webclient/internal/observability"
	util "github.com/spec-kit/tailoring-webclient/pkg/util"
)

// Client talks to the platform API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewClient builds the API client.
func NewClient(cfg config.UpstreamConfig, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
		metrics: metrics,
	}
}

// errorBody matches the platform's error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out (when out is non-nil). token may be empty for public
// endpoints.
func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return util.NewInternalError(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return util.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream call failed", zap.String("path", path), zap.Error(err))
		if c.metrics != nil {
			c.metrics.RecordUpstream(method+" "+path, 0)
		}
		return util.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if c.metrics != nil {
		c.metrics.RecordUpstream(method+" "+path, resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		return c.mapStatus(resp, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return util.NewUpstreamUnavailable(fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

// mapStatus converts upstream failure statuses to domain errors.
func (c *Client) mapStatus(resp *http.Response, path string) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	detail := eb.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return util.NewUnauthorized(detail)
	case http.StatusForbidden:
		return util.NewForbidden(detail)
	case http.StatusNotFound:
		return util.NewDomainError("NOT_FOUND", detail, http.StatusNotFound, nil)
	case http.StatusConflict:
		return util.NewConflict(detail, nil)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return util.NewValidationError(detail, nil)
	default:
		c.logger.Warn("upstream error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", detail))
		return util.NewUpstreamUnavailable(fmt.Errorf("%s: status %d", path, resp.StatusCode))
	}
}
