// Package analytics is the HTTP side of the data fetch layer: a typed client
// for the prediction, risk, hotspot, tips, case-intake, alert and M-Pesa
// endpoints of the external analytics service.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"afyajirani-backend/internal/apperr"

	"go.uber.org/zap"
)

// Client talks to the analytics service. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.Named("analytics"),
	}
}

// shaped is implemented by responses that can tell whether a required field
// was missing from the payload.
type shaped interface {
	valid() error
}

func (c *Client) get(ctx context.Context, path string, query url.Values, label string, out shaped) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperr.Analytics(label, err)
	}
	return c.do(req, label, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, label string, out shaped) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperr.Analytics(label, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apperr.Analytics(label, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}
	return c.do(req, label, out)
}

func (c *Client) do(req *http.Request, label string, out shaped) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Analytics(label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("analytics call failed",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", snippet),
		)
		return apperr.Analytics(label, fmt.Errorf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	// an empty body decodes to the zero value and is left to valid()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Analytics(label, fmt.Errorf("decode %s: %w", req.URL.Path, err))
	}
	if err := out.valid(); err != nil {
		return apperr.Analytics(label, fmt.Errorf("%s: %w", req.URL.Path, err))
	}
	return nil
}
