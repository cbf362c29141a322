// Package appsscript provides a record store adapter backed by a Google
// Apps Script web app endpoint.
package appsscript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// DefaultTimeout bounds a single submission exchange.
const DefaultTimeout = domain.DefaultSubmitTimeout

// Config holds configuration for the Apps Script record store.
type Config struct {
	// URL is the deployed web app endpoint (required).
	URL string

	// Timeout is the request timeout (default: 20s).
	Timeout time.Duration
}

// RecordStore submits inspection records to an Apps Script web app.
//
// The endpoint is a cross-origin one-shot receiver: the request body is
// JSON but is sent as text/plain so the exchange stays a CORS simple
// request and no preflight is required.
type RecordStore struct {
	client *http.Client
	url    string
}

// submitResponse is the web app response format.
type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewRecordStore creates a new Apps Script record store.
func NewRecordStore(cfg Config) (*RecordStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("appsscript: endpoint URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &RecordStore{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}, nil
}

// Submit posts the envelope to the web app. The submission succeeded only
// when the HTTP exchange completed with a 2xx status AND the body reports
// success; anything the server refused is returned as a rejection wrapping
// domain.ErrServerRejected, while transport failures are returned as-is.
func (s *RecordStore) Submit(ctx context.Context, env domain.Envelope) error {
	jsonBody, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &domain.RejectionError{
			Reason: fmt.Sprintf("server returned status %d", resp.StatusCode),
		}
	}

	var result submitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return &domain.RejectionError{Reason: "server returned an unreadable response"}
	}

	if !result.Success {
		return &domain.RejectionError{Reason: result.Error}
	}

	return nil
}
