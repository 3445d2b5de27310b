// Package api is the JSON/HTTP client for the scheduling backend. Every
// heavy computation (the solver, availability checks, publication-rate
// aggregation) lives behind these calls; the client only shapes payloads.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rmoreau/loanboard/internal/logging"
	"github.com/rmoreau/loanboard/internal/models"
)

// DefaultTimeout bounds a single backend call. Optimizer runs can take a
// while on large offices, so this is deliberately generous.
const DefaultTimeout = 60 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
	log     *logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type officesPayload struct {
	Offices []string `json:"offices"`
}

// Offices lists the offices the coordinator can select.
func (c *Client) Offices(ctx context.Context) ([]string, error) {
	var out officesPayload
	if err := c.get(ctx, "offices", "/api/offices", nil, &out); err != nil {
		return nil, err
	}
	return out.Offices, nil
}

// Overview fetches the office-level metrics snapshot for a week.
func (c *Client) Overview(ctx context.Context, office, weekStart string, minDays int) (*models.Metrics, error) {
	q := url.Values{}
	q.Set("office", office)
	q.Set("week_start", weekStart)
	q.Set("min_days", strconv.Itoa(minDays))

	var out models.Metrics
	if err := c.get(ctx, "overview", "/api/overview", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DefaultCapacity fetches an office's default daily capacity map.
func (c *Client) DefaultCapacity(ctx context.Context, office string) (models.DayCapacityMap, error) {
	var out models.DayCapacityMap
	path := "/api/offices/" + url.PathEscape(office) + "/capacity"
	if err := c.get(ctx, "default capacity", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RunOptimizer triggers a solver run and returns its full result. An empty
// assignment list is a valid outcome, not an error.
func (c *Client) RunOptimizer(ctx context.Context, req models.RunRequest) (*models.RunResult, error) {
	var out models.RunResult
	if err := c.post(ctx, "optimize", "/api/optimize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VehicleContext fetches recent and upcoming activity for one VIN.
func (c *Client) VehicleContext(ctx context.Context, office, vin string) (*models.VehicleContext, error) {
	q := url.Values{}
	q.Set("office", office)

	var out models.VehicleContext
	path := "/api/vehicles/" + url.PathEscape(vin) + "/context"
	if err := c.get(ctx, "vehicle context", path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ratesPayload struct {
	Rates []models.PublicationRate `json:"rates"`
}

// PublicationRates lists partner×make publication statistics for an office.
func (c *Client) PublicationRates(ctx context.Context, office string) ([]models.PublicationRate, error) {
	q := url.Values{}
	q.Set("office", office)

	var out ratesPayload
	if err := c.get(ctx, "publication rates", "/api/publication-rates", q, &out); err != nil {
		return nil, err
	}
	return out.Rates, nil
}

// SuggestChain asks the backend for a chain of back-to-back loans for one
// partner.
func (c *Client) SuggestChain(ctx context.Context, req models.ChainRequest) (*models.ChainSuggestion, error) {
	var out models.ChainSuggestion
	if err := c.post(ctx, "suggest chain", "/api/chains/suggest", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type deletePayload struct {
	Deleted bool `json:"deleted"`
	Count   int  `json:"count"`
}

// DeleteAssignment removes one vehicle↔partner assignment and returns the
// number of affected calendar rows.
func (c *Client) DeleteAssignment(ctx context.Context, office, vin string, personID int64) (int, error) {
	q := url.Values{}
	q.Set("office", office)

	path := fmt.Sprintf("/api/assignments/%s/%d", url.PathEscape(vin), personID)
	var out deletePayload
	if err := c.do(ctx, "delete assignment", http.MethodDelete, path, q, nil, &out); err != nil {
		return 0, err
	}
	if !out.Deleted {
		return 0, &BackendError{Op: "delete assignment", StatusCode: http.StatusOK, Message: "assignment not deleted"}
	}
	return out.Count, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out)
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Debug("backend call", "op", op, "method", method, "url", u, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("backend call failed", "op", op, "request_id", requestID, "error", err)
		return &NetworkError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		_ = json.Unmarshal(data, &envelope)
		c.log.Warn("backend error", "op", op, "status", resp.StatusCode, "message", envelope.Error, "request_id", requestID)
		return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
