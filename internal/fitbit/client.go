// Package fitbit is a read-only client for the Fitbit Web API sleep and
// activity endpoints.
package fitbit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.fitbit.com"
	DefaultTimeout = 30 * time.Second

	// Upper bound on a response body read into memory.
	maxResponseBytes = 8 << 20

	sleepAPIVersion    = "1.2"
	activityAPIVersion = "1"
)

// Config holds the settings needed to construct a Client.
type Config struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// AccessToken is the OAuth2 bearer token. Required.
	AccessToken string

	// HTTPClient is an optional custom HTTP client. If nil, a client with
	// Timeout is used.
	HTTPClient *http.Client

	// Timeout applies to individual API requests. Defaults to 30 seconds.
	Timeout time.Duration

	Logger *zap.Logger
}

// Client fetches one date of sleep or activity data per call. It never
// retries. All methods are safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
	tracer  trace.Tracer
}

// NewClient creates a Client from the given configuration.
// Returns an error if AccessToken is empty.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, errors.New("fitbit: AccessToken is required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := logging.OrNop(cfg.Logger)

	return &Client{
		baseURL: baseURL,
		token:   cfg.AccessToken,
		client:  httpClient,
		logger:  logger.Named("fitbit"),
		tracer:  otel.Tracer("fitbit-sleep/fitbit"),
	}, nil
}

// FetchSleep retrieves the sleep logs and day summary for date.
func (c *Client) FetchSleep(ctx context.Context, date domain.Date) (*domain.SleepTimeline, error) {
	path := fmt.Sprintf("/%s/user/-/sleep/date/%s.json", sleepAPIVersion, date)

	var resp sleepResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	timeline, err := resp.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return timeline, nil
}

// FetchActivity retrieves the activity summary and goals for date.
func (c *Client) FetchActivity(ctx context.Context, date domain.Date) (*domain.ActivitySummary, error) {
	path := fmt.Sprintf("/%s/user/-/activities/date/%s.json", activityAPIVersion, date)

	var resp activityResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	ctx, span := c.tracer.Start(ctx, "fitbit.get",
		trace.WithAttributes(attribute.String("http.target", path)),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("fitbit: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.Debug("fitbit request",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("%w: read response body: %w", ErrTransport, err)
	}
	if len(body) > maxResponseBytes {
		span.SetStatus(codes.Error, "response too large")
		return fmt.Errorf("%w: response body exceeds %d bytes", ErrTransport, maxResponseBytes)
	}

	if resp.StatusCode >= 400 {
		apiErr := parseErrorResponse(resp, body)
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if err := json.Unmarshal(body, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
