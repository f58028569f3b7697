// Package vpic provides a client for the NHTSA vPIC vehicle API.
// It exposes the two lookups carpick needs behind simple methods and turns every
// failure into a *FetchError.
package vpic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/h0rv/carpick/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public vPIC vehicles API.
	DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

	// DefaultVehicleType is the category whose makes are listed.
	DefaultVehicleType = "car"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 15 * time.Second

	// DefaultRequestsPerSecond and DefaultBurst throttle outbound requests.
	DefaultRequestsPerSecond = 5.0
	DefaultBurst             = 2

	userAgent  = "carpick/1.0 (+https://github.com/h0rv/carpick)"
	tracerName = "internal/vpic"
)

// Client is a vPIC REST client.
type Client struct {
	baseURL     string
	vehicleType string
	timeout     time.Duration
	http        *http.Client
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another vPIC-compatible server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithVehicleType sets the vehicle type used by GetMakes.
func WithVehicleType(t string) Option {
	return func(c *Client) { c.vehicleType = t }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
// It has no effect when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client. The client is used as is,
// in any option order; its own Timeout and Transport apply.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit throttles outbound requests. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a client with default settings, adjusted by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		vehicleType: DefaultVehicleType,
		timeout:     DefaultTimeout,
		limiter:     rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), DefaultBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Timeout:   c.timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// VehicleType returns the vehicle type used for make lookups.
func (c *Client) VehicleType() string {
	return c.vehicleType
}

// envelope is the common vPIC response body.
type envelope[T any] struct {
	Count          int     `json:"Count"`
	Message        string  `json:"Message"`
	SearchCriteria *string `json:"SearchCriteria"`
	Results        []T     `json:"Results"`
}

// getJSON issues a GET for url inside a span named after op and returns the
// envelope's Results. Every failure is returned as a *FetchError tagged with op.
func getJSON[T any](ctx context.Context, c *Client, op, url string) ([]T, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vpic."+op)
	defer span.End()

	results, err := fetchJSON[T](ctx, c, op, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return results, err
}

func fetchJSON[T any](ctx context.Context, c *Client, op, url string) ([]T, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, newFetchError(op, url, 0, ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newFetchError(op, url, 0, ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newFetchError(op, url, 0, ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, newFetchError(op, url, resp.StatusCode, ErrStatus,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, newFetchError(op, url, resp.StatusCode, ErrDecode, err)
	}
	if body.Results == nil {
		return nil, newFetchError(op, url, resp.StatusCode, ErrDecode,
			fmt.Errorf("response has no Results array"))
	}

	logging.Debug("vpic request",
		zap.String("op", op),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Int("count", len(body.Results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return body.Results, nil
}
