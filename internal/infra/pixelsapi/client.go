package pixelsapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/purefunctor/pixels/internal/domain"
	"github.com/purefunctor/pixels/internal/infra/httpclient"
	"github.com/purefunctor/pixels/internal/infra/logger"
	"github.com/purefunctor/pixels/internal/ports"
)

// Endpoint names one Pixels API route, relative to the base URL.
type Endpoint string

const (
	EndpointGetSize   Endpoint = "get_size"
	EndpointGetPixel  Endpoint = "get_pixel"
	EndpointGetPixels Endpoint = "get_pixels"
	EndpointSetPixel  Endpoint = "set_pixel"
)

// Client is the Pixels API wrapper. It authenticates every request with a
// bearer token, respects the limiter before each call, and retries requests
// rejected with a cooldown.
type Client struct {
	exec        *httpclient.Executor
	baseURL     string
	token       string
	limiter     *Limiter
	maxAttempts int
	log         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithExecutor sets a custom request executor.
func WithExecutor(exec *httpclient.Executor) Option {
	return func(c *Client) { c.exec = exec }
}

// WithLimiter sets a custom limiter (useful for tests).
func WithLimiter(l *Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(cfg domain.Config, opts ...Option) *Client {
	c := &Client{
		exec:        httpclient.NewExecutor(httpclient.WithTimeout(cfg.API.Timeout)),
		baseURL:     strings.TrimRight(cfg.API.BaseURL, "/"),
		token:       cfg.API.Token,
		limiter:     NewLimiter(),
		maxAttempts: cfg.Retry.MaxAttempts,
		log:         logger.L(),
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ ports.CanvasAPI     = (*Client)(nil)
	_ ports.LimitReporter = (*Client)(nil)
)

// Size reports the canvas extent.
func (c *Client) Size(ctx context.Context) (domain.CanvasSize, error) {
	resp, err := c.do(ctx, EndpointGetSize, httpclient.RequestSpec{
		Method: http.MethodGet,
		URL:    c.endpointURL(EndpointGetSize),
		Token:  c.token,
	})
	if err != nil {
		return domain.CanvasSize{}, err
	}

	var size domain.CanvasSize
	if err := json.Unmarshal(resp.BodyBytes, &size); err != nil {
		return domain.CanvasSize{}, c.decodeError(EndpointGetSize, err)
	}
	return size, nil
}

// Canvas fetches the full canvas for a known size.
func (c *Client) Canvas(ctx context.Context, size domain.CanvasSize) (domain.Canvas, error) {
	resp, err := c.do(ctx, EndpointGetPixels, httpclient.RequestSpec{
		Method: http.MethodGet,
		URL:    c.endpointURL(EndpointGetPixels),
		Token:  c.token,
	})
	if err != nil {
		return domain.Canvas{}, err
	}

	canvas, err := domain.DecodeCanvas(size, resp.BodyBytes)
	if err != nil {
		return domain.Canvas{}, c.decodeError(EndpointGetPixels, err)
	}
	return canvas, nil
}

// Pixel reads a single pixel.
func (c *Client) Pixel(ctx context.Context, x, y int) (domain.Pixel, error) {
	q := url.Values{}
	q.Set("x", strconv.Itoa(x))
	q.Set("y", strconv.Itoa(y))

	resp, err := c.do(ctx, EndpointGetPixel, httpclient.RequestSpec{
		Method: http.MethodGet,
		URL:    c.endpointURL(EndpointGetPixel),
		Query:  q,
		Token:  c.token,
	})
	if err != nil {
		return domain.Pixel{}, err
	}

	var p domain.Pixel
	if err := json.Unmarshal(resp.BodyBytes, &p); err != nil {
		return domain.Pixel{}, c.decodeError(EndpointGetPixel, err)
	}
	return p, nil
}

// SetPixel places a pixel and returns the API acknowledgment message.
func (c *Client) SetPixel(ctx context.Context, p domain.Pixel) (string, error) {
	resp, err := c.do(ctx, EndpointSetPixel, httpclient.RequestSpec{
		Method: http.MethodPost,
		URL:    c.endpointURL(EndpointSetPixel),
		JSON:   p,
		Token:  c.token,
	})
	if err != nil {
		return "", err
	}

	var ack struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.BodyBytes, &ack); err != nil {
		return "", c.decodeError(EndpointSetPixel, err)
	}
	return ack.Message, nil
}

// Limits returns the last observed rate-limit state per endpoint.
func (c *Client) Limits() map[string]domain.Limits {
	return c.limiter.Snapshot()
}

// do issues one API request. Before each attempt the limiter is consulted so
// cooldowns and exhausted windows advertised by earlier responses are waited
// out; a 429 answer records its cooldown and the request is retried up to the
// configured attempt budget.
func (c *Client) do(ctx context.Context, ep Endpoint, spec httpclient.RequestSpec) (httpclient.ResponseData, error) {
	op := "pixelsapi." + string(ep)

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx, ep); err != nil {
			return httpclient.ResponseData{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
		}

		req, err := httpclient.BuildRequest(ctx, spec)
		if err != nil {
			return httpclient.ResponseData{}, err
		}

		resp, err := c.exec.Do(ctx, req)
		if err != nil {
			return httpclient.ResponseData{}, &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
		}

		c.limiter.Observe(ep, resp.Headers)
		c.log.Debug("pixels.request",
			"endpoint", string(ep),
			"status", resp.Status,
			"duration_ms", resp.Duration.Milliseconds(),
			"attempt", attempt,
		)

		switch {
		case resp.Status == http.StatusTooManyRequests:
			c.log.Warn("pixels.cooldown", "endpoint", string(ep), "attempt", attempt)
			continue

		case resp.Status >= 500:
			return resp, &domain.OpError{
				Op:   op,
				Kind: domain.KindServer,
				Err:  &domain.APIError{Status: resp.Status, Body: string(resp.BodyBytes)},
			}

		case resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden:
			return resp, &domain.OpError{
				Op:   op,
				Kind: domain.KindAuth,
				Err:  &domain.APIError{Status: resp.Status, Body: string(resp.BodyBytes)},
			}

		case resp.Status >= 400:
			return resp, &domain.OpError{
				Op:   op,
				Kind: domain.KindAPI,
				Err:  &domain.APIError{Status: resp.Status, Body: string(resp.BodyBytes)},
			}
		}

		return resp, nil
	}

	return httpclient.ResponseData{}, &domain.OpError{Op: op, Kind: domain.KindRateLimited, Err: domain.ErrRateLimited}
}

func (c *Client) endpointURL(ep Endpoint) string {
	return c.baseURL + "/" + string(ep)
}

func (c *Client) decodeError(ep Endpoint, err error) error {
	return &domain.OpError{
		Op:   "pixelsapi." + string(ep) + ".decode",
		Kind: domain.KindExecution,
		Err:  err,
	}
}
