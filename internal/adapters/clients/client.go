package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/daily-quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/config"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/daily-quote-service/internal/adapters/clients"

	defaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL prefixes relative request paths.
	BaseURL string

	// ServiceName names the remote end in logs, spans and metrics. Required.
	ServiceName string

	// Timeout bounds a single attempt, not the whole retry sequence.
	Timeout time.Duration

	Retry     config.RetryConfig
	Transport config.TransportConfig

	Logger *slog.Logger
}

// Client fetches seed documents over HTTP. Server errors and transient
// network failures are retried with jittered exponential backoff; every
// call gets a client span, metrics and the caller's request ids.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	retry       config.RetryConfig
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     clientMetrics
}

type clientMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
}

// New creates a client. ServiceName is required; zero timeouts and attempts get defaults.
func New(cfg *Config) (*Client, error) {
	switch {
	case cfg == nil:
		return nil, errors.New("config is required")
	case cfg.ServiceName == "":
		return nil, errors.New("service name is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := cfg.Retry
	retry.MaxAttempts = max(retry.MaxAttempts, 1)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	meter := otel.Meter(instrumentationName)
	duration, errDur := meter.Float64Histogram("http.client.request.duration",
		metric.WithDescription("Duration of HTTP client requests"),
		metric.WithUnit("s"),
	)
	total, errTotal := meter.Int64Counter("http.client.request.total",
		metric.WithDescription("Total number of HTTP client requests"),
	)
	if err := errors.Join(errDur, errTotal); err != nil {
		return nil, fmt.Errorf("creating client instruments: %w", err)
	}

	return &Client{
		http:        &http.Client{Timeout: timeout, Transport: pooledTransport(cfg.Transport)},
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceName: cfg.ServiceName,
		retry:       retry,
		logger:      logger.With(slog.String("component", "clients.Client"), slog.String("downstream", cfg.ServiceName)),
		tracer:      otel.Tracer(instrumentationName),
		metrics:     clientMetrics{duration: duration, total: total},
	}, nil
}

// pooledTransport clones the default transport and applies any non-zero
// pool settings.
func pooledTransport(cfg config.TransportConfig) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.MaxIdleConns > 0 {
		t.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost > 0 {
		t.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}
	if cfg.IdleConnTimeout > 0 {
		t.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return t
}

// ServiceName returns the downstream name.
func (c *Client) ServiceName() string { return c.serviceName }

// Get fetches BaseURL+path, or path itself when it is an absolute URL.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return c.Do(ctx, req)
}

// Do sends req with retries. A 4xx response is returned to the caller
// untouched. Once attempts run out the error wraps ErrMaxRetriesExceeded;
// a cancelled or expired ctx is returned as is. Bodies are only replayed
// when req.GetBody is set.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContextOr(ctx, c.logger).With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
	)

	forwardIDs(ctx, req)

	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.attempts(ctx, req, logger)
	elapsed := time.Since(start)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, req.Method, 0, elapsed)
		logger.WarnContext(ctx, "request failed", slog.Duration("duration", elapsed), slog.Any("error", err))

		if ctx.Err() != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, "HTTP "+resp.Status)
	}

	c.record(ctx, req.Method, resp.StatusCode, elapsed)
	logger.DebugContext(ctx, "request completed", slog.Int("status", resp.StatusCode), slog.Duration("duration", elapsed))

	return resp, nil
}

// attempts runs up to MaxAttempts tries and returns the first response
// below 500, or the last failure.
func (c *Client) attempts(ctx context.Context, req *http.Request, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for attempt := range c.retry.MaxAttempts {
		if attempt > 0 {
			if err := c.sleep(ctx, attempt, logger); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req.WithContext(ctx))

		switch {
		case err != nil && ctx.Err() != nil:
			return nil, err
		case err != nil && !isRetryableError(err):
			return nil, err
		case err != nil:
			lastErr = err
		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		default:
			return resp, nil
		}

		logger.DebugContext(ctx, "attempt failed", slog.Int("attempt", attempt+1), slog.Any("error", lastErr))
	}

	return nil, lastErr
}

func (c *Client) sleep(ctx context.Context, attempt int, logger *slog.Logger) error {
	backoff := c.calculateBackoff(attempt)
	logger.DebugContext(ctx, "backing off", slog.Int("next_attempt", attempt+1), slog.Duration("backoff", backoff))

	timer := time.NewTimer(backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// calculateBackoff is InitialInterval*Multiplier^(attempt-1), capped at
// MaxInterval, then moved by up to ±JitterFactor of itself.
func (c *Client) calculateBackoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(max(attempt-1, 0)))

	if ceiling := float64(c.retry.MaxInterval); ceiling > 0 {
		d = math.Min(d, ceiling)
	}

	if c.retry.JitterFactor > 0 {
		d *= 1 + c.retry.JitterFactor*(2*rand.Float64()-1) //nolint:gosec // jitter only
	}

	return time.Duration(d)
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// record counts one call. result is the status class ("2xx") or "error".
func (c *Client) record(ctx context.Context, method string, status int, elapsed time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("peer.service", c.serviceName),
	}

	if status > 0 {
		attrs = append(attrs,
			attribute.String("result", fmt.Sprintf("%dxx", status/100)),
			attribute.Int("http.status_code", status),
		)
	} else {
		attrs = append(attrs, attribute.String("result", "error"))
	}

	set := metric.WithAttributes(attrs...)
	c.metrics.duration.Record(ctx, elapsed.Seconds(), set)
	c.metrics.total.Add(ctx, 1, set)
}

func forwardIDs(ctx context.Context, req *http.Request) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}
}

// isRetryableError reports whether a transport error is worth another try.
// Timeouts are, including an attempt hitting Client.Timeout; attempts
// checks the caller's ctx first so its cancellation or deadline is final.
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}
