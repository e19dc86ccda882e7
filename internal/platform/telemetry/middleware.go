package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/daily-quote-service/internal/platform/telemetry"

	// HeaderTraceID carries the active trace id back to the caller.
	HeaderTraceID = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

// serverMetrics are the per-route HTTP instruments.
type serverMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newServerMetrics(meter metric.Meter) (*serverMetrics, error) {
	duration, errDur := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	total, errTotal := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	inFlight, errActive := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)

	if err := errors.Join(errDur, errTotal, errActive); err != nil {
		return nil, err
	}

	return &serverMetrics{duration: duration, total: total, inFlight: inFlight}, nil
}

func (m *serverMetrics) begin(ctx context.Context, attrs ...attribute.KeyValue) func(status int) {
	start := time.Now()
	m.inFlight.Add(ctx, 1, metric.WithAttributes(attrs...))

	return func(status int) {
		m.inFlight.Add(ctx, -1, metric.WithAttributes(attrs...))

		done := metric.WithAttributes(append(attrs, attribute.Int("http.status_code", status))...)
		m.duration.Record(ctx, time.Since(start).Seconds(), done)
		m.total.Add(ctx, 1, done)
	}
}

// Tracing returns the otelgin span middleware.
func Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// Middleware records request metrics, echoes the trace id in X-Trace-ID and
// adds it to the request logger. Install after Tracing so a span exists.
// Instruments bind to the meter provider that is global when it is called.
func Middleware() gin.HandlerFunc {
	metrics, err := newServerMetrics(otel.Meter(instrumentationName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(HeaderTraceID, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		if metrics == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		end := metrics.begin(ctx,
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
		)

		c.Next()

		end(c.Writer.Status())
	}
}
