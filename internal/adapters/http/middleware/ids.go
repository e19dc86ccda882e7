// Package middleware provides the gin middleware chain for the quote API.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one HTTP exchange.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID spans every hop of a caller's transaction.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin.Context key holding the request id.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin.Context key holding the correlation id.
	ContextKeyCorrelationID = "correlation_id"

	unknownID = "unknown"
)

// idKey keys ids stored in a context.Context. It never collides with the
// string keys gin.Context uses.
type idKey string

// idKind describes one propagated id: where it travels and who sees it.
type idKind struct {
	header string
	ginKey string
	ctxKey idKey
	logAs  func(context.Context, string) context.Context
}

var (
	requestIDKind = idKind{
		header: HeaderRequestID,
		ginKey: ContextKeyRequestID,
		ctxKey: idKey(ContextKeyRequestID),
		logAs:  logging.WithRequestID,
	}

	correlationIDKind = idKind{
		header: HeaderCorrelationID,
		ginKey: ContextKeyCorrelationID,
		ctxKey: idKey(ContextKeyCorrelationID),
		logAs:  logging.WithCorrelationID,
	}
)

// RequestID reuses the caller's X-Request-ID or issues a UUID.
func RequestID() gin.HandlerFunc { return requestIDKind.middleware() }

// CorrelationID reuses X-Correlation-ID; without one this request opens the transaction.
func CorrelationID() gin.HandlerFunc { return correlationIDKind.middleware() }

// middleware echoes the id in the response and stores it on the gin.Context,
// the request logger and the request context, where the seed client reads it.
func (k idKind) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(k.header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(k.ginKey, id)
		c.Header(k.header, id)

		ctx := k.logAs(c.Request.Context(), id)
		c.Request = c.Request.WithContext(context.WithValue(ctx, k.ctxKey, id))

		c.Next()
	}
}

func (k idKind) fromGin(c *gin.Context) string {
	v, _ := c.Get(k.ginKey)
	id, _ := v.(string)

	return id
}

func (k idKind) fromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(k.ctxKey).(string)

	return id
}

// GetRequestID returns the request id, or "" outside the middleware.
func GetRequestID(c *gin.Context) string { return requestIDKind.fromGin(c) }

// GetCorrelationID returns the correlation id, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string { return correlationIDKind.fromGin(c) }

// MustGetRequestID is GetRequestID with "unknown" in place of "".
func MustGetRequestID(c *gin.Context) string { return orUnknown(GetRequestID(c)) }

// MustGetCorrelationID is GetCorrelationID with "unknown" in place of "".
func MustGetCorrelationID(c *gin.Context) string { return orUnknown(GetCorrelationID(c)) }

// RequestIDFromContext returns the request id stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string { return requestIDKind.fromContext(ctx) }

// CorrelationIDFromContext returns the correlation id stored by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string { return correlationIDKind.fromContext(ctx) }

// ContextWithRequestID stores a request id for code running outside gin.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKind.ctxKey, id)
}

// ContextWithCorrelationID stores a correlation id for code running outside gin.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKind.ctxKey, id)
}

func orUnknown(id string) string {
	if id == "" {
		return unknownID
	}

	return id
}
