package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

const (
	// LoggedPathPrefix selects the requests that get a completion log line.
	LoggedPathPrefix = "/api"

	// maxPreviewLen bounds the response preview, in runes.
	maxPreviewLen = 80

	// captureLimit bounds how much of the response body is buffered.
	captureLimit = 1024
)

// Logger installs base as the request logger. Later middleware enriches it
// with ids; handlers read it back with logging.FromContext.
func Logger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), base))
		c.Next()
	}
}

// Logging returns middleware that logs one line per completed API request:
// method, path, status, latency and a short preview of the response body.
// Paths outside LoggedPathPrefix (health probes, swagger) are not logged.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.Request.URL.Path, LoggedPathPrefix) {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		capture := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		logging.FromContext(c.Request.Context()).Log(c.Request.Context(), level, "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Int64("latency_ms", latency.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("response", preview(capture.body.Bytes())),
		)
	}
}

// captureWriter keeps the first captureLimit bytes of the response body.
type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

// Write keeps a prefix of the body for the error log.
func (w *captureWriter) Write(b []byte) (int, error) {
	if room := captureLimit - w.body.Len(); room > 0 {
		w.body.Write(b[:min(room, len(b))])
	}

	return w.ResponseWriter.Write(b)
}

// WriteString is Write for gin string renderers.
func (w *captureWriter) WriteString(s string) (int, error) {
	if room := captureLimit - w.body.Len(); room > 0 {
		w.body.WriteString(s[:min(room, len(s))])
	}

	return w.ResponseWriter.WriteString(s)
}

// preview shortens body to maxPreviewLen runes, marking the cut with an ellipsis.
func preview(body []byte) string {
	s := strings.TrimSpace(string(body))
	if utf8.RuneCountInString(s) <= maxPreviewLen {
		return s
	}

	runes := []rune(s)

	return string(runes[:maxPreviewLen-1]) + "…"
}
