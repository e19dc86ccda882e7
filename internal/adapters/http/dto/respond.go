package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

// InternalErrorMessage is the message used when nothing more specific applies.
const InternalErrorMessage = "Internal Server Error"

// TimeoutMessage is sent when the request deadline passes before the work is done.
const TimeoutMessage = "request timeout exceeded"

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors map to 500 with InternalErrorMessage so internals never leak.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return http.StatusBadRequest, NewValidationResponse(ve.Message, FromDomainFields(ve.Fields))
		}

		return http.StatusBadRequest, NewErrorResponse(ErrorCodeValidation, err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return HTTPStatusFromCode(ErrorCodeTimeout), NewErrorResponse(ErrorCodeTimeout, TimeoutMessage)

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, InternalErrorMessage)
	}
}

// HandleError writes the mapped error response for err.
// internalMessage replaces the generic text on 500s, e.g. "Failed to fetch quotes".
// 5xx errors are logged with the request logger.
func HandleError(c *gin.Context, err error, internalMessage string) {
	status, resp := MapDomainError(err)

	if status == http.StatusInternalServerError && internalMessage != "" {
		resp.Message = internalMessage
	}

	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("request failed",
			slog.String("error", err.Error()),
			slog.Int("status", status),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from the domain.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}

// RespondWithValidationErrors writes a 400 response carrying field errors.
func RespondWithValidationErrors(c *gin.Context, message string, fields []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, NewValidationResponse(message, fields).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the active trace id, or "" when the request is not traced.
func GetTraceID(c *gin.Context) string {
	if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return ""
}

// FromDomainFields converts domain field errors to their wire form.
func FromDomainFields(fields []domain.FieldError) []FieldError {
	out := make([]FieldError, len(fields))
	for i, f := range fields {
		out[i] = FieldError{Field: f.Field, Code: f.Code, Message: f.Message}
	}

	return out
}
