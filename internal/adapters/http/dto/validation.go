package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

// jsonTagParts is the number of parts when splitting a JSON tag by comma.
// The first part is the field name, subsequent parts are options like "omitempty".
const jsonTagParts = 2

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
// It initializes the validator with custom validations on first call.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// Use JSON tag names in error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", jsonTagParts)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", validateNotEmpty)
	})

	return validate
}

// CreateQuoteRequest is the body of POST /api/quotes.
type CreateQuoteRequest struct {
	Text     string `json:"text"     validate:"required,notempty"`
	Author   string `json:"author"   validate:"required,notempty"`
	Category string `json:"category" validate:"required,notempty"`
}

// ToDraft converts the request into a domain draft.
func (r CreateQuoteRequest) ToDraft() domain.QuoteDraft {
	return domain.QuoteDraft{Text: r.Text, Author: r.Author, Category: r.Category}
}

// createQuoteFields lists the accepted string fields in reporting order.
var createQuoteFields = []string{"text", "author", "category"}

// ValidateCreateQuote parses and checks a create-quote body.
// It returns the draft, or every problem found. Unknown fields are ignored.
// The id field is rejected because ids are assigned by the store.
func ValidateCreateQuote(body []byte) (domain.QuoteDraft, []FieldError) {
	var raw map[string]json.RawMessage

	if len(bytes.TrimSpace(body)) == 0 {
		return domain.QuoteDraft{}, []FieldError{bodyError("request body is required")}
	}

	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return domain.QuoteDraft{}, []FieldError{bodyError("request body must be a JSON object")}
	}

	var (
		req      CreateQuoteRequest
		problems []FieldError
		reported = make(map[string]bool)
	)

	values := map[string]*string{
		"text":     &req.Text,
		"author":   &req.Author,
		"category": &req.Category,
	}

	for _, name := range createQuoteFields {
		value, ok := raw[name]
		if !ok || string(value) == "null" {
			continue
		}

		if err := json.Unmarshal(value, values[name]); err != nil {
			problems = append(problems, FieldError{
				Field:   name,
				Code:    domain.CodeInvalidType,
				Message: "must be a string",
			})
			reported[name] = true
		}
	}

	problems = append(problems, structErrors(req, reported)...)

	if _, ok := raw["id"]; ok {
		problems = append(problems, FieldError{
			Field:   "id",
			Code:    domain.CodeNotAllowed,
			Message: "id is assigned by the server",
		})
	}

	if len(problems) > 0 {
		return domain.QuoteDraft{}, problems
	}

	return req.ToDraft(), nil
}

// structErrors runs tag validation and drops fields already reported.
func structErrors(req CreateQuoteRequest, skip map[string]bool) []FieldError {
	err := Validator().Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Code: domain.CodeInvalid, Message: err.Error()}}
	}

	var out []FieldError

	for _, fe := range validationErrs {
		if skip[fe.Field()] {
			continue
		}

		skip[fe.Field()] = true
		out = append(out, FieldError{
			Field:   fe.Field(),
			Code:    domain.CodeRequired,
			Message: validationMessage(fe),
		})
	}

	return out
}

func bodyError(message string) FieldError {
	return FieldError{Code: domain.CodeInvalid, Message: message}
}

// validationMessages maps validation tags to message templates.
var validationMessages = map[string]string{
	"required": "this field is required",
	"notempty": "must not be blank",
}

// validationMessage returns a human-readable message for a validation error.
func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return msg
	}

	return "failed validation: " + fe.Tag()
}

// validateNotEmpty validates that a string is not empty after trimming whitespace.
func validateNotEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
