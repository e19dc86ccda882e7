// Package domain contains core business entities and rules.
package domain

import (
	"strconv"
	"strings"
)

// Quote is a stored quotation. ID is assigned by the store and never reused.
type Quote struct {
	ID       int
	Text     string
	Author   string
	Category string
}

// QuoteDraft is a quote that has not been stored yet.
type QuoteDraft struct {
	Text     string
	Author   string
	Category string
}

// Validate checks that every field is present and not blank.
// All failing fields are reported, not just the first.
func (d QuoteDraft) Validate() error {
	var fields []FieldError

	for _, f := range []struct{ name, value string }{
		{"text", d.Text},
		{"author", d.Author},
		{"category", d.Category},
	} {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, FieldError{
				Field:   f.name,
				Code:    CodeRequired,
				Message: "this field is required",
			})
		}
	}

	return NewFieldValidationError("invalid quote", fields)
}

// WithID returns the stored form of the draft.
func (d QuoteDraft) WithID(id int) Quote {
	return Quote{ID: id, Text: d.Text, Author: d.Author, Category: d.Category}
}

// InCategory reports whether the quote belongs to category, ignoring case.
func (q Quote) InCategory(category string) bool {
	return strings.EqualFold(q.Category, category)
}

// FormatID formats a numeric id for error messages and log attributes.
func FormatID(id int) string {
	return strconv.Itoa(id)
}
