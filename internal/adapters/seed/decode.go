// Package seed loads the startup quote collection.
//
// Sources read a JSON array of {text, author, category} records. A Chain tries
// several sources in order and keeps the first one that loads cleanly.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

var (
	// ErrMalformed is returned when seed data is not a valid quote array.
	ErrMalformed = errors.New("malformed seed data")

	// ErrNoSource is returned by Chain when every source failed.
	ErrNoSource = errors.New("no seed source could be loaded")
)

type record struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

func (r record) draft() domain.QuoteDraft {
	return domain.QuoteDraft{Text: r.Text, Author: r.Author, Category: r.Category}
}

// decode reads a JSON array of quote records. One bad record rejects the whole set.
func decode(r io.Reader) ([]domain.QuoteDraft, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return toDrafts(records)
}

func toDrafts(records []record) ([]domain.QuoteDraft, error) {
	drafts := make([]domain.QuoteDraft, 0, len(records))

	for i, rec := range records {
		d := rec.draft()
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformed, i, err)
		}

		drafts = append(drafts, d)
	}

	return drafts, nil
}
