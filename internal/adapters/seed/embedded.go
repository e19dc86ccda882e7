package seed

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

//go:embed data/quotes.json
var embeddedQuotes []byte

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Name implements ports.SeedSource.
func (*EmbeddedSource) Name() string {
	return "embedded"
}

// Load decodes the bundled dataset. It only fails if the binary was built with a broken file.
func (*EmbeddedSource) Load(_ context.Context) ([]domain.QuoteDraft, error) {
	return decode(bytes.NewReader(embeddedQuotes))
}
