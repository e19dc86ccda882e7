package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen/daily-quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
)

// maxRemoteBody caps how much of a remote seed document is read.
const maxRemoteBody = 4 << 20

// HTTPSource fetches the seed document from a remote URL.
//
// Remote payloads are translated before they reach the domain. Besides the native
// {text, author, category} array it accepts quotable-style records
// ({content, author, tags}) and an object wrapping the array under "results".
type HTTPSource struct {
	client *clients.Client
	url    string
	logger *slog.Logger
}

// NewHTTPSource creates a remote source. Panics if client is nil.
func NewHTTPSource(client *clients.Client, url string, logger *slog.Logger) *HTTPSource {
	if client == nil {
		panic("HTTPSource: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPSource{
		client: client,
		url:    url,
		logger: logger.With(slog.String("component", "seed.HTTPSource")),
	}
}

// Name implements ports.SeedSource.
func (s *HTTPSource) Name() string {
	return "url"
}

// remoteQuote is the external record shape. It never leaves this file.
type remoteQuote struct {
	Text     string   `json:"text"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type remoteEnvelope struct {
	Results []remoteQuote `json:"results"`
}

// Load fetches the remote document and translates its records into drafts.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.QuoteDraft, error) {
	s.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("url", s.url))

	resp, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, domain.NewUnavailableError(s.client.ServiceName(), err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	s.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("url", s.url),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUnavailableError(s.client.ServiceName(),
			fmt.Sprintf("unexpected HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBody))
	if err != nil {
		return nil, fmt.Errorf("reading seed response: %w", err)
	}

	items, err := parseRemote(body)
	if err != nil {
		return nil, err
	}

	records := make([]record, 0, len(items))
	for i := range items {
		records = append(records, translate(&items[i]))
	}

	drafts, err := toDrafts(records)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "fetched remote seed",
		slog.String("url", s.url),
		slog.Int("count", len(drafts)),
	)

	return drafts, nil
}

func parseRemote(body []byte) ([]remoteQuote, error) {
	trimmed := strings.TrimSpace(string(body))

	if strings.HasPrefix(trimmed, "{") {
		var env remoteEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		if env.Results == nil {
			return nil, fmt.Errorf("%w: object without results array", ErrMalformed)
		}

		return env.Results, nil
	}

	var items []remoteQuote
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return items, nil
}

// translate maps an external record onto the native shape.
// The first tag stands in for a missing category.
func translate(ext *remoteQuote) record {
	rec := record{
		Text:     ext.Text,
		Author:   ext.Author,
		Category: ext.Category,
	}

	if rec.Text == "" {
		rec.Text = ext.Content
	}

	if rec.Category == "" && len(ext.Tags) > 0 {
		rec.Category = ext.Tags[0]
	}

	return rec
}
