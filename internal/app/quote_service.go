// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/daily-quote-service/internal/ports"
)

// QuoteService orchestrates quote use cases over a QuoteRepository.
// Every method returns ctx's error without touching the store once the
// request deadline has passed or the caller went away.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if Repository is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteServiceConfig.Repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger.With(slog.String("component", "app.QuoteService")),
	}
}

// ListQuotes returns every quote.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	quotes, err := s.repo.GetAllQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// RandomQuote returns one quote chosen uniformly.
// Returns domain.ErrNotFound when there are no quotes.
func (s *QuoteService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("picking random quote: %w", err)
	}

	quote, err := s.repo.GetRandomQuote(ctx)
	if err != nil {
		return nil, fmt.Errorf("picking random quote: %w", err)
	}

	s.log(ctx).DebugContext(ctx, "picked random quote", slog.Int("quote_id", quote.ID))

	return quote, nil
}

// QuotesByCategory returns quotes in category, compared case-insensitively.
func (s *QuoteService) QuotesByCategory(ctx context.Context, category string) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("listing quotes in category: %w", err)
	}

	quotes, err := s.repo.GetQuotesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("listing quotes in category %q: %w", category, err)
	}

	s.log(ctx).DebugContext(ctx, "listed quotes by category",
		slog.String("category", category),
		slog.Int("count", len(quotes)),
	)

	return quotes, nil
}

// GetQuote returns the quote with id, or domain.ErrNotFound.
func (s *QuoteService) GetQuote(ctx context.Context, id int) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	quote, err := s.repo.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote %d: %w", id, err)
	}

	return quote, nil
}

// CreateQuote validates draft and stores it under a fresh id.
func (s *QuoteService) CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	quote, err := s.repo.CreateQuote(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	s.log(ctx).InfoContext(ctx, "quote created",
		slog.Int("quote_id", quote.ID),
		slog.String("category", quote.Category),
	)

	return quote, nil
}

// log prefers the request logger, which carries request and trace ids.
func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
