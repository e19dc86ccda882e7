package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/ports"
)

// Chain tries each source in order and returns the first successful load.
type Chain struct {
	sources []ports.SeedSource
	logger  *slog.Logger
}

var (
	_ ports.SeedSource = (*Chain)(nil)
	_ ports.SeedSource = (*FileSource)(nil)
	_ ports.SeedSource = (*HTTPSource)(nil)
	_ ports.SeedSource = (*EmbeddedSource)(nil)
)

// NewChain builds a chain. Nil sources are dropped.
func NewChain(logger *slog.Logger, sources ...ports.SeedSource) *Chain {
	if logger == nil {
		logger = slog.Default()
	}

	kept := make([]ports.SeedSource, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			kept = append(kept, src)
		}
	}

	return &Chain{
		sources: kept,
		logger:  logger.With(slog.String("component", "seed.Chain")),
	}
}

// Name lists the member sources, e.g. "url>file>embedded".
func (c *Chain) Name() string {
	names := make([]string, len(c.sources))
	for i, src := range c.sources {
		names[i] = src.Name()
	}

	return strings.Join(names, ">")
}

// Load returns the first source that loads. If all fail the joined error is unavailable.
func (c *Chain) Load(ctx context.Context) ([]domain.QuoteDraft, error) {
	errs := make([]error, 0, len(c.sources))

	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		drafts, err := src.Load(ctx)
		if err == nil {
			c.logger.InfoContext(ctx, "seed source selected", slog.String("source", src.Name()))
			return drafts, nil
		}

		c.logger.WarnContext(ctx, "seed source failed, trying next",
			slog.String("source", src.Name()),
			slog.Any("error", err),
		)
		errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
	}

	if len(errs) == 0 {
		return nil, ErrNoSource
	}

	return nil, fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}
