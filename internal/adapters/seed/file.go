package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

// FileSource reads the first usable file among several candidate paths.
// A missing or unreadable candidate is skipped; a malformed one is logged and skipped.
type FileSource struct {
	paths  []string
	logger *slog.Logger
}

// NewFileSource creates a source over paths, tried in order.
func NewFileSource(paths []string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}

	return &FileSource{
		paths:  paths,
		logger: logger.With(slog.String("component", "seed.FileSource")),
	}
}

// Name implements ports.SeedSource.
func (s *FileSource) Name() string {
	return "file"
}

// Load returns the first candidate path that reads and decodes cleanly.
func (s *FileSource) Load(ctx context.Context) ([]domain.QuoteDraft, error) {
	var errs []error

	for _, path := range s.paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		drafts, err := loadFile(path)
		if err == nil {
			s.logger.InfoContext(ctx, "loaded seed file",
				slog.String("path", path),
				slog.Int("count", len(drafts)),
			)

			return drafts, nil
		}

		if errors.Is(err, os.ErrNotExist) {
			s.logger.DebugContext(ctx, "seed file not found", slog.String("path", path))
		} else {
			s.logger.WarnContext(ctx, "failed to load seed file",
				slog.String("path", path),
				slog.Any("error", err),
			)
		}

		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, errors.New("no seed file paths configured")
	}

	return nil, fmt.Errorf("tried %v: %w", s.paths, errors.Join(errs...))
}

func loadFile(path string) ([]domain.QuoteDraft, error) {
	f, err := os.Open(path) //nolint:gosec // operator-configured path
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	drafts, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return drafts, nil
}
