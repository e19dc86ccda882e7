// Package memory provides the process-lifetime quote and user store.
//
// Records live in append-only slices with an id index beside them.
// Nothing is ever deleted, so slot positions are stable and ids are never reused.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/ports"
)

const checkerName = "quote-store"

// Config contains the store's dependencies.
type Config struct {
	// Seed supplies the initial quotes. Nil starts the store empty.
	Seed ports.SeedSource

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger

	// Rand returns a uniform int in [0, n). Defaults to math/rand/v2 IntN.
	Rand func(n int) int
}

// Store implements ports.QuoteRepository and ports.UserRepository.
// Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	quotes      []domain.Quote
	quoteSlots  map[int]int
	nextQuoteID int

	users      []domain.User
	userSlots  map[int]int
	usernames  map[string]int
	nextUserID int

	randIntN func(n int) int
	logger   *slog.Logger
}

var (
	_ ports.QuoteRepository = (*Store)(nil)
	_ ports.UserRepository  = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// New creates a store and loads the seed synchronously.
// A seed failure is logged and the store starts empty; it is never fatal.
func New(ctx context.Context, cfg Config) *Store {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	randIntN := cfg.Rand
	if randIntN == nil {
		randIntN = rand.IntN
	}

	s := &Store{
		quoteSlots:  make(map[int]int),
		nextQuoteID: 1,
		userSlots:   make(map[int]int),
		usernames:   make(map[string]int),
		nextUserID:  1,
		randIntN:    randIntN,
		logger:      logger.With(slog.String("component", "memory.Store")),
	}

	if cfg.Seed != nil {
		s.seed(ctx, cfg.Seed)
	}

	return s
}

func (s *Store) seed(ctx context.Context, src ports.SeedSource) {
	drafts, err := src.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "could not load seed quotes, continuing with empty collection",
			slog.String("source", src.Name()),
			slog.Any("error", err),
		)
		return
	}

	s.mu.Lock()
	for _, d := range drafts {
		s.insertQuote(d)
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "loaded seed quotes",
		slog.String("source", src.Name()),
		slog.Int("count", len(drafts)),
	)
}

// insertQuote must be called with the write lock held.
func (s *Store) insertQuote(d domain.QuoteDraft) domain.Quote {
	q := d.WithID(s.nextQuoteID)
	s.nextQuoteID++

	s.quoteSlots[q.ID] = len(s.quotes)
	s.quotes = append(s.quotes, q)

	return q
}

// GetAllQuotes returns a copy of every stored quote in insertion order.
func (s *Store) GetAllQuotes(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out, nil
}

// GetQuotesByCategory returns quotes in category, ignoring case.
func (s *Store) GetQuotesByCategory(_ context.Context, category string) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, 0)
	for _, q := range s.quotes {
		if q.InCategory(category) {
			out = append(out, q)
		}
	}

	return out, nil
}

// GetRandomQuote returns a uniformly chosen quote, or domain.ErrNotFound when empty.
func (s *Store) GetRandomQuote(_ context.Context) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quotes) == 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	q := s.quotes[s.randIntN(len(s.quotes))]

	return &q, nil
}

// GetQuote returns the quote with the given id.
func (s *Store) GetQuote(_ context.Context, id int) (*domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.quoteSlots[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", domain.FormatID(id))
	}

	q := s.quotes[slot]

	return &q, nil
}

// CreateQuote stores draft under the next id.
func (s *Store) CreateQuote(_ context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	s.mu.Lock()
	q := s.insertQuote(draft)
	s.mu.Unlock()

	return &q, nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.userSlots[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", domain.FormatID(id))
	}

	u := s.users[slot]

	return &u, nil
}

// GetUserByUsername returns the user with exactly this username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.usernames[username]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "user"}
	}

	u := s.users[slot]

	return &u, nil
}

// CreateUser stores draft under the next id. Usernames are unique.
func (s *Store) CreateUser(_ context.Context, draft domain.UserDraft) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[draft.Username]; taken {
		return nil, domain.NewConflictError("user", "username", draft.Username)
	}

	u := draft.WithID(s.nextUserID)
	s.nextUserID++

	slot := len(s.users)
	s.users = append(s.users, u)
	s.userSlots[u.ID] = slot
	s.usernames[u.Username] = slot

	return &u, nil
}

// QuoteCount returns the number of stored quotes.
func (s *Store) QuoteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// UserCount returns the number of stored users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// Check implements ports.HealthChecker. An empty store still serves
// requests, so it reports degraded rather than unhealthy.
func (s *Store) Check(_ context.Context) error {
	if s.QuoteCount() == 0 {
		return fmt.Errorf("%w: no quotes loaded", ports.ErrDegraded)
	}

	return nil
}
