// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Absence is reported as domain.ErrNotFound, never as (nil, nil)
package ports

import (
	"context"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
)

// QuoteRepository is the authoritative collection of quotes.
//
// Implementations must be safe for concurrent use: HTTP handlers call
// into the repository from many goroutines.
type QuoteRepository interface {
	// GetAllQuotes returns every stored quote. Order is not part of the contract.
	GetAllQuotes(ctx context.Context) ([]domain.Quote, error)

	// GetQuotesByCategory returns quotes whose category equals category,
	// ignoring case. Returns an empty slice when nothing matches.
	GetQuotesByCategory(ctx context.Context, category string) ([]domain.Quote, error)

	// GetRandomQuote returns a uniformly chosen quote.
	// Returns domain.ErrNotFound when the collection is empty.
	GetRandomQuote(ctx context.Context) (*domain.Quote, error)

	// GetQuote returns the quote with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	GetQuote(ctx context.Context, id int) (*domain.Quote, error)

	// CreateQuote assigns the next id to draft and stores it.
	// The draft is stored as given; validation belongs to the caller.
	CreateQuote(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)
}

// UserRepository stores user accounts.
type UserRepository interface {
	// GetUser returns the user with the given id.
	// Returns domain.ErrNotFound if it does not exist.
	GetUser(ctx context.Context, id int) (*domain.User, error)

	// GetUserByUsername returns the user with an exactly matching username.
	// Returns domain.ErrNotFound if it does not exist.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser assigns the next id to draft and stores it.
	// Returns domain.ErrConflict if the username is taken.
	CreateUser(ctx context.Context, draft domain.UserDraft) (*domain.User, error)
}

// SeedSource supplies the initial quote list at startup.
type SeedSource interface {
	// Name identifies the source in diagnostics.
	Name() string

	// Load returns the seed records. An error means the source is
	// unavailable or malformed; no partial result is returned.
	Load(ctx context.Context) ([]domain.QuoteDraft, error)
}
