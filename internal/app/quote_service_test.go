package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, setup func(*mocks.MockQuoteRepository)) *QuoteService {
	t.Helper()

	repo := mocks.NewMockQuoteRepository(t)
	if setup != nil {
		setup(repo)
	}

	return NewQuoteService(QuoteServiceConfig{Repository: repo, Logger: discardLogger()})
}

var errStore = errors.New("store offline")

func TestNewQuoteService_PanicsWithoutRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_DefaultsLogger(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Repository: mocks.NewMockQuoteRepository(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
}

func TestQuoteService_ListQuotes(t *testing.T) {
	quotes := []domain.Quote{
		{ID: 1, Text: "a", Author: "b", Category: "c"},
		{ID: 2, Text: "d", Author: "e", Category: "f"},
	}

	t.Run("success", func(t *testing.T) {
		svc := newService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().GetAllQuotes(mock.Anything).Return(quotes, nil)
		})

		got, err := svc.ListQuotes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, quotes, got)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		svc := newService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().GetAllQuotes(mock.Anything).Return(nil, errStore)
		})

		got, err := svc.ListQuotes(context.Background())

		require.ErrorIs(t, err, errStore)
		assert.Nil(t, got)
	})
}

func TestQuoteService_RandomQuote(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockQuoteRepository)
		want      *domain.Quote
		errCheck  func(error) bool
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(&domain.Quote{ID: 4, Text: "t", Author: "a", Category: "c"}, nil)
			},
			want: &domain.Quote{ID: 4, Text: "t", Author: "a", Category: "c"},
		},
		{
			name: "empty collection",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().GetRandomQuote(mock.Anything).
					Return(nil, domain.NewNotFoundError("quote", ""))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "store error",
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().GetRandomQuote(mock.Anything).Return(nil, errStore)
			},
			errCheck: func(err error) bool { return errors.Is(err, errStore) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.setupMock)

			got, err := svc.RandomQuote(context.Background())

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteService_QuotesByCategory(t *testing.T) {
	svc := newService(t, func(m *mocks.MockQuoteRepository) {
		m.EXPECT().GetQuotesByCategory(mock.Anything, "movies").
			Return([]domain.Quote{{ID: 9, Text: "t", Author: "a", Category: "Movies"}}, nil)
		m.EXPECT().GetQuotesByCategory(mock.Anything, "broken").Return(nil, errStore)
	})

	got, err := svc.QuotesByCategory(context.Background(), "movies")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.QuotesByCategory(context.Background(), "broken")
	require.ErrorIs(t, err, errStore)
	assert.Contains(t, err.Error(), `"broken"`)
}

func TestQuoteService_GetQuote(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		setupMock func(*mocks.MockQuoteRepository)
		want      *domain.Quote
		errCheck  func(error) bool
	}{
		{
			name: "found",
			id:   3,
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().GetQuote(mock.Anything, 3).
					Return(&domain.Quote{ID: 3, Text: "t", Author: "a", Category: "c"}, nil)
			},
			want: &domain.Quote{ID: 3, Text: "t", Author: "a", Category: "c"},
		},
		{
			name: "not found",
			id:   99999,
			setupMock: func(m *mocks.MockQuoteRepository) {
				m.EXPECT().GetQuote(mock.Anything, 99999).
					Return(nil, domain.NewNotFoundError("quote", "99999"))
			},
			errCheck: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.setupMock)

			got, err := svc.GetQuote(context.Background(), tt.id)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteService_CreateQuote(t *testing.T) {
	draft := domain.QuoteDraft{Text: "Stay hungry.", Author: "Steve Jobs", Category: "Success"}

	t.Run("stores valid draft", func(t *testing.T) {
		svc := newService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().CreateQuote(mock.Anything, draft).Return(&domain.Quote{
				ID: 21, Text: draft.Text, Author: draft.Author, Category: draft.Category,
			}, nil)
		})

		got, err := svc.CreateQuote(context.Background(), draft)

		require.NoError(t, err)
		assert.Equal(t, 21, got.ID)
		assert.Equal(t, draft, domain.QuoteDraft{Text: got.Text, Author: got.Author, Category: got.Category})
	})

	t.Run("invalid draft never reaches the store", func(t *testing.T) {
		svc := newService(t, nil)

		got, err := svc.CreateQuote(context.Background(), domain.QuoteDraft{Text: "only text"})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Nil(t, got)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 2)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		svc := newService(t, func(m *mocks.MockQuoteRepository) {
			m.EXPECT().CreateQuote(mock.Anything, draft).Return(nil, errStore)
		})

		_, err := svc.CreateQuote(context.Background(), draft)

		require.ErrorIs(t, err, errStore)
	})
}

func TestQuoteService_ExpiredContextSkipsStore(t *testing.T) {
	// No expectations: any repository call fails the test.
	svc := newService(t, nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	calls := map[string]func() error{
		"list":     func() error { _, err := svc.ListQuotes(ctx); return err },
		"random":   func() error { _, err := svc.RandomQuote(ctx); return err },
		"category": func() error { _, err := svc.QuotesByCategory(ctx, "Movies"); return err },
		"get":      func() error { _, err := svc.GetQuote(ctx, 1); return err },
		"create": func() error {
			_, err := svc.CreateQuote(ctx, domain.QuoteDraft{Text: "t", Author: "a", Category: "c"})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, call(), context.DeadlineExceeded)
		})
	}
}
