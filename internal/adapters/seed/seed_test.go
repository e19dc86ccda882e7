package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/daily-quote-service/internal/domain"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/config"
)

const validDoc = `[
  {"text": "I'll be back.", "author": "The Terminator", "category": "Movies"},
  {"text": "Be yourself; everyone else is already taken.", "author": "Oscar Wilde", "category": "Famous People"}
]`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newClient(t *testing.T) *clients.Client {
	t.Helper()
	c, err := clients.New(&clients.Config{
		ServiceName: "seed-remote",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	return c
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"valid array", validDoc, 2, false},
		{"empty array", `[]`, 0, false},
		{"not json", `quotes`, 0, true},
		{"object instead of array", `{"text": "x"}`, 0, true},
		{"missing author", `[{"text": "x", "category": "c"}]`, 0, true},
		{"blank category", `[{"text": "x", "author": "a", "category": "  "}]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drafts, err := decode(strings.NewReader(tt.input))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Len(t, drafts, tt.want)
		})
	}
}

func TestDecode_ReportsRecordIndex(t *testing.T) {
	_, err := decode(strings.NewReader(`[{"text":"a","author":"b","category":"c"},{"text":"a"}]`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.True(t, domain.IsValidation(err))
}

func TestEmbeddedSource(t *testing.T) {
	src := NewEmbeddedSource()

	drafts, err := src.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "embedded", src.Name())
	require.Len(t, drafts, 20)
	assert.Equal(t, "Steve Jobs", drafts[0].Author)
	assert.Equal(t, "Philosophy", drafts[0].Category)
	assert.Equal(t, "Franklin D. Roosevelt", drafts[19].Author)

	categories := make(map[string]int)
	for _, d := range drafts {
		categories[d.Category]++
	}
	assert.Equal(t, map[string]int{
		"Philosophy":    4,
		"Famous People": 5,
		"Inspiration":   4,
		"Movies":        4,
		"Success":       3,
	}, categories)
}

func TestFileSource(t *testing.T) {
	t.Run("first existing path wins", func(t *testing.T) {
		dir := t.TempDir()
		first := writeFile(t, dir, "a.json", validDoc)
		second := writeFile(t, dir, "b.json", `[{"text":"t","author":"a","category":"c"}]`)

		drafts, err := NewFileSource([]string{first, second}, discardLogger()).Load(context.Background())

		require.NoError(t, err)
		assert.Len(t, drafts, 2)
	})

	t.Run("skips missing and malformed paths", func(t *testing.T) {
		dir := t.TempDir()
		broken := writeFile(t, dir, "broken.json", `{not json`)
		good := writeFile(t, dir, "good.json", validDoc)

		src := NewFileSource([]string{filepath.Join(dir, "missing.json"), broken, good}, discardLogger())
		drafts, err := src.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "The Terminator", drafts[0].Author)
	})

	t.Run("all paths fail", func(t *testing.T) {
		dir := t.TempDir()
		src := NewFileSource([]string{filepath.Join(dir, "nope.json")}, discardLogger())

		_, err := src.Load(context.Background())

		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "nope.json")
	})

	t.Run("no paths", func(t *testing.T) {
		_, err := NewFileSource(nil, nil).Load(context.Background())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewFileSource([]string{"quotes.json"}, discardLogger()).Load(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPSource(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAuthor string
		wantCat    string
		wantErr    func(error) bool
	}{
		{
			name:       "native array",
			status:     http.StatusOK,
			body:       validDoc,
			wantAuthor: "The Terminator",
			wantCat:    "Movies",
		},
		{
			name:       "quotable results envelope",
			status:     http.StatusOK,
			body:       `{"results":[{"_id":"x1","content":"Stay hungry.","author":"Steve Jobs","tags":["Philosophy","Life"]}]}`,
			wantAuthor: "Steve Jobs",
			wantCat:    "Philosophy",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantErr: domain.IsUnavailable,
		},
		{
			name:    "envelope without results",
			status:  http.StatusOK,
			body:    `{"count": 0}`,
			wantErr: func(err error) bool { return errors.Is(err, ErrMalformed) },
		},
		{
			name:    "record without category or tags",
			status:  http.StatusOK,
			body:    `[{"content":"x","author":"y"}]`,
			wantErr: func(err error) bool { return errors.Is(err, ErrMalformed) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			src := NewHTTPSource(newClient(t), server.URL+"/quotes.json", discardLogger())
			drafts, err := src.Load(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, drafts)
			assert.Equal(t, tt.wantAuthor, drafts[0].Author)
			assert.Equal(t, tt.wantCat, drafts[0].Category)
		})
	}
}

func TestHTTPSource_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewHTTPSource(newClient(t), server.URL, discardLogger()).Load(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestNewHTTPSource_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewHTTPSource(nil, "http://x", nil) })
}

type fakeSource struct {
	name   string
	drafts []domain.QuoteDraft
	err    error
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Load(context.Context) ([]domain.QuoteDraft, error) {
	f.calls++
	return f.drafts, f.err
}

func TestChain(t *testing.T) {
	one := []domain.QuoteDraft{{Text: "t", Author: "a", Category: "c"}}

	t.Run("falls through to first success", func(t *testing.T) {
		remote := &fakeSource{name: "url", err: errors.New("connection refused")}
		file := &fakeSource{name: "file", drafts: one}
		embedded := &fakeSource{name: "embedded"}

		chain := NewChain(discardLogger(), remote, nil, file, embedded)
		drafts, err := chain.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, one, drafts)
		assert.Equal(t, 1, remote.calls)
		assert.Equal(t, 1, file.calls)
		assert.Zero(t, embedded.calls)
		assert.Equal(t, "url>file>embedded", chain.Name())
	})

	t.Run("all fail", func(t *testing.T) {
		chain := NewChain(discardLogger(),
			&fakeSource{name: "url", err: errors.New("boom")},
			&fakeSource{name: "file", err: os.ErrNotExist},
		)

		_, err := chain.Load(context.Background())

		require.ErrorIs(t, err, ErrNoSource)
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "url: boom")
	})

	t.Run("empty chain", func(t *testing.T) {
		_, err := NewChain(nil).Load(context.Background())
		require.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("embedded fallback", func(t *testing.T) {
		chain := NewChain(discardLogger(),
			NewFileSource([]string{filepath.Join(t.TempDir(), "missing.json")}, discardLogger()),
			NewEmbeddedSource(),
		)

		drafts, err := chain.Load(context.Background())

		require.NoError(t, err)
		assert.Len(t, drafts, 20)
	})
}
