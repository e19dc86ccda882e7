//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/daily-quote-service/internal/adapters/clients"
	"github.com/jsamuelsen/daily-quote-service/internal/adapters/memory"
	"github.com/jsamuelsen/daily-quote-service/internal/adapters/seed"
	"github.com/jsamuelsen/daily-quote-service/internal/platform/config"
)

// testSeedClient returns a client with fast retries for seed tests.
func testSeedClient(t *testing.T) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "quote-seed",
		Timeout:     2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     time.Minute,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)

	return client
}

func TestSeed_RemoteQuotableFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quotes", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"content": "Be yourself; everyone else is already taken.", "author": "Oscar Wilde", "tags": ["Famous Quotes", "Humor"]},
			{"content": "Whatever you are, be a good one.", "author": "Abraham Lincoln", "tags": ["Inspiration"]}
		]}`))
	}))
	defer server.Close()

	src := seed.NewHTTPSource(testSeedClient(t), server.URL+"/quotes", discardLogger())

	store := memory.New(context.Background(), memory.Config{Seed: src, Logger: discardLogger()})

	all, err := store.GetAllQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, "Oscar Wilde", all[0].Author)
	assert.Equal(t, "Famous Quotes", all[0].Category)
	assert.Equal(t, "Whatever you are, be a good one.", all[1].Text)
}

func TestSeed_RemoteRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		_, _ = w.Write([]byte(`[{"text": "t", "author": "a", "category": "c"}]`))
	}))
	defer server.Close()

	drafts, err := seed.NewHTTPSource(testSeedClient(t), server.URL, discardLogger()).Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, drafts, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSeed_ChainFallsBackPastFailingSources(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{not json`), 0o600))

	chain := seed.NewChain(discardLogger(),
		seed.NewHTTPSource(testSeedClient(t), server.URL, discardLogger()),
		seed.NewFileSource([]string{filepath.Join(dir, "missing.json"), broken}, discardLogger()),
		seed.NewEmbeddedSource(),
	)

	store := memory.New(context.Background(), memory.Config{Seed: chain, Logger: discardLogger()})

	assert.Equal(t, 20, store.QuoteCount())
}

func TestSeed_FileSourceWinsOverEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"text": "Less is more.", "author": "Ludwig Mies van der Rohe", "category": "Design"}
	]`), 0o600))

	chain := seed.NewChain(discardLogger(),
		seed.NewFileSource([]string{path}, discardLogger()),
		seed.NewEmbeddedSource(),
	)

	store := memory.New(context.Background(), memory.Config{Seed: chain, Logger: discardLogger()})

	got, err := store.GetQuotesByCategory(context.Background(), "design")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, store.QuoteCount())
}

func TestSeed_UnreachableRemoteLeavesStoreEmpty(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	store := memory.New(context.Background(), memory.Config{
		Seed:   seed.NewHTTPSource(testSeedClient(t), url, discardLogger()),
		Logger: discardLogger(),
	})

	assert.Equal(t, 0, store.QuoteCount())
	assert.NoError(t, store.Check(context.Background()))
}
