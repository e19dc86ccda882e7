package ports

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker implements HealthChecker for testing.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string {
	return s.name
}

func (s *stubChecker) Check(ctx context.Context) error {
	return s.err
}

func TestNewHealthRegistry(t *testing.T) {
	registry := NewHealthRegistry()

	require.NotNil(t, registry)
	assert.Empty(t, registry.checkers)
}

func TestRegister_DuplicateName(t *testing.T) {
	registry := NewHealthRegistry()

	require.NoError(t, registry.Register(&stubChecker{name: "quote-store"}))

	err := registry.Register(&stubChecker{name: "quote-store"})

	require.ErrorIs(t, err, ErrDuplicateChecker)
	assert.Contains(t, err.Error(), "quote-store")
	assert.Len(t, registry.checkers, 1)
}

func TestCheckAll_NoCheckers(t *testing.T) {
	result := NewHealthRegistry().CheckAll(context.Background())

	require.NotNil(t, result)
	assert.Equal(t, HealthStatusHealthy, result.Status)
	assert.NotNil(t, result.Checks)
	assert.Empty(t, result.Checks)
	assert.False(t, result.Timestamp.IsZero())
}

func TestCheckAll_WorstStatusWins(t *testing.T) {
	degraded := fmt.Errorf("%w: no quotes loaded", ErrDegraded)

	tests := []struct {
		name     string
		checkers []*stubChecker
		want     HealthStatus
	}{
		{
			name: "all healthy",
			checkers: []*stubChecker{
				{name: "quote-store"},
				{name: "seed"},
			},
			want: HealthStatusHealthy,
		},
		{
			name: "one degraded",
			checkers: []*stubChecker{
				{name: "quote-store", err: degraded},
				{name: "seed"},
			},
			want: HealthStatusDegraded,
		},
		{
			name: "unhealthy beats degraded",
			checkers: []*stubChecker{
				{name: "quote-store", err: degraded},
				{name: "seed", err: errors.New("connection refused")},
			},
			want: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, registry.Register(c))
			}

			result := registry.CheckAll(context.Background())

			assert.Equal(t, tt.want, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))
		})
	}
}

func TestCheckAll_RecordsMessages(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&stubChecker{name: "ok"}))
	require.NoError(t, registry.Register(&stubChecker{
		name: "store",
		err:  fmt.Errorf("%w: no quotes loaded", ErrDegraded),
	}))

	result := registry.CheckAll(context.Background())

	assert.Empty(t, result.Checks["ok"].Message)
	assert.Equal(t, HealthStatusDegraded, result.Checks["store"].Status)
	assert.Equal(t, "degraded: no quotes loaded", result.Checks["store"].Message)
}

// contextAwareChecker blocks until the context ends or a short delay passes.
type contextAwareChecker struct {
	name string
}

func (c *contextAwareChecker) Name() string {
	return c.name
}

func (c *contextAwareChecker) Check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func TestCheckAll_ContextCancelled(t *testing.T) {
	registry := NewHealthRegistry()
	require.NoError(t, registry.Register(&contextAwareChecker{name: "slow"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := registry.CheckAll(ctx)

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Contains(t, result.Checks["slow"].Message, "context canceled")
}
