package ports

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrDuplicateChecker is returned by Register for a name already taken.
	ErrDuplicateChecker = errors.New("duplicate health checker")

	// ErrDegraded marks a failure that keeps the service in rotation, e.g.
	// fmt.Errorf("%w: no quotes loaded", ports.ErrDegraded).
	ErrDegraded = errors.New("degraded")
)

// HealthChecker is a component the readiness probe asks about.
// Check returns nil when healthy and an error wrapping ErrDegraded when
// degraded; any other error is unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the outcome of one check or of a whole probe.
type HealthStatus string

// Probe outcomes, from best to worst.
const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

func (s HealthStatus) worse(than HealthStatus) bool {
	rank := map[HealthStatus]int{HealthStatusDegraded: 1, HealthStatusUnhealthy: 2}

	return rank[s] > rank[than]
}

// HealthResult is one probe: the worst status plus each check by name.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of a single checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry keeps checkers in registration order.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{}
}

// Register rejects a second checker with an existing name.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.ContainsFunc(r.checkers, func(c HealthChecker) bool { return c.Name() == checker.Name() }) {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every checker concurrently and waits for all of them.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = probe(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, c := range checkers {
		out.Checks[c.Name()] = results[i]
		if results[i].Status.worse(out.Status) {
			out.Status = results[i].Status
		}
	}

	return out
}

func probe(ctx context.Context, c HealthChecker) *CheckResult {
	start := time.Now()
	err := c.Check(ctx)
	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}

	if err != nil {
		res.Status = HealthStatusUnhealthy
		if errors.Is(err, ErrDegraded) {
			res.Status = HealthStatusDegraded
		}
		res.Message = err.Error()
	}

	return res
}
