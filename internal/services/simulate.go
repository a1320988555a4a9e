package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/oakline/storefront/internal/config"
)

// Per-operation latency bands, mirroring what a small product API tends to
// show in the wild: reads are quick, order creation is the slow path.
const (
	listDelayMin   = 200 * time.Millisecond
	listDelayMax   = 600 * time.Millisecond
	detailDelayMin = 200 * time.Millisecond
	detailDelayMax = 550 * time.Millisecond
	createDelayMin = 400 * time.Millisecond
	createDelayMax = 800 * time.Millisecond
	lookupDelayMin = 150 * time.Millisecond
	lookupDelayMax = 400 * time.Millisecond
)

// SimulationPolicy is the swappable delay-and-failure strategy behind the
// mock data layer. The production policy is randomized; tests substitute
// Deterministic so nothing sleeps and nothing fails.
type SimulationPolicy interface {
	Wait(ctx context.Context, min, max time.Duration) error
	ShouldFail() bool
}

type randomPolicy struct {
	rate float64
	mu   sync.Mutex
	rng  *rand.Rand
}

func NewSimulationPolicy(cfg *config.Simulation) SimulationPolicy {
	return &randomPolicy{
		rate: cfg.FailureRate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait suspends the caller for a duration drawn uniformly from [min, max),
// honouring context cancellation.
func (p *randomPolicy) Wait(ctx context.Context, min, max time.Duration) error {

	delay := min

	if max > min {
		p.mu.Lock()
		delay += time.Duration(p.rng.Int63n(int64(max - min)))
		p.mu.Unlock()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *randomPolicy) ShouldFail() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rng.Float64() < p.rate
}

// Deterministic is the zero-delay, never-fail policy.
type Deterministic struct{}

func (Deterministic) Wait(ctx context.Context, _, _ time.Duration) error {
	return ctx.Err()
}

func (Deterministic) ShouldFail() bool {
	return false
}

// AlwaysFail trips the transient-failure path on every call. It exists for
// exercising retry/error handling in callers.
type AlwaysFail struct{}

func (AlwaysFail) Wait(ctx context.Context, _, _ time.Duration) error {
	return ctx.Err()
}

func (AlwaysFail) ShouldFail() bool {
	return true
}
