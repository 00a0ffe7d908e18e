// Package observability provides hooks for logging and metrics around the
// chaos engine.
//
// The core packages stay free of any logging framework. Instead they report
// events through small hook interfaces that default to no-ops; the CLI
// registers implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetMutationHooks(&myMutationHooks{})
//	    observability.SetSchedulerHooks(&mySchedulerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Mutation().OnOperator(ctx, "swapAdjacent", 12, 12)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Mutation Hooks
// =============================================================================

// MutationHooks receives events from the mutation dispatcher.
type MutationHooks interface {
	// OnSeed records an empty note being seeded with a single symbol.
	OnSeed(ctx context.Context, symbol string)

	// OnOperator records one operator application with rune lengths.
	OnOperator(ctx context.Context, operator string, before, after int)
}

// =============================================================================
// Headline Hooks
// =============================================================================

// HeadlineHooks receives events from the headline animator.
type HeadlineHooks interface {
	// OnReverse records a sweep reaching an end and a new target being drawn.
	OnReverse(ctx context.Context, direction string, target string)
}

// =============================================================================
// Scheduler Hooks
// =============================================================================

// SchedulerHooks receives events from the tick scheduler.
type SchedulerHooks interface {
	// OnStart records both triggers being armed.
	OnStart(ctx context.Context, period, headlinePeriod time.Duration)

	// OnStop records both triggers being cancelled.
	OnStop(ctx context.Context)

	// OnPeriodChange records a new note mutation period.
	OnPeriodChange(ctx context.Context, from, to time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopMutationHooks is a no-op implementation of MutationHooks.
type NoopMutationHooks struct{}

func (NoopMutationHooks) OnSeed(context.Context, string)               {}
func (NoopMutationHooks) OnOperator(context.Context, string, int, int) {}

// NoopHeadlineHooks is a no-op implementation of HeadlineHooks.
type NoopHeadlineHooks struct{}

func (NoopHeadlineHooks) OnReverse(context.Context, string, string) {}

// NoopSchedulerHooks is a no-op implementation of SchedulerHooks.
type NoopSchedulerHooks struct{}

func (NoopSchedulerHooks) OnStart(context.Context, time.Duration, time.Duration)        {}
func (NoopSchedulerHooks) OnStop(context.Context)                                       {}
func (NoopSchedulerHooks) OnPeriodChange(context.Context, time.Duration, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	mutationHooks  MutationHooks  = NoopMutationHooks{}
	headlineHooks  HeadlineHooks  = NoopHeadlineHooks{}
	schedulerHooks SchedulerHooks = NoopSchedulerHooks{}
	hooksMu        sync.RWMutex
)

// SetMutationHooks registers custom mutation hooks.
// This should be called once at application startup.
func SetMutationHooks(h MutationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mutationHooks = h
	}
}

// SetHeadlineHooks registers custom headline hooks.
func SetHeadlineHooks(h HeadlineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		headlineHooks = h
	}
}

// SetSchedulerHooks registers custom scheduler hooks.
func SetSchedulerHooks(h SchedulerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		schedulerHooks = h
	}
}

// Mutation returns the registered mutation hooks.
func Mutation() MutationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mutationHooks
}

// Headline returns the registered headline hooks.
func Headline() HeadlineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return headlineHooks
}

// Scheduler returns the registered scheduler hooks.
func Scheduler() SchedulerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return schedulerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	mutationHooks = NoopMutationHooks{}
	headlineHooks = NoopHeadlineHooks{}
	schedulerHooks = NoopSchedulerHooks{}
}
