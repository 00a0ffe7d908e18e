// Package scheduler drives the two chaos triggers: the note mutation tick
// and the faster headline tick.
//
// Both timers live on one loop goroutine, which also runs the handlers, so
// two handlers never execute at the same time. Start, Stop and SetPeriod
// are applied by that loop between ticks:
//
//   - Start arms both timers unless they are already armed.
//   - Stop cancels both timers as a unit and is safe to repeat.
//   - SetPeriod cancels the pending note tick and re-arms it with the new
//     period; an in-flight wait is never stretched or shortened.
//
// Handlers must not call back into the Scheduler synchronously; they run on
// the loop goroutine and would wait on themselves.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/chaosnote/pkg/observability"
)

// Default periods, matching the editor's initial settings.
const (
	DefaultPeriod         = 750 * time.Millisecond
	DefaultHeadlinePeriod = 120 * time.Millisecond
)

// Handlers are invoked on each tick. A nil handler disables its trigger.
type Handlers struct {
	Note     func(ctx context.Context)
	Headline func(ctx context.Context)
}

// Options configures tick periods. Zero values use the defaults.
type Options struct {
	Period         time.Duration
	HeadlinePeriod time.Duration
}

type commandKind int

const (
	cmdStart commandKind = iota
	cmdStop
	cmdPeriod
)

type command struct {
	kind   commandKind
	period time.Duration
	ack    chan struct{}
}

// Scheduler owns the note and headline tickers.
type Scheduler struct {
	handlers       Handlers
	headlinePeriod time.Duration

	cmds      chan command
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	running bool
	period  time.Duration
}

// New creates a stopped scheduler whose loop lives until ctx is done or
// Close is called.
func New(ctx context.Context, h Handlers, opts Options) *Scheduler {
	if opts.Period <= 0 {
		opts.Period = DefaultPeriod
	}
	if opts.HeadlinePeriod <= 0 {
		opts.HeadlinePeriod = DefaultHeadlinePeriod
	}
	s := &Scheduler{
		handlers:       h,
		headlinePeriod: opts.HeadlinePeriod,
		period:         opts.Period,
		cmds:           make(chan command),
		quit:           make(chan struct{}),
		done:           make(chan struct{}),
	}
	go s.loop(ctx)
	return s
}

// Start arms both triggers. It is a no-op when already running.
func (s *Scheduler) Start() { s.send(command{kind: cmdStart}) }

// Stop cancels both triggers. It is a no-op when already stopped.
func (s *Scheduler) Stop() { s.send(command{kind: cmdStop}) }

// SetPeriod changes the note mutation period. Non-positive periods are
// ignored. A running note trigger is cancelled and rescheduled.
func (s *Scheduler) SetPeriod(d time.Duration) {
	if d <= 0 {
		return
	}
	s.send(command{kind: cmdPeriod, period: d})
}

// Running reports whether the triggers are armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Period returns the current note mutation period.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Close stops the triggers and ends the loop goroutine. Safe to call more
// than once.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
	<-s.done
}

// send hands cmd to the loop and waits until it is applied. Once the loop
// has exited, commands are dropped.
func (s *Scheduler) send(cmd command) {
	cmd.ack = make(chan struct{})
	select {
	case s.cmds <- cmd:
	case <-s.done:
		return
	}
	select {
	case <-cmd.ack:
	case <-s.done:
	}
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	var note, head *time.Ticker
	var noteC, headC <-chan time.Time

	armNote := func() {
		if s.handlers.Note == nil {
			return
		}
		note = time.NewTicker(s.Period())
		noteC = note.C
	}
	cancel := func() {
		if note != nil {
			note.Stop()
			note, noteC = nil, nil
		}
		if head != nil {
			head.Stop()
			head, headC = nil, nil
		}
	}
	defer cancel()

	hooks := observability.Scheduler()
	for {
		select {
		case <-ctx.Done():
			s.setRunning(false)
			return
		case <-s.quit:
			s.setRunning(false)
			return

		case cmd := <-s.cmds:
			switch cmd.kind {
			case cmdStart:
				if !s.Running() {
					armNote()
					if s.handlers.Headline != nil {
						head = time.NewTicker(s.headlinePeriod)
						headC = head.C
					}
					s.setRunning(true)
					hooks.OnStart(ctx, s.Period(), s.headlinePeriod)
				}
			case cmdStop:
				if s.Running() {
					cancel()
					s.setRunning(false)
					hooks.OnStop(ctx)
				}
			case cmdPeriod:
				prev := s.setPeriod(cmd.period)
				if s.Running() && note != nil {
					note.Stop()
					armNote()
				}
				if prev != cmd.period {
					hooks.OnPeriodChange(ctx, prev, cmd.period)
				}
			}
			close(cmd.ack)

		case <-noteC:
			s.handlers.Note(ctx)
		case <-headC:
			s.handlers.Headline(ctx)
		}
	}
}

func (s *Scheduler) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

func (s *Scheduler) setPeriod(d time.Duration) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.period
	s.period = d
	return prev
}
