package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/matzehuels/chaosnote/pkg/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type counters struct {
	note, head atomic.Int64
	inside     atomic.Bool
	overlaps   atomic.Int64
}

func (c *counters) handlers() Handlers {
	enter := func(n *atomic.Int64) func(context.Context) {
		return func(context.Context) {
			if !c.inside.CompareAndSwap(false, true) {
				c.overlaps.Add(1)
			}
			n.Add(1)
			time.Sleep(time.Millisecond)
			c.inside.Store(false)
		}
	}
	return Handlers{Note: enter(&c.note), Headline: enter(&c.head)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func fast() Options {
	return Options{Period: 5 * time.Millisecond, HeadlinePeriod: 2 * time.Millisecond}
}

func TestNewUsesDefaults(t *testing.T) {
	s := New(context.Background(), Handlers{}, Options{})
	defer s.Close()

	if s.Period() != DefaultPeriod {
		t.Errorf("Period() = %v, want %v", s.Period(), DefaultPeriod)
	}
	if s.Running() {
		t.Error("new scheduler should be stopped")
	}
}

func TestStartRunsBothTriggers(t *testing.T) {
	var c counters
	s := New(context.Background(), c.handlers(), fast())
	defer s.Close()

	s.Start()
	if !s.Running() {
		t.Fatal("Running() = false after Start")
	}
	waitFor(t, func() bool { return c.note.Load() >= 3 && c.head.Load() >= 3 })

	if n := c.overlaps.Load(); n != 0 {
		t.Errorf("handlers overlapped %d times", n)
	}
}

func TestStartTwiceDoesNotDoubleSchedule(t *testing.T) {
	defer observability.Reset()
	rec := &schedulerRecorder{}
	observability.SetSchedulerHooks(rec)

	var c counters
	s := New(context.Background(), c.handlers(), fast())
	defer s.Close()

	s.Start()
	s.Start()
	s.Start()

	if got := rec.count("start"); got != 1 {
		t.Errorf("OnStart called %d times, want 1", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	defer observability.Reset()
	rec := &schedulerRecorder{}
	observability.SetSchedulerHooks(rec)

	var c counters
	s := New(context.Background(), c.handlers(), fast())
	defer s.Close()

	s.Stop() // stopping a stopped scheduler is fine
	s.Start()
	waitFor(t, func() bool { return c.note.Load() > 0 })
	s.Stop()
	s.Stop()

	if s.Running() {
		t.Error("Running() = true after Stop")
	}
	if got := rec.count("stop"); got != 1 {
		t.Errorf("OnStop called %d times, want 1", got)
	}

	note, head := c.note.Load(), c.head.Load()
	time.Sleep(30 * time.Millisecond)
	if c.note.Load() != note || c.head.Load() != head {
		t.Error("handlers ran after Stop")
	}
}

func TestRestartAfterStop(t *testing.T) {
	var c counters
	s := New(context.Background(), c.handlers(), fast())
	defer s.Close()

	s.Start()
	s.Stop()
	before := c.note.Load()
	s.Start()
	waitFor(t, func() bool { return c.note.Load() > before })
}

func TestSetPeriod(t *testing.T) {
	defer observability.Reset()
	rec := &schedulerRecorder{}
	observability.SetSchedulerHooks(rec)

	var c counters
	s := New(context.Background(), c.handlers(), Options{Period: time.Hour, HeadlinePeriod: time.Hour})
	defer s.Close()

	s.Start()
	s.SetPeriod(5 * time.Millisecond)
	if s.Period() != 5*time.Millisecond {
		t.Errorf("Period() = %v, want 5ms", s.Period())
	}
	// The hour-long wait was cancelled, not waited out.
	waitFor(t, func() bool { return c.note.Load() >= 2 })

	s.SetPeriod(5 * time.Millisecond)
	s.SetPeriod(0)
	s.SetPeriod(-time.Second)
	if got := rec.count("period"); got != 1 {
		t.Errorf("OnPeriodChange called %d times, want 1", got)
	}
}

func TestSetPeriodWhileStopped(t *testing.T) {
	var c counters
	s := New(context.Background(), c.handlers(), fast())
	defer s.Close()

	s.SetPeriod(300 * time.Millisecond)
	if s.Running() {
		t.Error("SetPeriod must not start the scheduler")
	}
	if s.Period() != 300*time.Millisecond {
		t.Errorf("Period() = %v, want 300ms", s.Period())
	}
}

func TestNilHandlerDisablesTrigger(t *testing.T) {
	var head atomic.Int64
	s := New(context.Background(), Handlers{
		Headline: func(context.Context) { head.Add(1) },
	}, fast())
	defer s.Close()

	s.Start()
	waitFor(t, func() bool { return head.Load() >= 2 })
	s.SetPeriod(10 * time.Millisecond)
}

func TestContextCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var c counters
	s := New(ctx, c.handlers(), fast())
	s.Start()

	cancel()
	<-s.done

	if s.Running() {
		t.Error("Running() = true after context cancellation")
	}
	// Commands after the loop exits must not block.
	s.Start()
	s.Stop()
	s.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New(context.Background(), Handlers{}, fast())
	s.Close()
	s.Close()
	s.SetPeriod(time.Second)
}

type schedulerRecorder struct {
	observability.NoopSchedulerHooks
	mu     sync.Mutex
	events []string
}

func (r *schedulerRecorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *schedulerRecorder) count(e string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func (r *schedulerRecorder) OnStart(context.Context, time.Duration, time.Duration) { r.add("start") }
func (r *schedulerRecorder) OnStop(context.Context)                                 { r.add("stop") }
func (r *schedulerRecorder) OnPeriodChange(context.Context, time.Duration, time.Duration) {
	r.add("period")
}
