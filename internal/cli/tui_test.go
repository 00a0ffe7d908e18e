package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chaosnote/pkg/headline"
	"github.com/matzehuels/chaosnote/pkg/random"
	"github.com/matzehuels/chaosnote/pkg/store"
)

type fakeChaos struct {
	starts  int
	stops   int
	periods []time.Duration
}

func (f *fakeChaos) Start()                    { f.starts++ }
func (f *fakeChaos) Stop()                     { f.stops++ }
func (f *fakeChaos) SetPeriod(d time.Duration) { f.periods = append(f.periods, d) }

type memStore struct {
	data map[string]string
	sets int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	s.sets++
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *memStore) Close() error { return nil }

func newTestEditor(note string, speedMS int, running bool) (EditorModel, *fakeChaos, *memStore) {
	c := &fakeChaos{}
	st := newMemStore()
	m := newEditorModel(context.Background(), c, make(chan tickKind), st, editorOptions{
		Random:   random.NewSequence(0),
		Headline: headline.Default,
		Note:     note,
		SpeedMS:  speedMS,
		Running:  running,
		Logger:   newLogger(io.Discard, LogInfo),
	})
	return m, c, st
}

func update(t *testing.T, m EditorModel, msg tea.Msg) (EditorModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	em, ok := next.(EditorModel)
	if !ok {
		t.Fatalf("Update() returned %T, want EditorModel", next)
	}
	return em, cmd
}

func TestEditorToggle(t *testing.T) {
	m, c, _ := newTestEditor("", 750, true)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.running || c.stops != 1 {
		t.Errorf("after pause: running = %v, stops = %d; want false, 1", m.running, c.stops)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if !m.running || c.starts != 1 {
		t.Errorf("after resume: running = %v, starts = %d; want true, 1", m.running, c.starts)
	}
}

func TestEditorSpeed(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		key        tea.KeyType
		want       int
		wantPeriod bool
	}{
		{"slower", 750, tea.KeyCtrlUp, 800, true},
		{"faster", 750, tea.KeyCtrlDown, 700, true},
		{"at max", 2000, tea.KeyCtrlUp, 2000, false},
		{"at min", 100, tea.KeyCtrlDown, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, c, _ := newTestEditor("", tt.start, true)
			m, _ = update(t, m, tea.KeyMsg{Type: tt.key})

			if m.speedMS != tt.want {
				t.Errorf("speedMS = %d, want %d", m.speedMS, tt.want)
			}
			if got := len(c.periods) > 0; got != tt.wantPeriod {
				t.Fatalf("SetPeriod called = %v, want %v", got, tt.wantPeriod)
			}
			if tt.wantPeriod && c.periods[0] != time.Duration(tt.want)*time.Millisecond {
				t.Errorf("period = %v, want %dms", c.periods[0], tt.want)
			}
		})
	}
}

func TestEditorNoteTick(t *testing.T) {
	m, _, st := newTestEditor("", 750, true)

	m, cmd := update(t, m, tickMsg(noteTick))
	if cmd == nil {
		t.Error("tick should re-arm the tick command")
	}
	if got := m.Note(); got != "✧" {
		t.Errorf("Note() = %q, want %q", got, "✧")
	}
	if got := st.data[store.NoteKey]; got != "✧" {
		t.Errorf("saved note = %q, want %q", got, "✧")
	}
}

func TestEditorTickWhilePaused(t *testing.T) {
	m, _, st := newTestEditor("hello", 750, false)
	before := m.headline.State()

	m, cmd := update(t, m, tickMsg(noteTick))
	m, _ = update(t, m, tickMsg(headlineTick))

	if cmd == nil {
		t.Error("tick should re-arm the tick command while paused")
	}
	if got := m.Note(); got != "hello" {
		t.Errorf("Note() = %q, want unchanged", got)
	}
	if m.headline.State() != before {
		t.Errorf("headline state = %+v, want unchanged %+v", m.headline.State(), before)
	}
	if st.sets != 0 {
		t.Errorf("store writes = %d, want 0", st.sets)
	}
}

func TestEditorHeadlineTick(t *testing.T) {
	m, _, _ := newTestEditor("", 750, true)
	before := m.headline.State()

	m, _ = update(t, m, tickMsg(headlineTick))
	if m.headline.State() == before {
		t.Error("headline tick should advance the animator")
	}
}

func TestEditorClear(t *testing.T) {
	m, _, st := newTestEditor("hello", 750, true)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if got := m.Note(); got != "" {
		t.Errorf("Note() = %q, want empty", got)
	}
	if got, ok := st.data[store.NoteKey]; !ok || got != "" {
		t.Errorf("saved note = %q (present %v), want empty string saved", got, ok)
	}
}

func TestEditorTyping(t *testing.T) {
	m, _, st := newTestEditor("", 750, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	if got := m.Note(); got != "hi" {
		t.Errorf("Note() = %q, want %q", got, "hi")
	}
	if got := st.data[store.NoteKey]; got != "hi" {
		t.Errorf("saved note = %q, want %q", got, "hi")
	}
}

func TestEditorQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m, _, _ := newTestEditor("", 750, true)
		_, cmd := update(t, m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: Update() returned nil command, want quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command message = %T, want tea.QuitMsg", key, cmd())
		}
	}
}

func TestEditorView(t *testing.T) {
	m, _, _ := newTestEditor("", 750, false)
	view := m.View()

	for _, want := range []string{subtitle, "id vivit", "пусто", "chaos paused", "750ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestBridgeHandlersDropWhenFull(t *testing.T) {
	ch := make(chan tickKind, 1)
	h := bridgeHandlers(ch)

	h.Note(context.Background())
	h.Headline(context.Background())

	if len(ch) != 1 {
		t.Fatalf("buffered ticks = %d, want 1", len(ch))
	}
	if got := <-ch; got != noteTick {
		t.Errorf("tick = %v, want noteTick", got)
	}
}

func TestWaitForTick(t *testing.T) {
	ch := make(chan tickKind, 1)
	ch <- headlineTick

	if got := waitForTick(ch)(); got != tickMsg(headlineTick) {
		t.Errorf("waitForTick() = %v, want headline tick", got)
	}

	close(ch)
	if got := waitForTick(ch)(); got != nil {
		t.Errorf("waitForTick() on closed channel = %v, want nil", got)
	}
}
