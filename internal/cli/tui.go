package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chaosnote/pkg/errors"
	"github.com/matzehuels/chaosnote/pkg/glitch"
	"github.com/matzehuels/chaosnote/pkg/headline"
	"github.com/matzehuels/chaosnote/pkg/mutate"
	"github.com/matzehuels/chaosnote/pkg/random"
	"github.com/matzehuels/chaosnote/pkg/scheduler"
	"github.com/matzehuels/chaosnote/pkg/store"
)

const subtitle = "Bello, non pace"

// =============================================================================
// Scheduler Bridge
// =============================================================================

// tickKind identifies which trigger fired.
type tickKind int

const (
	noteTick tickKind = iota
	headlineTick
)

// tickMsg delivers a trigger to the editor's Update loop.
type tickMsg tickKind

// tickBuffer bounds how many ticks may queue while Update is busy.
const tickBuffer = 4

// bridgeHandlers forwards scheduler ticks into ch. Sends never block, so
// the scheduler loop cannot stall on a busy or exiting program; a full
// buffer drops the tick.
func bridgeHandlers(ch chan<- tickKind) scheduler.Handlers {
	offer := func(k tickKind) {
		select {
		case ch <- k:
		default:
		}
	}
	return scheduler.Handlers{
		Note:     func(context.Context) { offer(noteTick) },
		Headline: func(context.Context) { offer(headlineTick) },
	}
}

// waitForTick returns a command that blocks for the next tick.
// A closed channel ends the wait with no message.
func waitForTick(ch <-chan tickKind) tea.Cmd {
	return func() tea.Msg {
		k, ok := <-ch
		if !ok {
			return nil
		}
		return tickMsg(k)
	}
}

// chaos is the part of the scheduler the editor drives.
type chaos interface {
	Start()
	Stop()
	SetPeriod(time.Duration)
}

// =============================================================================
// EditorModel - Chaotic note editor
// =============================================================================

// editorOptions configures a new editor model.
type editorOptions struct {
	Random   random.Source
	Headline string
	Note     string
	SpeedMS  int
	Running  bool
	Logger   *log.Logger
}

// EditorModel is the bubbletea model for the note editor.
type EditorModel struct {
	ctx    context.Context
	logger *log.Logger

	rand     random.Source
	mutator  *mutate.Mutator
	headline *headline.Animator
	chaos    chaos
	ticks    <-chan tickKind
	store    store.Store

	input   textarea.Model
	running bool
	speedMS int
	width   int
}

// newEditorModel builds the editor around an already configured scheduler.
// All random draws happen on the Update/View goroutine.
func newEditorModel(ctx context.Context, c chaos, ticks <-chan tickKind, st store.Store, opts editorOptions) EditorModel {
	logger := opts.Logger
	if logger == nil {
		logger = loggerFromContext(ctx)
	}

	input := textarea.New()
	input.Placeholder = "Пишите... если осмелитесь"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(6)
	input.SetValue(opts.Note)
	input.Focus()

	return EditorModel{
		ctx:      ctx,
		logger:   logger,
		rand:     opts.Random,
		mutator:  mutate.New(opts.Random),
		headline: headline.New(opts.Random, opts.Headline),
		chaos:    c,
		ticks:    ticks,
		store:    st,
		input:    input,
		running:  opts.Running,
		speedMS:  errors.ClampSpeed(opts.SpeedMS),
	}
}

// Note returns the current note text.
func (m EditorModel) Note() string {
	return m.input.Value()
}

func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, waitForTick(m.ticks))
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Ticks that were queued before a pause are dropped.
		if m.running {
			switch tickKind(msg) {
			case noteTick:
				m.setNote(m.mutator.Mutate(m.ctx, m.input.Value()))
			case headlineTick:
				m.headline.Step(m.ctx)
			}
		}
		return m, waitForTick(m.ticks)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(20, msg.Width-2))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+p":
			m.toggle()
			return m, nil
		case "ctrl+l":
			m.setNote("")
			return m, nil
		case "ctrl+up":
			m.setSpeed(m.speedMS + errors.SpeedStepMS)
			return m, nil
		case "ctrl+down":
			m.setSpeed(m.speedMS - errors.SpeedStepMS)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.save()
	}
	return m, cmd
}

func (m *EditorModel) toggle() {
	if m.running {
		m.chaos.Stop()
	} else {
		m.chaos.Start()
	}
	m.running = !m.running
}

func (m *EditorModel) setSpeed(ms int) {
	ms = errors.ClampSpeed(ms)
	if ms == m.speedMS {
		return
	}
	m.speedMS = ms
	m.chaos.SetPeriod(time.Duration(ms) * time.Millisecond)
}

func (m *EditorModel) setNote(text string) {
	if text == m.input.Value() {
		return
	}
	m.input.SetValue(text)
	m.save()
}

func (m *EditorModel) save() {
	if err := m.store.Set(m.ctx, store.NoteKey, m.input.Value()); err != nil {
		m.logger.Warn("save note", "error", err)
	}
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeadline(m.headline.Text()))
	b.WriteString("\n")
	b.WriteString(styleSubtitle.Render(subtitle))
	b.WriteString("\n\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styleLabel.Render("id vivit"))
	b.WriteString("\n")
	b.WriteString(m.panel())
	b.WriteString("\n")
	b.WriteString(helpLine())

	return b.String()
}

func (m EditorModel) statusLine() string {
	icon, state := iconPaused, "chaos paused"
	if m.running {
		icon, state = iconRunning, "chaos running"
	}
	return StyleTitle.Render(icon) + " " + StyleValue.Render(state) +
		StyleDim.Render(" · ") + StyleNumber.Render(fmt.Sprintf("%dms", m.speedMS))
}

// panel renders the note with a fresh random style per character.
func (m EditorModel) panel() string {
	border := colorDim
	if m.running {
		border = colorPurple
	}
	style := stylePanel.BorderForeground(border)
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}

	note := m.input.Value()
	if note == "" {
		return style.Render(StyleDim.Render("пусто"))
	}
	return style.Render(glitch.Render(m.rand, note))
}

func helpLine() string {
	keys := []struct{ key, desc string }{
		{"ctrl+p", "pause/resume"},
		{"ctrl+l", "clear"},
		{"ctrl+↑/↓", "speed"},
		{"esc", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = styleKey.Render(k.key) + " " + StyleDim.Render(k.desc)
	}
	return strings.Join(parts, StyleDim.Render("  "))
}
