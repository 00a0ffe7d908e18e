package headline

import (
	"context"
	"unicode/utf8"

	"github.com/matzehuels/chaosnote/pkg/charset"
	"github.com/matzehuels/chaosnote/pkg/observability"
	"github.com/matzehuels/chaosnote/pkg/random"
)

// Default is the headline shown by the editor.
const Default = "Заметки-Метаморфозы"

// Direction is the sweep direction of the head index.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// State is the full animation state. Displayed and Target always have the
// same rune count as the base headline, and 0 <= Index < that count.
type State struct {
	Displayed string
	Target    string
	Index     int
	Direction Direction
}

// Randomize returns base with every modern Cyrillic letter replaced by a
// random letter of the same case. Other runes are kept.
func Randomize(r random.Source, base string) string {
	out := []rune(base)
	for i, c := range out {
		switch {
		case charset.IsUpperCyrillic(c):
			out[i] = random.Choice(r, charset.CyrillicUpper)
		case charset.IsLowerCyrillic(c):
			out[i] = random.Choice(r, charset.CyrillicLower)
		}
	}
	return string(out)
}

// Initial returns the starting state: base displayed as is, a random
// target, head at 0 moving forward.
func Initial(r random.Source, base string) State {
	return State{
		Displayed: base,
		Target:    Randomize(r, base),
		Direction: Forward,
	}
}

// Step reveals one rune toward the target and advances the head. At either
// end the direction flips and a new target is drawn from base.
func Step(r random.Source, base string, s State) State {
	n := utf8.RuneCountInString(base)
	if n == 0 {
		return s
	}

	displayed := []rune(s.Displayed)
	target := []rune(s.Target)
	if s.Index >= 0 && s.Index < len(displayed) && s.Index < len(target) && displayed[s.Index] != target[s.Index] {
		displayed[s.Index] = target[s.Index]
		s.Displayed = string(displayed)
	}

	switch s.Direction {
	case Forward:
		if s.Index < n-1 {
			s.Index++
		} else {
			s.Direction = Backward
			s.Target = Randomize(r, base)
		}
	case Backward:
		if s.Index > 0 {
			s.Index--
		} else {
			s.Direction = Forward
			s.Target = Randomize(r, base)
		}
	}
	return s
}

// Animator drives a State for one base headline.
type Animator struct {
	base  string
	rand  random.Source
	state State
}

// New creates an animator in its initial state.
func New(r random.Source, base string) *Animator {
	return &Animator{base: base, rand: r, state: Initial(r, base)}
}

// Base returns the fixed headline.
func (a *Animator) Base() string { return a.base }

// State returns the current state.
func (a *Animator) State() State { return a.state }

// Text returns the displayed headline.
func (a *Animator) Text() string { return a.state.Displayed }

// Step advances one tick and returns the displayed headline.
func (a *Animator) Step(ctx context.Context) string {
	prev := a.state.Direction
	a.state = Step(a.rand, a.base, a.state)
	if a.state.Direction != prev {
		observability.Headline().OnReverse(ctx, a.state.Direction.String(), a.state.Target)
	}
	return a.state.Displayed
}
