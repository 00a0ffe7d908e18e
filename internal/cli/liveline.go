package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// liveLine redraws a single terminal line in place.
type liveLine struct {
	w     io.Writer
	mu    sync.Mutex
	width int
}

func newLiveLine(w io.Writer) *liveLine {
	return &liveLine{w: w}
}

// Set replaces the line with text, blanking any leftover cells from a
// wider previous frame.
func (l *liveLine) Set(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	w := lipgloss.Width(text)
	fmt.Fprintf(l.w, "\r%s%s", text, strings.Repeat(" ", max(0, l.width-w)))
	l.width = w
}

// Done ends the line so later output starts on a fresh one.
func (l *liveLine) Done() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.width > 0 {
		fmt.Fprintln(l.w)
		l.width = 0
	}
}
