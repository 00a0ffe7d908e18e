package mutate

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/chaosnote/pkg/charset"
	"github.com/matzehuels/chaosnote/pkg/observability"
	"github.com/matzehuels/chaosnote/pkg/random"
)

// Operator identifies one of the seven mutation operators.
type Operator int

const (
	OpInsertSymbol Operator = iota
	OpDeleteChar
	OpToggleCase
	OpSwapAdjacent
	OpDuplicateChar
	OpReplaceWord
	OpScrambleWord
)

var operatorNames = [...]string{
	OpInsertSymbol:  "insertSymbol",
	OpDeleteChar:    "deleteChar",
	OpToggleCase:    "toggleCase",
	OpSwapAdjacent:  "swapAdjacent",
	OpDuplicateChar: "duplicateChar",
	OpReplaceWord:   "replaceWordWithGibberish",
	OpScrambleWord:  "scrambleWord",
}

var operatorFuncs = [...]func(random.Source, string) string{
	OpInsertSymbol:  InsertSymbol,
	OpDeleteChar:    DeleteChar,
	OpToggleCase:    ToggleCase,
	OpSwapAdjacent:  SwapAdjacent,
	OpDuplicateChar: DuplicateChar,
	OpReplaceWord:   ReplaceWordWithGibberish,
	OpScrambleWord:  ScrambleWord,
}

// String returns the operator's name.
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "unknown"
	}
	return operatorNames[op]
}

// Apply runs the operator on text. Unknown operators return text unchanged.
func (op Operator) Apply(r random.Source, text string) string {
	if op < 0 || int(op) >= len(operatorFuncs) {
		return text
	}
	return operatorFuncs[op](r, text)
}

// Pool is the weighted draw pool: InsertSymbol and ToggleCase appear twice.
var Pool = []Operator{
	OpInsertSymbol,
	OpDeleteChar,
	OpToggleCase,
	OpSwapAdjacent,
	OpDuplicateChar,
	OpReplaceWord,
	OpScrambleWord,
	OpInsertSymbol,
	OpToggleCase,
}

// Pools used when deletion is steered away from short notes. Both are
// derived from Pool and are never empty.
var (
	gentlePool   = without(Pool, OpDeleteChar, OpInsertSymbol)
	noDeletePool = without(Pool, OpDeleteChar)
)

// Short-note thresholds, in runes.
const (
	shortText     = 10
	veryShortText = 5
)

// Apply mutates text once, as one scheduler tick would. The result for an
// empty text is either a single trimmed symbol or the empty string.
func Apply(r random.Source, text string) string {
	return apply(r, text, nil)
}

// Mutator binds a random source to the dispatcher and reports each step to
// the registered observability hooks.
type Mutator struct {
	rand random.Source
}

// New creates a mutator drawing from r.
func New(r random.Source) *Mutator {
	return &Mutator{rand: r}
}

// Mutate mutates text once.
func (m *Mutator) Mutate(ctx context.Context, text string) string {
	hooks := observability.Mutation()
	return apply(m.rand, text, &tracer{
		seed: func(sym string) { hooks.OnSeed(ctx, sym) },
		step: func(op Operator, before, after int) { hooks.OnOperator(ctx, op.String(), before, after) },
	})
}

type tracer struct {
	seed func(symbol string)
	step func(op Operator, before, after int)
}

func apply(r random.Source, text string, tr *tracer) string {
	if text == "" && random.Chance(r, 80) {
		sym := strings.TrimSpace(random.Choice(r, charset.Symbols))
		if tr != nil {
			tr.seed(sym)
		}
		return sym
	}
	if text == "" {
		return ""
	}

	count := 1
	if random.Chance(r, 30) && !random.Chance(r, 70) {
		count = 2
	}

	current := text
	for range count {
		op := pick(r, current, count)
		before := utf8.RuneCountInString(current)
		current = op.Apply(r, current)
		if tr != nil {
			tr.step(op, before, utf8.RuneCountInString(current))
		}
	}
	return current
}

// pick draws an operator for text, re-drawing away from deletion when the
// text is short.
func pick(r random.Source, text string, count int) Operator {
	op := random.Choice(r, Pool)
	n := utf8.RuneCountInString(text)
	if n < shortText && op == OpDeleteChar && random.Chance(r, 50) {
		op = random.Choice(r, gentlePool)
	}
	if n < veryShortText && op == OpDeleteChar && count == 1 {
		op = random.Choice(r, noDeletePool)
	}
	return op
}

func without(pool []Operator, drop ...Operator) []Operator {
	return slices.DeleteFunc(slices.Clone(pool), func(op Operator) bool {
		return slices.Contains(drop, op)
	})
}
