// Package mutate implements the note mutation engine: seven small string
// operators and the dispatcher that picks and composes them once per tick.
//
// # Operators
//
// Every operator has the shape func(random.Source, string) string. Operators
// are total: any input, including the empty string, yields a string and never
// panics. Text is handled as runes, so multi-byte glyphs introduced by
// earlier ticks are never split.
//
//   - [InsertSymbol]: insert a strange glyph or word at a random offset
//   - [DeleteChar]: remove one rune
//   - [ToggleCase]: flip the case of one rune
//   - [SwapAdjacent]: swap a rune with its right neighbour
//   - [DuplicateChar]: double one rune in place
//   - [ReplaceWordWithGibberish]: replace a word longer than two runes
//   - [ScrambleWord]: permute the letters of a word longer than two runes
//
// Operators that grow or shrink text back off on long notes: InsertSymbol
// and DuplicateChar skip half the time above 1000 runes, DeleteChar skips
// 70% of the time above 500 runes.
//
// # Dispatcher
//
// [Apply] is the per-tick entry point. An empty note is seeded with a single
// symbol 80% of the time. Otherwise one operator is applied, or two with a
// 0.3 × 0.3 chance, drawn from a pool in which InsertSymbol and ToggleCase
// appear twice. Deletion is steered away from very short notes.
//
// [Mutator] wraps Apply with a bound random source and reports every step to
// the observability hooks:
//
//	m := mutate.New(random.New(seed))
//	note = m.Mutate(ctx, note)
package mutate
