// Package headline animates a fixed headline through random Cyrillic
// look-alikes, one character per tick.
//
// The animator keeps a [State]: the displayed text, a randomized target, a
// head index and a sweep [Direction]. Each [Step] reveals the target rune
// at the head index and moves the head one position. When the head reaches
// either end it reverses and a fresh target is drawn with [Randomize], so
// the headline keeps drifting forever while its length never changes.
//
// Only Cyrillic letters are substituted; spaces, punctuation and Latin
// letters stay fixed.
//
// State is a plain value passed into and out of Step. [Animator] wraps it
// with a base string and random source for callers driven by a timer.
package headline
