// Package pkg provides the libraries behind chaosnote, a note editor that
// keeps rewriting the note while you type.
//
// # Overview
//
// The engine is split into small packages with no dependency on the
// terminal UI:
//
//  1. [random] - injectable random source, plus a scripted source for tests
//  2. [charset] - symbol, gibberish, and Cyrillic tables
//  3. [mutate] - the seven text operators and the weighted dispatcher
//  4. [headline] - the headline reveal/reverse animator
//  5. [glitch] - per-character presentation styles
//  6. [scheduler] - the two periodic triggers driving the editor
//
// Support packages carry the ambient concerns: [store] persists the note,
// [config] loads settings, [errors] defines coded boundary errors,
// [observability] exposes engine events, and [buildinfo] carries the
// version.
//
// # Quick Start
//
// Mutate a note once and advance the headline:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/chaosnote/pkg/headline"
//	    "github.com/matzehuels/chaosnote/pkg/mutate"
//	    "github.com/matzehuels/chaosnote/pkg/random"
//	)
//
//	r := random.New(42)
//	note := mutate.New(r).Mutate(context.Background(), "hello world")
//
//	anim := headline.New(r, headline.Default)
//	title := anim.Step(context.Background())
//
// Core packages never return errors: every operator is total over any
// input, including the empty string.
package pkg
