package mutate

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/chaosnote/pkg/charset"
	"github.com/matzehuels/chaosnote/pkg/random"
)

func seq(values ...int) *random.Sequence { return random.NewSequence(values...) }

func TestInsertSymbol(t *testing.T) {
	errorIdx := slices.Index(charset.Symbols, " ERROR ")
	zheIdx := slices.Index(charset.Symbols, "Ж")

	tests := []struct {
		name string
		text string
		r    random.Source
		want string
	}{
		{"glyph in middle", "ab", seq(1, 0), "a✧b"},
		{"glyph into empty", "", seq(0, 0), "✧"},
		{"word is padded", "ab", seq(0, errorIdx), " ERROR ab"},
		{"cyrillic letter as is", "ab", seq(2, zheIdx), "abЖ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertSymbol(tt.r, tt.text); got != tt.want {
				t.Errorf("InsertSymbol(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestInsertSymbolLongTextBacksOff(t *testing.T) {
	long := strings.Repeat("x", 1001)

	if got := InsertSymbol(seq(10), long); got != long {
		t.Error("InsertSymbol should skip when the coin lands below 50")
	}
	if got := InsertSymbol(seq(50, 0, 0), long); utf8.RuneCountInString(got) != 1002 {
		t.Errorf("InsertSymbol length = %d, want 1002", utf8.RuneCountInString(got))
	}
}

func TestDeleteChar(t *testing.T) {
	if got := DeleteChar(seq(3), ""); got != "" {
		t.Errorf("DeleteChar(\"\") = %q, want empty", got)
	}
	if got := DeleteChar(seq(1), "hello"); got != "hllo" {
		t.Errorf("DeleteChar(hello) = %q, want hllo", got)
	}
	if got := DeleteChar(seq(1), "жёлтый"); got != "жлтый" {
		t.Errorf("DeleteChar(жёлтый) = %q, want жлтый", got)
	}
}

func TestDeleteCharLongTextBacksOff(t *testing.T) {
	long := strings.Repeat("y", 501)

	if got := DeleteChar(seq(69), long); got != long {
		t.Error("DeleteChar should skip when the coin lands below 70")
	}
	if got := DeleteChar(seq(70, 0), long); utf8.RuneCountInString(got) != 500 {
		t.Errorf("DeleteChar length = %d, want 500", utf8.RuneCountInString(got))
	}
}

func TestDeleteCharRemovesExactlyOne(t *testing.T) {
	text := "the quick ★ fox"
	r := random.New(3)
	for i := 0; i < 50; i++ {
		got := DeleteChar(r, text)
		if utf8.RuneCountInString(got) != utf8.RuneCountInString(text)-1 {
			t.Fatalf("DeleteChar(%q) = %q, want one rune shorter", text, got)
		}
		if removed := runeDiff([]rune(text), []rune(got)); len(removed) != 1 {
			t.Fatalf("DeleteChar(%q) = %q removed %q, want exactly one rune", text, got, string(removed))
		}
	}
}

func TestToggleCase(t *testing.T) {
	tests := []struct {
		text string
		pos  int
		want string
	}{
		{"abc", 1, "aBc"},
		{"ABC", 0, "aBC"},
		{"Жук", 0, "жук"},
		{"1", 0, "1"},
		{"", 0, ""},
	}
	for _, tt := range tests {
		if got := ToggleCase(seq(tt.pos), tt.text); got != tt.want {
			t.Errorf("ToggleCase(%q, %d) = %q, want %q", tt.text, tt.pos, got, tt.want)
		}
	}
}

func TestSwapAdjacent(t *testing.T) {
	tests := []struct {
		text string
		pos  int
		want string
	}{
		{"ab", 0, "ba"},
		{"abcd", 2, "abdc"},
		{"a", 0, "a"},
		{"", 0, ""},
		{"☠x", 0, "x☠"},
	}
	for _, tt := range tests {
		if got := SwapAdjacent(seq(tt.pos), tt.text); got != tt.want {
			t.Errorf("SwapAdjacent(%q, %d) = %q, want %q", tt.text, tt.pos, got, tt.want)
		}
	}
}

func TestDuplicateChar(t *testing.T) {
	if got := DuplicateChar(seq(1), "abc"); got != "abbc" {
		t.Errorf("DuplicateChar(abc) = %q, want abbc", got)
	}
	if got := DuplicateChar(seq(0), ""); got != "" {
		t.Errorf("DuplicateChar(\"\") = %q, want empty", got)
	}

	long := strings.Repeat("z", 1001)
	if got := DuplicateChar(seq(0), long); got != long {
		t.Error("DuplicateChar should skip when the coin lands below 50")
	}
}

func TestReplaceWordWithGibberish(t *testing.T) {
	tests := []struct {
		name string
		text string
		r    random.Source
		want string
	}{
		{"short words only", "ab cd", seq(0, 0), "ab cd"},
		{"too short", "abcd", seq(0, 0), "abcd"},
		{"single token", "abcdef", seq(0, 0), "abcdef"},
		{"last word", "hi there you", seq(1, 0), "hi there fnord"},
		{"whitespace kept", "  big\tword\n", seq(0, 2), "  blarg\tword\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceWordWithGibberish(tt.r, tt.text); got != tt.want {
				t.Errorf("ReplaceWordWithGibberish(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScrambleWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		r    random.Source
		want string
	}{
		{"too short", "ab", seq(0), "ab"},
		{"no eligible word", "ab cd", seq(0), "ab cd"},
		{"keep ends swaps interior", "test", seq(0, 0, 0, 0, 10, 0, 1), "tset"},
		{"interior swap redraws equal index", "test", seq(0, 0, 0, 0, 0, 1, 1, 0), "tset"},
		{"identity shuffle", "test", seq(0, 3, 2, 1, 60), "test"},
		{"full shuffle", "test", seq(0, 0, 0, 0, 99), "estt"},
		{"three runes never keep ends", "cat", seq(0, 0, 0), "atc"},
		{"only the chosen word", "ab test cd", seq(0, 0, 0, 0, 10, 0, 1), "ab tset cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrambleWord(tt.r, tt.text); got != tt.want {
				t.Errorf("ScrambleWord(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestScrambleKeepsLetters(t *testing.T) {
	r := random.New(11)
	for i := 0; i < 100; i++ {
		got := scramble(r, "metamorphosis")
		if !sameRunes(got, "metamorphosis") {
			t.Fatalf("scramble = %q, not a permutation", got)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a b", []string{"a", " ", "b"}},
		{" a", []string{"", " ", "a"}},
		{"a  ", []string{"a", "  ", ""}},
		{"x\n\ty z", []string{"x", "\n\t", "y", " ", "z"}},
	}

	for _, tt := range tests {
		got := splitWords(tt.text)
		if !slices.Equal(got, tt.want) {
			t.Errorf("splitWords(%q) = %q, want %q", tt.text, got, tt.want)
		}
		if strings.Join(got, "") != tt.text {
			t.Errorf("splitWords(%q) does not rejoin", tt.text)
		}
	}
}

func TestOperatorsAreTotal(t *testing.T) {
	inputs := []string{"", " ", "\n", "a", "ab", "Ёж", "☠ ☢\n☣", "  many   spaces  ", strings.Repeat("long text ", 120)}
	r := random.New(5)

	for _, op := range Pool {
		for _, in := range inputs {
			for i := 0; i < 20; i++ {
				got := op.Apply(r, in)
				if !utf8.ValidString(got) {
					t.Fatalf("%s(%q) produced invalid UTF-8", op, in)
				}
			}
		}
	}
}

func TestLengthPreservingOperators(t *testing.T) {
	r := random.New(8)
	for _, in := range []string{"", "a", "ab", "Hello, Мир!"} {
		n := utf8.RuneCountInString(in)
		if got := SwapAdjacent(r, in); utf8.RuneCountInString(got) != n {
			t.Errorf("SwapAdjacent(%q) changed length", in)
		}
		if got := ToggleCase(r, in); utf8.RuneCountInString(got) != n {
			t.Errorf("ToggleCase(%q) changed length", in)
		}
	}
}

func sameRunes(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	slices.Sort(ra)
	slices.Sort(rb)
	return slices.Equal(ra, rb)
}

// runeDiff returns the runes of a not matched by a rune of b.
func runeDiff(a, b []rune) []rune {
	counts := make(map[rune]int)
	for _, c := range b {
		counts[c]++
	}
	var out []rune
	for _, c := range a {
		if counts[c] > 0 {
			counts[c]--
			continue
		}
		out = append(out, c)
	}
	return out
}
