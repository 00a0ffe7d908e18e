package mutate

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/chaosnote/pkg/charset"
	"github.com/matzehuels/chaosnote/pkg/random"
)

// Length thresholds above which growing or shrinking operators back off.
const (
	longTextGrow   = 1000
	longTextShrink = 500
)

// InsertSymbol inserts a random table symbol at a random offset in [0, len].
// Multi-rune words are padded with a space on each side.
func InsertSymbol(r random.Source, text string) string {
	runes := []rune(text)
	if len(runes) > longTextGrow && random.Chance(r, 50) {
		return text
	}
	pos := random.Int(r, len(runes)+1)
	sym := random.Choice(r, charset.Symbols)
	if trimmed := strings.TrimSpace(sym); utf8.RuneCountInString(trimmed) > 1 && !charset.IsSingleSymbol(trimmed) {
		sym = " " + trimmed + " "
	}
	return string(runes[:pos]) + sym + string(runes[pos:])
}

// DeleteChar removes the rune at a random offset.
func DeleteChar(r random.Source, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) > longTextShrink && random.Chance(r, 70) {
		return text
	}
	pos := random.Int(r, len(runes))
	return string(slices.Delete(runes, pos, pos+1))
}

// ToggleCase lower-cases or upper-cases the rune at a random offset.
// Runes that are already their own lower case are upper-cased.
func ToggleCase(r random.Source, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	pos := random.Int(r, len(runes))
	c := runes[pos]
	if unicode.ToLower(c) == c {
		runes[pos] = unicode.ToUpper(c)
	} else {
		runes[pos] = unicode.ToLower(c)
	}
	return string(runes)
}

// SwapAdjacent swaps the rune at a random offset with the one after it.
func SwapAdjacent(r random.Source, text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return text
	}
	pos := random.Int(r, len(runes)-1)
	runes[pos], runes[pos+1] = runes[pos+1], runes[pos]
	return string(runes)
}

// DuplicateChar inserts a second copy of a random rune right after it.
func DuplicateChar(r random.Source, text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) > longTextGrow && random.Chance(r, 50) {
		return text
	}
	pos := random.Int(r, len(runes))
	return string(slices.Insert(runes, pos+1, runes[pos]))
}

// ReplaceWordWithGibberish swaps one word longer than two runes for a
// gibberish word, keeping all whitespace exactly as it was.
func ReplaceWordWithGibberish(r random.Source, text string) string {
	if utf8.RuneCountInString(text) < 5 {
		return text
	}
	tokens := splitWords(text)
	if len(tokens) < 2 {
		return text
	}
	eligible := eligibleWords(tokens)
	if len(eligible) == 0 {
		return text
	}
	tokens[random.Choice(r, eligible)] = random.Choice(r, charset.Gibberish)
	return strings.Join(tokens, "")
}

// ScrambleWord permutes the letters of one word longer than two runes.
func ScrambleWord(r random.Source, text string) string {
	if utf8.RuneCountInString(text) < 3 {
		return text
	}
	tokens := splitWords(text)
	eligible := eligibleWords(tokens)
	if len(eligible) == 0 {
		return text
	}
	idx := random.Choice(r, eligible)
	tokens[idx] = scramble(r, tokens[idx])
	return strings.Join(tokens, "")
}

// scramble shuffles all runes of word. Half the time, for words longer
// than three runes, it instead keeps the first and last rune and swaps two
// distinct interior runes.
func scramble(r random.Source, word string) string {
	runes := []rune(word)
	n := len(runes)
	if n <= 2 {
		return word
	}

	shuffled := slices.Clone(runes)
	for i := n - 1; i > 0; i-- {
		j := random.Int(r, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if n > 3 && random.Chance(r, 50) {
		interior := slices.Clone(runes[1 : n-1])
		if m := len(interior); m > 1 {
			k := random.Int(r, m)
			l := random.Int(r, m)
			for l == k {
				l = random.Int(r, m)
			}
			interior[k], interior[l] = interior[l], interior[k]
		}
		return string(runes[0]) + string(interior) + string(runes[n-1])
	}
	return string(shuffled)
}

// splitWords splits text into alternating word and whitespace tokens. The
// result always starts and ends with a word token, which may be empty, so
// joining the tokens reproduces text exactly.
func splitWords(text string) []string {
	var (
		tokens []string
		word   strings.Builder
		space  strings.Builder
	)
	for _, c := range text {
		if unicode.IsSpace(c) {
			space.WriteRune(c)
			continue
		}
		if space.Len() > 0 {
			tokens = append(tokens, word.String(), space.String())
			word.Reset()
			space.Reset()
		}
		word.WriteRune(c)
	}
	if space.Len() > 0 {
		tokens = append(tokens, word.String(), space.String())
		word.Reset()
	}
	return append(tokens, word.String())
}

// eligibleWords returns the indices of tokens whose trimmed rune length
// exceeds two.
func eligibleWords(tokens []string) []int {
	var idx []int
	for i, tok := range tokens {
		if utf8.RuneCountInString(strings.TrimSpace(tok)) > 2 {
			idx = append(idx, i)
		}
	}
	return idx
}
