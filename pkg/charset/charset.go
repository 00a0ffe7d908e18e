// Package charset holds the static glyph and word tables the chaos engine
// draws from. All tables are read-only for the lifetime of the process and
// are guaranteed non-empty.
package charset

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Symbols are the strange tokens inserted into notes. Most are single
// glyphs; the space-wrapped entries are whole words.
var Symbols = []string{
	"✧", "✦", "✥", "☄", "☠", "☢", "☣", "⛧", "♆", "⚙", "⚛", "⚜", "✨", "⚡", "⚠", "⁉", "〰", "※", "⁂", "⁑",
	"◉", "◈", "◊", "◎", "●", "◯", "★", "☆", "☑", "☒", "☞", "☜", "☝", "☟", "☹", "☺", "☻", "☃", "☂", "☕",
	"☘", "✌", "✍", "✎", "✓", "✔", "✗", "✘", "✝", "✡", "☪", "☮", "☯", "☸", "☹", "☺", "☻", "❤", "♡", "♨",
	"♩", "♪", "♫", "♬", "♭", "♮", "♯",
	" dialed ", " disconnected ", " ERROR ", " NULL ", " VOID ", " GLITCH ",
	"А", "Б", "В", "Г", "Д", "Е", "Ё", "Ж", "З", "И", "Й", "К", "Л", "М", "Н", "О", "П",
	"Р", "С", "Т", "У", "Ф", "Х", "Ц", "Ч", "Ш", "Щ", "Ъ", "Ы", "Ь", "Э", "Ю", "Я",
	"а", "б", "в", "г", "д", "е", "ё", "ж", "з", "и", "й", "к", "л", "м", "н", "о", "п",
	"р", "с", "т", "у", "ф", "х", "ц", "ч", "ш", "щ", "ъ", "ы", "ь", "э", "ю", "я",
	"Ѣ", "ѣ", "Ѳ", "ѳ", "Ѵ", "ѵ", // pre-reform letters
}

// Gibberish are the replacement words for whole-word substitution.
var Gibberish = []string{
	"fnord", "zork", "blarg", "kwyjibo", "eep", "glarble",
	"snarf", "thwack", "bazinga", "floopy", "wibble", "wabble",
}

// CyrillicUpper and CyrillicLower are the modern Russian alphabet in
// order, 33 letters each including Ё and ё.
var (
	CyrillicUpper = []rune("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ")
	CyrillicLower = []rune("абвгдеёжзийклмнопрстуфхцчшщъыьэюя")
)

// IsUpperCyrillic reports whether r is in А..Я or is Ё.
func IsUpperCyrillic(r rune) bool {
	return (r >= 0x0410 && r <= 0x042F) || r == 0x0401
}

// IsLowerCyrillic reports whether r is in а..я or is ё.
func IsLowerCyrillic(r rune) bool {
	return (r >= 0x0430 && r <= 0x044F) || r == 0x0451
}

// IsSingleSymbol reports whether s matches a one-glyph entry of Symbols.
func IsSingleSymbol(s string) bool {
	return slices.ContainsFunc(Symbols, func(sym string) bool {
		return strings.TrimSpace(sym) == s && utf8.RuneCountInString(sym) == 1
	})
}
