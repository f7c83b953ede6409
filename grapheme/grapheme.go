// Package grapheme classifies Greek letters and toggles their diacritics.
// Strings are parsed into base letters carrying a diacritic bitset and
// rendered back either precomposed (NFC) or decomposed (NFD).
package grapheme

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Mark is a bitset of Greek diacritics.
type Mark uint16

const (
	Smooth Mark = 1 << iota
	Rough
	Acute
	Grave
	Circumflex
	Macron
	Breve
	Diaeresis
	IotaSubscript
)

// Accents covers the three pitch accents.
const Accents = Acute | Grave | Circumflex

// Breathings covers smooth and rough breathing.
const Breathings = Smooth | Rough

// combining maps each combining code point to its mark.
var combining = map[rune]Mark{
	'\u0313': Smooth,
	'\u0314': Rough,
	'\u0301': Acute,
	'\u0300': Grave,
	'\u0342': Circumflex,
	'\u0304': Macron,
	'\u0306': Breve,
	'\u0308': Diaeresis,
	'\u0345': IotaSubscript,
}

// renderOrder is the order marks are emitted before normalization.
var renderOrder = []struct {
	m Mark
	r rune
}{
	{Macron, '\u0304'},
	{Breve, '\u0306'},
	{Diaeresis, '\u0308'},
	{Smooth, '\u0313'},
	{Rough, '\u0314'},
	{Acute, '\u0301'},
	{Grave, '\u0300'},
	{Circumflex, '\u0342'},
	{IotaSubscript, '\u0345'},
}

// Letter is a base rune with its diacritics.
type Letter struct {
	Base  rune
	Marks Mark
}

// Has reports whether every mark in m is set on l.
func (l Letter) Has(m Mark) bool {
	return l.Marks&m == m
}

// Quantity is the phonological length class of a letter.
type Quantity int

const (
	Other Quantity = iota
	Short
	Long
)

func (q Quantity) String() string {
	switch q {
	case Short:
		return "short"
	case Long:
		return "long"
	default:
		return "other"
	}
}

// Mode selects the Unicode rendering of a word.
type Mode int

const (
	Precomposed Mode = iota
	Decomposed
)

// Parse splits s into letters. Combining marks attach to the preceding base;
// unknown combining marks are dropped.
func Parse(s string) []Letter {
	var out []Letter
	for _, r := range norm.NFD.String(s) {
		if m, ok := combining[r]; ok {
			if len(out) > 0 {
				out[len(out)-1].Marks |= m
			}
			continue
		}
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, Letter{Base: r})
	}
	return out
}

// Render joins letters back into a string in the given mode.
func Render(letters []Letter, mode Mode) string {
	var b strings.Builder
	for _, l := range letters {
		b.WriteRune(l.Base)
		for _, o := range renderOrder {
			if l.Marks&o.m != 0 {
				b.WriteRune(o.r)
			}
		}
	}
	if mode == Decomposed {
		return norm.NFD.String(b.String())
	}
	return norm.NFC.String(b.String())
}

// Normalize returns s in precomposed form.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// IsVowel reports whether r is a Greek vowel base letter.
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

// Classify returns the quantity of a single letter.
func Classify(l Letter) Quantity {
	switch unicode.ToLower(l.Base) {
	case 'η', 'ω':
		return Long
	case 'ε', 'ο':
		return Short
	case 'α', 'ι', 'υ':
		if l.Marks&(Macron|Circumflex|IotaSubscript) != 0 {
			return Long
		}
		return Short
	}
	return Other
}

// Toggle sets or clears mark on l.
func Toggle(l Letter, m Mark, on bool) Letter {
	if on {
		l.Marks |= m
	} else {
		l.Marks &^= m
	}
	return l
}

// Strip clears marks on every letter of s and renders it precomposed.
func Strip(s string, m Mark) string {
	ls := Parse(s)
	for i := range ls {
		ls[i].Marks &^= m
	}
	return Render(ls, Precomposed)
}

// StripAccent removes acute, grave and circumflex accents from s.
func StripAccent(s string) string {
	return Strip(s, Accents)
}

// HasAccent reports whether any letter of s carries a pitch accent.
func HasAccent(s string) bool {
	for _, l := range Parse(s) {
		if l.Marks&Accents != 0 {
			return true
		}
	}
	return false
}

// Len returns the number of letters in s.
func Len(s string) int {
	return len(Parse(s))
}
