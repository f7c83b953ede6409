package hoplite

import (
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// Literals in this package are normalized before comparison so that a rule
// never depends on how its source text was typed.

func hasSuffix(s, suffix string) bool {
	return strings.HasSuffix(s, grapheme.Normalize(suffix))
}

func hasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, grapheme.Normalize(prefix))
}

func trimSuffix(s, suffix string) string {
	return strings.TrimSuffix(s, grapheme.Normalize(suffix))
}

func trimPrefix(s, prefix string) string {
	return strings.TrimPrefix(s, grapheme.Normalize(prefix))
}

// replacePrefix swaps prefix for repl when s starts with prefix.
func replacePrefix(s, prefix, repl string) (string, bool) {
	if !hasPrefix(s, prefix) {
		return s, false
	}
	return grapheme.Normalize(repl) + trimPrefix(s, prefix), true
}

// lastLetter returns the final letter of s and the text before it.
func lastLetter(s string) (grapheme.Letter, string, bool) {
	ls := grapheme.Parse(s)
	if len(ls) == 0 {
		return grapheme.Letter{}, "", false
	}
	return ls[len(ls)-1], grapheme.Render(ls[:len(ls)-1], grapheme.Precomposed), true
}

// firstLetters splits s after its first n letters.
func firstLetters(s string, n int) (string, string) {
	ls := grapheme.Parse(s)
	if n > len(ls) {
		n = len(ls)
	}
	return grapheme.Render(ls[:n], grapheme.Precomposed), grapheme.Render(ls[n:], grapheme.Precomposed)
}

// keepLength copies onto stem the length that a circumflex on α, ι or υ
// shows in part, as a macron. stem must be a letter-for-letter prefix of
// the unaccented part, except for letters added after the prefix.
func keepLength(part, stem string) string {
	src, ls := grapheme.Parse(part), grapheme.Parse(stem)
	changed := false
	for i := range ls {
		if i >= len(src) || src[i].Base != ls[i].Base || !src[i].Has(grapheme.Circumflex) {
			continue
		}
		switch src[i].Base {
		case 'α', 'ι', 'υ':
		default:
			continue
		}
		if i > 0 && isDiphthong(src[i-1], src[i]) {
			continue
		}
		ls[i].Marks |= grapheme.Macron
		changed = true
	}
	if !changed {
		return stem
	}
	return grapheme.Render(ls, grapheme.Precomposed)
}

// stripBreathing removes breathing marks from every letter of s.
func stripBreathing(s string) string {
	return grapheme.Strip(s, grapheme.Breathings)
}

// breathingOf returns the breathing carried by the initial vowel group of s.
func breathingOf(s string) grapheme.Mark {
	for i, l := range grapheme.Parse(s) {
		if i > 2 {
			break
		}
		if b := l.Marks & grapheme.Breathings; b != 0 {
			return b
		}
	}
	return 0
}

// withBreathing places mark on the initial vowel group of s. In a diphthong
// the breathing sits on the second vowel. Consonant-initial words other
// than ρ are returned unchanged.
func withBreathing(s string, mark grapheme.Mark) string {
	ls := grapheme.Parse(s)
	if len(ls) == 0 || mark == 0 {
		return s
	}
	for i := range ls {
		ls[i].Marks &^= grapheme.Breathings
		if i > 2 {
			break
		}
	}
	switch {
	case ls[0].Base == 'ρ':
		ls[0].Marks |= grapheme.Rough
	case grapheme.IsVowel(ls[0].Base):
		i := 0
		if len(ls) > 1 && isDiphthong(ls[0], ls[1]) {
			i = 1
		}
		ls[i].Marks |= mark
	}
	return grapheme.Render(ls, grapheme.Precomposed)
}

// isDiphthong reports whether a followed by b forms a diphthong.
func isDiphthong(a, b grapheme.Letter) bool {
	if b.Has(grapheme.Diaeresis) || a.Has(grapheme.Macron) || a.Has(grapheme.IotaSubscript) {
		return false
	}
	switch b.Base {
	case 'ι':
		switch a.Base {
		case 'α', 'ε', 'ο', 'υ':
			return true
		}
	case 'υ':
		switch a.Base {
		case 'α', 'ε', 'ο', 'η', 'ω':
			return true
		}
	}
	return false
}

// startsWithVowel reports whether s begins with a vowel.
func startsWithVowel(s string) bool {
	ls := grapheme.Parse(s)
	return len(ls) > 0 && grapheme.IsVowel(ls[0].Base)
}

// joinMorphemes renders a decomposed form.
func joinMorphemes(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, MorphemeSeparator)
}

// MorphemeSeparator joins morphemes in decomposed forms.
const MorphemeSeparator = " - "
