package hoplite

import (
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

type contractionRule struct {
	from, to string
}

// contractions are keyed on the stem vowel and the start of the ending,
// longest spans first.
var contractions = []contractionRule{
	{"αει", "ᾳ"}, {"αοι", "ῳ"}, {"αου", "ω"},
	{"αε", "ᾱ"}, {"αῃ", "ᾳ"}, {"αη", "ᾱ"}, {"αο", "ω"}, {"αω", "ω"},
	{"εει", "ει"}, {"εοι", "οι"}, {"εου", "ου"},
	{"εε", "ει"}, {"εῃ", "ῃ"}, {"εη", "η"}, {"εο", "ου"}, {"εω", "ω"},
	{"οει", "οι"}, {"οοι", "οι"}, {"οου", "ου"},
	{"οε", "ου"}, {"οῃ", "οι"}, {"οη", "ω"}, {"οο", "ου"}, {"οω", "ω"},
}

// infinitiveContractions override the table before the -ειν of the
// present infinitive.
var infinitiveContractions = map[string]string{
	"αει": "ᾱν",
	"οει": "ουν",
}

var contractionTable = func() map[string]string {
	m := make(map[string]string, len(contractions))
	for _, c := range contractions {
		m[grapheme.Normalize(c.from)] = grapheme.Normalize(c.to)
	}
	return m
}()

// contract fuses the stem vowel at letter index at with the vowels that
// follow it. An accent on the stem vowel becomes a circumflex on the
// result, an accent on the ending vowel stays acute.
func contract(word string, at int) (string, bool) {
	ls := grapheme.Parse(word)
	if at < 0 || at+1 >= len(ls) {
		return word, false
	}
	switch ls[at].Base {
	case 'α', 'ε', 'ο':
	default:
		return word, false
	}
	for n := 3; n >= 2; n-- {
		if at+n > len(ls) {
			continue
		}
		span := ls[at : at+n]
		key := contractionKey(span)
		to, ok := contractionTable[key]
		if !ok {
			continue
		}
		if n == 3 && at+n < len(ls) && ls[at+n].Base == 'ν' && at+n+1 == len(ls) {
			if inf, ok := infinitiveContractions[key]; ok {
				to = grapheme.Normalize(inf)
				n++
				span = ls[at : at+n]
			}
		}
		repl := grapheme.Parse(to)
		target := len(repl) - 1
		for target > 0 && !grapheme.IsVowel(repl[target].Base) {
			target--
		}
		switch {
		case span[0].Marks&grapheme.Accents != 0:
			repl[target] = grapheme.Toggle(grapheme.Toggle(repl[target], grapheme.Macron, false), grapheme.Circumflex, true)
		case accentedAfter(span[1:]):
			repl[target] = grapheme.Toggle(repl[target], grapheme.Acute, true)
		}
		out := append([]grapheme.Letter{}, ls[:at]...)
		out = append(out, repl...)
		out = append(out, ls[at+n:]...)
		return grapheme.Render(out, grapheme.Precomposed), true
	}
	return word, false
}

func contractionKey(span []grapheme.Letter) string {
	key := make([]grapheme.Letter, len(span))
	for i, l := range span {
		key[i] = grapheme.Letter{Base: l.Base, Marks: l.Marks & grapheme.IotaSubscript}
	}
	return grapheme.Render(key, grapheme.Precomposed)
}

func accentedAfter(ls []grapheme.Letter) bool {
	for _, l := range ls {
		if l.Marks&grapheme.Accents != 0 {
			return true
		}
	}
	return false
}
