package hoplite

import (
	"unicode"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// syllable is a vowel nucleus counted from the end of a word.
type syllable struct {
	// index is the letter that carries an accent on this syllable: the
	// vowel itself, or the second vowel of a diphthong.
	index int
	// start is the first letter of the nucleus.
	start int
	long  bool
}

// syllables returns at most three syllables from the end of ls, ultima
// first. Nuclei before min are not reached. longFinalDiphthong makes a
// word-final αι or οι count long, as in the third singular optative.
func syllables(ls []grapheme.Letter, min int, longFinalDiphthong bool) []syllable {
	end := len(ls)
	for i, l := range ls {
		if l.Base == '(' {
			end = i
			break
		}
	}
	last := -1
	for i := end - 1; i >= 0; i-- {
		if unicode.IsLetter(ls[i].Base) {
			last = i
			break
		}
	}
	var out []syllable
	for i := end - 1; i >= 0 && len(out) < 3; i-- {
		l := ls[i]
		if !grapheme.IsVowel(l.Base) {
			continue
		}
		if i > 0 && isDiphthong(ls[i-1], l) {
			s := syllable{index: i, start: i - 1, long: true}
			if i == last && len(out) == 0 && l.Base == 'ι' && (ls[i-1].Base == 'α' || ls[i-1].Base == 'ο') {
				s.long = longFinalDiphthong
			}
			if s.start < min {
				break
			}
			out = append(out, s)
			i--
			continue
		}
		if i < min {
			break
		}
		out = append(out, syllable{index: i, start: i, long: grapheme.Classify(l) == grapheme.Long})
	}
	return out
}
