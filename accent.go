package hoplite

import (
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// accentRule chooses the syllable that takes the accent.
type accentRule int

const (
	// accentRecessive places the accent as far from the end as the ultima allows.
	accentRecessive accentRule = iota
	// accentPenult fixes the accent on the penult.
	accentPenult
	// accentUltima fixes the accent on the ultima, circumflex when long.
	accentUltima
	// accentOxytone puts an acute on the ultima.
	accentOxytone
	// accentParticiple is recessive with a circumflex on the feminine genitive plural.
	accentParticiple
	// accentParticipleUltima is the λυθείς pattern: ultima in the masculine
	// and neuter nominative singular, penult elsewhere.
	accentParticipleUltima
)

// accentContext carries the facts the accent rules need beyond the word.
type accentContext struct {
	rule accentRule
	// boundary is the first letter index the accent may reach.
	boundary int
	// longFinalDiphthong marks the third singular optative.
	longFinalDiphthong bool
	gender             Gender
	number             Number
	grammaticalCase    Case
}

// accentuate places one accent on word. Words that already carry an accent
// are returned unchanged.
func accentuate(word string, ctx accentContext) string {
	if word == "" || grapheme.HasAccent(word) {
		return word
	}
	ls := grapheme.Parse(word)
	syl := syllables(ls, ctx.boundary, ctx.longFinalDiphthong)
	if len(syl) == 0 {
		return word
	}
	switch ctx.rule {
	case accentPenult:
		placePenult(ls, syl)
	case accentUltima:
		placeUltima(ls, syl[0])
	case accentOxytone:
		place(ls, syl[0], grapheme.Acute)
	case accentParticiple:
		if ctx.feminineGenitivePlural() {
			place(ls, syl[0], grapheme.Circumflex)
		} else {
			placeRecessive(ls, syl)
		}
	case accentParticipleUltima:
		switch {
		case ctx.feminineGenitivePlural():
			place(ls, syl[0], grapheme.Circumflex)
		case ctx.number == Singular && ctx.gender == Masculine &&
			(ctx.grammaticalCase == Nominative || ctx.grammaticalCase == Vocative),
			ctx.number == Singular && ctx.gender == Neuter &&
				(ctx.grammaticalCase == Nominative || ctx.grammaticalCase == Accusative || ctx.grammaticalCase == Vocative):
			place(ls, syl[0], grapheme.Acute)
		default:
			placePenult(ls, syl)
		}
	default:
		placeRecessive(ls, syl)
	}
	return grapheme.Render(ls, grapheme.Precomposed)
}

func (ctx accentContext) feminineGenitivePlural() bool {
	return ctx.gender == Feminine && ctx.grammaticalCase == Genitive && ctx.number == Plural
}

func placeRecessive(ls []grapheme.Letter, syl []syllable) {
	if len(syl) >= 3 && !syl[0].long {
		place(ls, syl[2], grapheme.Acute)
		return
	}
	placePenult(ls, syl)
}

func placePenult(ls []grapheme.Letter, syl []syllable) {
	if len(syl) == 1 {
		placeUltima(ls, syl[0])
		return
	}
	if syl[1].long && !syl[0].long {
		place(ls, syl[1], grapheme.Circumflex)
		return
	}
	place(ls, syl[1], grapheme.Acute)
}

func placeUltima(ls []grapheme.Letter, s syllable) {
	if s.long {
		place(ls, s, grapheme.Circumflex)
		return
	}
	place(ls, s, grapheme.Acute)
}

// place toggles mark on the accent-bearing letter of s. A circumflex
// subsumes the macron.
func place(ls []grapheme.Letter, s syllable, mark grapheme.Mark) {
	l := grapheme.Toggle(ls[s.index], grapheme.Accents, false)
	if mark == grapheme.Circumflex {
		l = grapheme.Toggle(l, grapheme.Macron, false)
	}
	ls[s.index] = grapheme.Toggle(l, mark, true)
}
