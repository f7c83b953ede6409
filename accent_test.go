package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func TestAccentuate(t *testing.T) {
	n := grapheme.Normalize
	tests := []struct {
		name string
		word string
		ctx  accentContext
		want string
	}{
		{"recessive antepenult", "ἐλῡσα", accentContext{rule: accentRecessive}, "ἔλῡσα"},
		{"recessive long ultima", "λῡω", accentContext{rule: accentRecessive}, "λῡ́ω"},
		{"long penult short ultima", "ἠλθον", accentContext{rule: accentRecessive}, "ἦλθον"},
		{"penult circumflex", "λυθηναι", accentContext{rule: accentPenult}, "λυθῆναι"},
		{"penult acute", "βεβλαφθαι", accentContext{rule: accentPenult}, "βεβλάφθαι"},
		{"ultima long", "βαλειν", accentContext{rule: accentUltima}, "βαλεῖν"},
		{"oxytone", "ἐλθε", accentContext{rule: accentOxytone}, "ἐλθέ"},
		{"final οι short", "παιδευοι", accentContext{rule: accentRecessive}, "παίδευοι"},
		{"optative final οι long", "παιδευοι", accentContext{rule: accentRecessive, longFinalDiphthong: true}, "παιδεύοι"},
		{"preverb boundary", "ἀποδος", accentContext{rule: accentRecessive, boundary: 2}, "ἀπόδος"},
		{"movable ν ignored", "ἐλῡσε(ν)", accentContext{rule: accentRecessive}, "ἔλῡσε(ν)"},
		{"participle masculine nominative", "λυθεις", accentContext{rule: accentParticipleUltima,
			gender: Masculine, number: Singular, grammaticalCase: Nominative}, "λυθείς"},
		{"participle genitive", "λυθεντος", accentContext{rule: accentParticipleUltima,
			gender: Masculine, number: Singular, grammaticalCase: Genitive}, "λυθέντος"},
		{"feminine genitive plural", "λῡουσων", accentContext{rule: accentParticiple,
			gender: Feminine, number: Plural, grammaticalCase: Genitive}, "λῡουσῶν"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, n(tt.want), accentuate(n(tt.word), tt.ctx))
		})
	}
}

func TestAccentuateIdempotent(t *testing.T) {
	for _, w := range []string{"ἔλῡσα", "λυθῆναι", "ἀπόδος", "εἰσί(ν)"} {
		w = grapheme.Normalize(w)
		assert.Equal(t, w, accentuate(w, accentContext{rule: accentRecessive}))
	}
}

func TestSyllables(t *testing.T) {
	ls := grapheme.Parse(grapheme.Normalize("παιδεύουσι(ν)"))
	syl := syllables(ls, 0, false)
	if assert.Len(t, syl, 3) {
		assert.False(t, syl[0].long, "ι")
		assert.True(t, syl[1].long, "ου")
		assert.True(t, syl[2].long, "ευ")
	}
	assert.Len(t, syllables(ls, 5, false), 2, "boundary stops before ευ")
}
