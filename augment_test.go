package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func normalizeAll(in ...string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = grapheme.Normalize(s)
	}
	return out
}

func TestAugment(t *testing.T) {
	tests := []struct {
		stem       string
		pluperfect bool
		want       []string
	}{
		{"λῡσ", false, []string{"ἐλῡσ"}},
		{"ἀκου", false, []string{"ἠκου"}},
		{"οἰκ", false, []string{"ᾠκ"}},
		{"αἱρ", false, []string{"ᾑρ"}},
		{"εὑρ", false, []string{"ηὑρ"}},
		{"ῥιπτ", false, []string{"ἐρριπτ"}},
		{"ἐχ", false, []string{"εἰχ"}},
		{"βουλ", false, []string{"ἐβουλ", "ἠβουλ"}},
		{"λελυκ", true, []string{"ἐλελυκ"}},
		{"ἐγνωκ", true, []string{"ἐγνωκ"}},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			assert.Equal(t, normalizeAll(tt.want...), augment(grapheme.Normalize(tt.stem), tt.pluperfect))
		})
	}
}

func TestDeaugment(t *testing.T) {
	tests := []struct{ stem, present, want string }{
		{"ἐλῡσ", "λῡ", "λῡσ"},
		{"ἠκουσ", "ἀκου", "ἀκουσ"},
		{"ἐρριψ", "ῥιπτ", "ῥιψ"},
		{"εἱλ", "αἱρ", "ἑλ"},
		{"ἠνεγκ", "φερ", "ἐνεγκ"},
		{"ἐβαλ", "βαλλ", "βαλ"},
	}
	for _, tt := range tests {
		t.Run(tt.stem, func(t *testing.T) {
			n := grapheme.Normalize
			assert.Equal(t, n(tt.want), deaugment(n(tt.stem), n(tt.present)))
		})
	}
}

func TestIndicativeAoristForm(t *testing.T) {
	n := grapheme.Normalize
	f := indicativeAoristForm(nil, n("ἐλῡσ"), n("λῡ"))
	assert.Equal(t, n("ἐ"), f.augment)
	assert.Equal(t, n("λῡσ"), f.body)
	assert.Equal(t, n("ἐ - λῡσ - α"), f.decomposed(n("α")))

	f = indicativeAoristForm(nil, n("ἠκουσ"), n("ἀκου"))
	assert.Empty(t, f.augment, "temporal augment is not split off")
}
