package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func preverbFor(t *testing.T, full string) *preverb {
	t.Helper()
	for i := range preverbs {
		if preverbs[i].Full == full {
			return &preverbs[i]
		}
	}
	t.Fatalf("no preverb %s", full)
	return nil
}

func TestJoinPreverb(t *testing.T) {
	tests := []struct{ pv, simplex, want string }{
		{"ἀπο", "δος", "ἀποδος"},
		{"ἀπο", "ἑλ", "ἀφελ"},
		{"ἀπο", "ἀγ", "ἀπαγ"},
		{"ἀπο", "ῥιπτ", "ἀπορριπτ"},
		{"ἐκ", "βαλλ", "ἐκβαλλ"},
		{"ἐκ", "ἀγ", "ἐξαγ"},
		{"συν", "βαλλ", "συμβαλλ"},
		{"συν", "λεγ", "συλλεγ"},
		{"συν", "γιγνωσκ", "συγγιγνωσκ"},
		{"συν", "σκευ", "συσκευ"},
		{"συν", "οἰδ", "συνοιδ"},
		{"κατα", "ἱστ", "καθιστ"},
	}
	for _, tt := range tests {
		t.Run(tt.pv+"+"+tt.simplex, func(t *testing.T) {
			n := grapheme.Normalize
			assert.Equal(t, n(tt.want), joinPreverb(preverbFor(t, tt.pv), n(tt.simplex)))
		})
	}
	assert.Equal(t, "λυ", joinPreverb(nil, "λυ"))
}

func TestSplitPreverb(t *testing.T) {
	n := grapheme.Normalize
	tests := []struct{ pv, fused, simplex string }{
		{"ἀπο", "ἀποδιδω", "διδω"},
		{"ἀπο", "ἀφελ", "ἑλ"},
		{"ἀπο", "ἀπαγ", "ἀγ"},
		{"συν", "συμβαλλ", "βαλλ"},
		{"κατα", "καθιστ", "ἱστ"},
	}
	for _, tt := range tests {
		_, simplex, ok := splitPreverb(preverbFor(t, tt.pv), n(tt.fused))
		assert.True(t, ok, tt.fused)
		assert.Equal(t, n(tt.simplex), simplex, tt.fused)
	}

	_, simplex, ok := splitPreverb(preverbFor(t, "ἀπο"), n("λυ"))
	assert.False(t, ok)
	assert.Equal(t, n("λυ"), simplex)
}

func TestPreverbBoundary(t *testing.T) {
	sf, _, ok := matchSurface(preverbFor(t, "ἀπο"), grapheme.Normalize("ἀποδος"))
	require.True(t, ok)
	assert.Equal(t, 2, preverbBoundary(sf, false))
	assert.Equal(t, 3, preverbBoundary(sf, true))
}

func TestVerbPreverb(t *testing.T) {
	l := loadLexicon(t)
	pv := verbPreverb(mustVerb(t, l, "ἀποδίδωμι"))
	require.NotNil(t, pv)
	assert.Equal(t, "ἀπο", pv.Full)
	assert.Nil(t, verbPreverb(mustVerb(t, l, "λῡ́ω")))
}
