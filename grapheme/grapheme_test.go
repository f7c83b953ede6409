package grapheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRender(t *testing.T) {
	tests := []string{"λῡ́ω", "ἔλῡσα", "τιμᾷς", "ᾔδειν", "εἰσί(ν)", "λέλυκα / λελύκᾱσι"}
	for _, s := range tests {
		got := Render(Parse(s), Precomposed)
		assert.Equal(t, Normalize(s), got, "round trip of %q", s)
	}
}

func TestParseMarks(t *testing.T) {
	ls := Parse("ᾄ")
	require.Len(t, ls, 1)
	assert.Equal(t, 'α', ls[0].Base)
	assert.True(t, ls[0].Has(Smooth|Acute|IotaSubscript))
	assert.False(t, ls[0].Has(Rough))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Quantity
	}{
		{"η", Long},
		{"ω", Long},
		{"ᾱ", Long},
		{"ῦ", Long},
		{"ᾳ", Long},
		{"α", Short},
		{"ι", Short},
		{"ε", Short},
		{"ο", Short},
		{"λ", Other},
		{"(", Other},
	}
	for _, tt := range tests {
		ls := Parse(tt.in)
		require.Len(t, ls, 1)
		assert.Equal(t, tt.want, Classify(ls[0]), "Classify(%q)", tt.in)
	}
}

func TestToggle(t *testing.T) {
	ls := Parse("ἐλυσα")
	ls[0] = Toggle(ls[0], Acute, true)
	assert.Equal(t, Normalize("ἔλυσα"), Render(ls, Precomposed))
	ls[0] = Toggle(ls[0], Acute, false)
	assert.Equal(t, Normalize("ἐλυσα"), Render(ls, Precomposed))
}

func TestStripAccent(t *testing.T) {
	assert.Equal(t, Normalize("λῡω"), StripAccent("λῡ́ω"))
	assert.Equal(t, Normalize("ἐλυθην"), StripAccent("ἐλύθην"))
	assert.Equal(t, Normalize("τιμᾳς"), StripAccent("τιμᾷς"))
}

func TestHasAccent(t *testing.T) {
	assert.True(t, HasAccent("λύω"))
	assert.True(t, HasAccent("τιμῶ"))
	assert.False(t, HasAccent("ἐλῡσα"))
}

func TestDecomposedRender(t *testing.T) {
	got := Render(Parse("ἔ"), Decomposed)
	assert.Equal(t, "\u03b5\u0313\u0301", got)
}
