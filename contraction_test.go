package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func TestContract(t *testing.T) {
	n := grapheme.Normalize
	tests := []struct {
		word string
		at   int
		want string
	}{
		{"τιμάω", 3, "τιμῶ"},
		{"ποιέει", 3, "ποιεῖ"},
		{"ποιέουσι(ν)", 3, "ποιοῦσι(ν)"},
		{"δηλόω", 3, "δηλῶ"},
		{"τιμάειν", 3, "τιμᾶν"},
		{"δηλόειν", 3, "δηλοῦν"},
		{"τιμαέτω", 3, "τιμᾱ́τω"},
		{"ποιεόμεθα", 3, "ποιούμεθα"},
	}
	for _, tt := range tests {
		got, ok := contract(n(tt.word), tt.at)
		assert.True(t, ok, tt.word)
		assert.Equal(t, n(tt.want), got, tt.word)
	}

	_, ok := contract(n("λῡ́ω"), 1)
	assert.False(t, ok, "υ does not contract")
}

func TestAssimilate(t *testing.T) {
	tests := []struct{ stem, ending, want string }{
		{"βεβλαβ", "σθαι", "βεβλαφθαι"},
		{"πεπεμπ", "μαι", "πεπεμμαι"},
		{"πεπεμπ", "σαι", "πεπεμψαι"},
		{"τεταγ", "ται", "τετακται"},
		{"τεταγ", "σαι", "τεταξαι"},
		{"κεκελευσ", "σθε", "κεκελευσθε"},
		{"κεκελευσ", "σαι", "κεκελευσαι"},
		{"ἠγγελ", "σθαι", "ἠγγελθαι"},
		{"λελυ", "ται", "λελυται"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, assimilate(tt.stem, tt.ending), tt.stem+"+"+tt.ending)
	}
}
