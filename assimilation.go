package hoplite

import (
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// assimilationRule rewrites a stem-final consonant and the onset of a
// perfect middle ending.
type assimilationRule struct {
	stemFinal   string
	onset       string
	replacement string
}

// span is the text the rule matches across the morpheme boundary.
func (r assimilationRule) span() string {
	return r.stemFinal + r.onset
}

// assimilations are tried in order; the first match wins. σθ is listed
// before σ so that the longer onset is preferred.
var assimilations = func() []assimilationRule {
	var out []assimilationRule
	add := func(finals []string, rules ...[2]string) {
		for _, f := range finals {
			for _, r := range rules {
				out = append(out, assimilationRule{stemFinal: f, onset: r[0], replacement: r[1]})
			}
		}
	}
	out = append(out,
		assimilationRule{"μπ", "μ", "μμ"},
		assimilationRule{"μπ", "σθ", "μφθ"},
		assimilationRule{"μπ", "σ", "μψ"},
		assimilationRule{"μπ", "τ", "μπτ"},
	)
	add([]string{"π", "β", "φ"}, [2]string{"μ", "μμ"}, [2]string{"σθ", "φθ"}, [2]string{"σ", "ψ"}, [2]string{"τ", "πτ"})
	add([]string{"κ", "γ", "χ"}, [2]string{"μ", "γμ"}, [2]string{"σθ", "χθ"}, [2]string{"σ", "ξ"}, [2]string{"τ", "κτ"})
	add([]string{"σ"}, [2]string{"μ", "σμ"}, [2]string{"σθ", "σθ"}, [2]string{"σ", "σ"}, [2]string{"τ", "στ"})
	add([]string{"λ"}, [2]string{"μ", "λμ"}, [2]string{"σθ", "λθ"}, [2]string{"σ", "λσ"}, [2]string{"τ", "λτ"})
	return out
}()

// assimilate joins stem and ending, applying the first matching rule.
func assimilate(stem, ending string) string {
	for _, r := range assimilations {
		if strings.HasSuffix(stem, r.stemFinal) && strings.HasPrefix(ending, r.onset) {
			return strings.TrimSuffix(stem, r.stemFinal) + r.replacement + strings.TrimPrefix(ending, r.onset)
		}
	}
	return stem + ending
}

// endsInConsonant reports whether a perfect middle stem keeps a final
// consonant, which sends the third plural to the periphrastic form.
func endsInConsonant(stem string) bool {
	last, _, ok := lastLetter(stem)
	return ok && !grapheme.IsVowel(last.Base)
}
