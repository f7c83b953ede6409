package hoplite

import (
	"sort"
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// preverb is a prefix of compound verbs in its orthographic variants.
type preverb struct {
	// Full is the form before consonants, also shown in decomposed forms.
	Full string
	// BeforeVowel is the elided form before a smooth breathing.
	BeforeVowel string
	// BeforeRough is the elided form before a rough breathing.
	BeforeRough string
	// nasal marks ἐν and συν, which assimilate to a following consonant.
	nasal bool
}

var preverbs = []preverb{
	{Full: "ἀπο", BeforeVowel: "ἀπ", BeforeRough: "ἀφ"},
	{Full: "ἀνα", BeforeVowel: "ἀν", BeforeRough: "ἀν"},
	{Full: "ἀντι", BeforeVowel: "ἀντ", BeforeRough: "ἀνθ"},
	{Full: "ἀμφι", BeforeVowel: "ἀμφ", BeforeRough: "ἀμφ"},
	{Full: "δια", BeforeVowel: "δι", BeforeRough: "δι"},
	{Full: "ἐκ", BeforeVowel: "ἐξ", BeforeRough: "ἐξ"},
	{Full: "ἐν", BeforeVowel: "ἐν", BeforeRough: "ἐν", nasal: true},
	{Full: "ἐπι", BeforeVowel: "ἐπ", BeforeRough: "ἐφ"},
	{Full: "κατα", BeforeVowel: "κατ", BeforeRough: "καθ"},
	{Full: "μετα", BeforeVowel: "μετ", BeforeRough: "μεθ"},
	{Full: "παρα", BeforeVowel: "παρ", BeforeRough: "παρ"},
	{Full: "περι", BeforeVowel: "περι", BeforeRough: "περι"},
	{Full: "προ", BeforeVowel: "προ", BeforeRough: "προ"},
	{Full: "προσ", BeforeVowel: "προσ", BeforeRough: "προσ"},
	{Full: "συν", BeforeVowel: "συν", BeforeRough: "συν", nasal: true},
	{Full: "ὑπο", BeforeVowel: "ὑπ", BeforeRough: "ὑφ"},
	{Full: "ὑπερ", BeforeVowel: "ὑπερ", BeforeRough: "ὑπερ"},
	{Full: "εἰσ", BeforeVowel: "εἰσ", BeforeRough: "εἰσ"},
}

// surface is one spelling of a preverb as it appears in a fused word.
type surface struct {
	text  string
	rough bool
	pv    *preverb
}

// surfaces lists every spelling, longest first.
var surfaces = func() []surface {
	var out []surface
	add := func(pv *preverb, text string, rough bool) {
		out = append(out, surface{text: grapheme.StripAccent(grapheme.Normalize(text)), rough: rough, pv: pv})
	}
	for i := range preverbs {
		pv := &preverbs[i]
		add(pv, pv.Full, false)
		if pv.BeforeVowel != pv.Full {
			add(pv, pv.BeforeVowel, false)
		}
		if pv.BeforeRough != pv.BeforeVowel {
			add(pv, pv.BeforeRough, true)
		}
		if pv.nasal {
			stem := strings.TrimSuffix(pv.Full, "ν")
			for _, n := range []string{"μ", "γ", "λ", "ρ"} {
				add(pv, stem+n, false)
			}
			if pv.Full == "συν" {
				add(pv, "συ", false)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return grapheme.Len(out[i].text) > grapheme.Len(out[j].text)
	})
	return out
}()

// verbPreverb finds the preverb of a prefixed verb from its first principal part.
func verbPreverb(v *Verb) *preverb {
	if !v.Properties.Has(Prefixed) {
		return nil
	}
	if s, _, ok := matchSurface(nil, grapheme.StripAccent(v.Lemma())); ok {
		return s.pv
	}
	return nil
}

func matchSurface(pv *preverb, s string) (surface, string, bool) {
	for _, sf := range surfaces {
		if pv != nil && sf.pv != pv {
			continue
		}
		if rest, ok := strings.CutPrefix(s, sf.text); ok && rest != "" {
			return sf, rest, true
		}
	}
	return surface{}, "", false
}

// splitPreverb separates pv from a fused stem. The simplex gets back the
// breathing that elision removed. When s does not start with pv the whole
// stem is returned as the simplex.
func splitPreverb(pv *preverb, s string) (sf surface, simplex string, ok bool) {
	if pv == nil {
		return surface{}, s, false
	}
	sf, rest, ok := matchSurface(pv, s)
	if !ok {
		return surface{}, s, false
	}
	if startsWithVowel(rest) && breathingOf(rest) == 0 {
		mark := grapheme.Smooth
		if sf.rough {
			mark = grapheme.Rough
		}
		rest = withBreathing(rest, mark)
	}
	if sf.pv.nasal && hasPrefix(rest, "ρ") && breathingOf(rest) == 0 {
		rest = withBreathing(trimPrefix(rest, "ρ"), grapheme.Rough)
	}
	return sf, rest, true
}

// joinPreverb fuses pv onto a simplex stem.
func joinPreverb(pv *preverb, simplex string) string {
	if pv == nil {
		return simplex
	}
	if startsWithVowel(simplex) {
		text := pv.BeforeVowel
		if breathingOf(simplex) == grapheme.Rough {
			text = pv.BeforeRough
		}
		return grapheme.Normalize(text) + stripBreathing(simplex)
	}
	full := grapheme.Normalize(pv.Full)
	if hasPrefix(simplex, "ῥ") {
		rest := trimPrefix(simplex, "ῥ")
		if pv.nasal {
			return trimSuffix(full, "ν") + "ρρ" + rest
		}
		if strings.HasSuffix(full, "σ") || strings.HasSuffix(full, "κ") {
			return full + "ρ" + rest
		}
		return full + "ρρ" + rest
	}
	if pv.nasal {
		ls := grapheme.Parse(simplex)
		head := trimSuffix(full, "ν")
		switch ls[0].Base {
		case 'π', 'β', 'φ', 'ψ', 'μ':
			return head + "μ" + simplex
		case 'κ', 'γ', 'χ', 'ξ':
			return head + "γ" + simplex
		case 'λ':
			return head + "λ" + simplex
		case 'σ', 'ζ':
			if pv.Full == "συν" {
				return head + simplex
			}
		}
	}
	return full + simplex
}

// preverbBoundary returns the letter index at which accent analysis stops
// for a fused word beginning with sf. When augmented is set the accent may
// not reach the preverb at all; otherwise it may fall on the preverb's last
// syllable but no further.
func preverbBoundary(sf surface, augmented bool) int {
	ls := grapheme.Parse(sf.text)
	if augmented {
		return len(ls)
	}
	for i := len(ls) - 1; i >= 0; i-- {
		if grapheme.IsVowel(ls[i].Base) {
			if i > 0 && isDiphthong(ls[i-1], ls[i]) {
				return i - 1
			}
			return i
		}
	}
	return 0
}
