package hoplite

import (
	"fmt"
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// BlankPart is the placeholder for a principal part that does not exist.
const BlankPart = "—"

// Properties is a bitset of morphological verb properties.
type Properties uint32

const (
	ConsonantStemPerfectPi Properties = 1 << iota
	ConsonantStemPerfectBeta
	ConsonantStemPerfectPhi
	ConsonantStemPerfectMuPi
	ConsonantStemPerfectKappa
	ConsonantStemPerfectGamma
	ConsonantStemPerfectChi
	ConsonantStemPerfectSigma
	ConsonantStemPerfectLambda
	Prefixed
	ContractedFutureAlpha
	MiVerb
)

// ConsonantStem covers every consonant-stem perfect class.
const ConsonantStem = ConsonantStemPerfectPi | ConsonantStemPerfectBeta | ConsonantStemPerfectPhi |
	ConsonantStemPerfectMuPi | ConsonantStemPerfectKappa | ConsonantStemPerfectGamma |
	ConsonantStemPerfectChi | ConsonantStemPerfectSigma | ConsonantStemPerfectLambda

var propertyNames = map[string]Properties{
	"CONSONANT_STEM_PERFECT_PI":     ConsonantStemPerfectPi,
	"CONSONANT_STEM_PERFECT_BETA":   ConsonantStemPerfectBeta,
	"CONSONANT_STEM_PERFECT_PHI":    ConsonantStemPerfectPhi,
	"CONSONANT_STEM_PERFECT_MU_PI":  ConsonantStemPerfectMuPi,
	"CONSONANT_STEM_PERFECT_KAPPA":  ConsonantStemPerfectKappa,
	"CONSONANT_STEM_PERFECT_GAMMA":  ConsonantStemPerfectGamma,
	"CONSONANT_STEM_PERFECT_CHI":    ConsonantStemPerfectChi,
	"CONSONANT_STEM_PERFECT_SIGMA":  ConsonantStemPerfectSigma,
	"CONSONANT_STEM_PERFECT_LAMBDA": ConsonantStemPerfectLambda,
	"PREFIXED":                      Prefixed,
	"CONTRACTED_FUTURE_ALPHA":       ContractedFutureAlpha,
	"MI_VERB":                       MiVerb,
	"NONE":                          0,
}

// ParseProperties parses space- or pipe-separated flag names.
func ParseProperties(s string) (Properties, error) {
	var p Properties
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '|' || r == ',' }) {
		v, ok := propertyNames[strings.ToUpper(f)]
		if !ok {
			return 0, fmt.Errorf("unknown verb property %q", f)
		}
		p |= v
	}
	return p, nil
}

// Has reports whether every bit of q is set.
func (p Properties) Has(q Properties) bool {
	return p&q == q && q != 0
}

// Any reports whether some bit of q is set.
func (p Properties) Any(q Properties) bool {
	return p&q != 0
}

// Verb is an immutable verb record. It is safe for concurrent use.
type Verb struct {
	// ID is the ordinal identifier of the verb.
	ID int
	// Unit is the pedagogical unit the verb is introduced in.
	Unit int
	// Properties holds the morphological flags.
	Properties Properties
	parts      [6]string
}

// NewVerb builds a verb from a comma-separated list of principal parts.
func NewVerb(id int, parts string, props Properties, unit int) (*Verb, error) {
	fields := strings.Split(parts, ",")
	if len(fields) != 6 {
		return nil, fmt.Errorf("%q has %d parts: %w", parts, len(fields), ErrPrincipalPartCount)
	}
	v := &Verb{ID: id, Unit: unit, Properties: props}
	for i, f := range fields {
		f = grapheme.Normalize(strings.TrimSpace(f))
		if f == "" || f == "-" || f == "–" {
			f = BlankPart
		}
		v.parts[i] = f
	}
	return v, nil
}

// PrincipalPart returns principal part n (1-based) as stored.
func (v *Verb) PrincipalPart(n int) string {
	if n < 1 || n > 6 {
		return ""
	}
	return v.parts[n-1]
}

// PrincipalParts returns a copy of the six principal parts.
func (v *Verb) PrincipalParts() []string {
	out := make([]string, 6)
	copy(out, v.parts[:])
	return out
}

// Lemma is the first principal part.
func (v *Verb) Lemma() string {
	return v.parts[0]
}

// String joins the principal parts the way data records do.
func (v *Verb) String() string {
	return strings.Join(v.parts[:], ", ")
}

// alternates splits principal part n into its "/"-separated spellings.
func (v *Verb) alternates(n int) []string {
	var out []string
	for _, a := range strings.Split(v.PrincipalPart(n), "/") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// bare returns the first spelling of principal part n without accents.
func (v *Verb) bare(n int) string {
	alts := v.alternates(n)
	if len(alts) == 0 {
		return ""
	}
	return grapheme.StripAccent(alts[0])
}

func (v *Verb) blank(n int) bool {
	return v.PrincipalPart(n) == BlankPart
}

func (v *Verb) partEnds(n int, suffixes ...string) bool {
	b := v.bare(n)
	for _, s := range suffixes {
		if hasSuffix(b, s) {
			return true
		}
	}
	return false
}

// isKnowVerb reports whether the lemma belongs to the οἶδα family, whose
// perfect has present meaning. The simplex carries its breathing on the
// suffix, so breathings are dropped before matching.
func (v *Verb) isKnowVerb() bool {
	return hasSuffix(stripBreathing(v.bare(1)), "οιδα")
}

// DeponentType classifies how a verb lacks active forms.
type DeponentType int

const (
	NotDeponent DeponentType = iota
	MiddleDeponent
	PassiveDeponent
	PartialDeponent
	// GignomaiDeponent is middle in every part except an active perfect (γέγονα).
	GignomaiDeponent
	// MiddleDeponentWithPassive is a middle deponent that also has a sixth
	// principal part with passive meaning (ἡγέομαι, ἡγήθην).
	MiddleDeponentWithPassive
)

func (d DeponentType) String() string {
	switch d {
	case MiddleDeponent:
		return "middle deponent"
	case PassiveDeponent:
		return "passive deponent"
	case PartialDeponent:
		return "partial deponent"
	case GignomaiDeponent:
		return "gignomai deponent"
	case MiddleDeponentWithPassive:
		return "middle deponent with passive"
	}
	return "not deponent"
}

// DeponentType derives the deponent class from principal parts 1-3 and 6.
// More specific patterns are checked first.
func (v *Verb) DeponentType() DeponentType {
	pp1Mid := v.partEnds(1, "μαι")
	pp2Mid := v.partEnds(2, "μαι") || v.blank(2)
	pp3Mid := v.partEnds(3, "μην")
	switch {
	case hasSuffix(v.bare(1), "γιγνομαι"):
		return GignomaiDeponent
	case pp1Mid && pp2Mid && pp3Mid && v.blank(4) && v.partEnds(6, "ην"):
		return MiddleDeponentWithPassive
	case pp1Mid && pp2Mid && pp3Mid && v.blank(6):
		return MiddleDeponent
	case pp1Mid && pp2Mid && v.blank(3) && v.partEnds(6, "ην"):
		return PassiveDeponent
	case pp1Mid:
		return PartialDeponent
	case v.partEnds(2, "μαι"):
		return PartialDeponent
	}
	return NotDeponent
}
