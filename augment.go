package hoplite

import (
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

type prefixRule struct {
	from string
	to   []string
}

// augmentExceptions are simplex stems whose past-tense augment is not
// predictable from the initial letter. Checked in order.
var augmentExceptions = []prefixRule{
	{"ἐχ", []string{"εἰχ"}},
	{"ἐθιζ", []string{"εἰθιζ"}},
	{"ἐργαζ", []string{"εἰργαζ", "ἠργαζ"}},
	{"ἐα", []string{"εἰα"}},
	{"ἑπ", []string{"εἱπ"}},
	{"ἑλκ", []string{"εἱλκ"}},
	{"ἑρπ", []string{"εἱρπ"}},
	{"ἑστια", []string{"εἱστια"}},
	{"ἑστηκ", []string{"ἑστηκ", "εἱστηκ"}},
	{"ἑστα", []string{"ἑστα", "εἱστα"}},
	{"ὁρα", []string{"ἑωρα"}},
	{"ἀνοιγ", []string{"ἀνεῳγ"}},
	{"βουλ", []string{"ἐβουλ", "ἠβουλ"}},
	{"δυνα", []string{"ἐδυνα", "ἠδυνα"}},
	{"μελλ", []string{"ἐμελλ", "ἠμελλ"}},
}

// deaugmentExceptions map augmented aorist stems back to their unaugmented
// shape. Checked before the general rule.
var deaugmentExceptions = []prefixRule{
	{"εἱλ", []string{"ἑλ"}},
	{"εἰδ", []string{"ἰδ"}},
	{"εἰπ", []string{"εἰπ"}},
	{"εἰρ", []string{"εἰρ"}},
	{"ἠνεγκ", []string{"ἐνεγκ"}},
	{"ηὑρ", []string{"εὑρ"}},
	{"εὑρ", []string{"εὑρ"}},
	{"ὠφθ", []string{"ὀφθ"}},
	{"ἑωρα", []string{"ὁρα"}},
	{"ἐῤῥ", []string{"ῥ"}},
}

func applyPrefixRules(rules []prefixRule, stem string) ([]string, bool) {
	for _, r := range rules {
		if !hasPrefix(stem, r.from) {
			continue
		}
		rest := trimPrefix(stem, r.from)
		out := make([]string, len(r.to))
		for i, to := range r.to {
			out[i] = grapheme.Normalize(to) + rest
		}
		return out, true
	}
	return nil, false
}

// augment adds the past-tense augment to a simplex stem. Pluperfect stems
// that already begin with ε (ἐγνωκ-, εἰληφ-) take no further augment.
func augment(stem string, pluperfect bool) []string {
	if out, ok := applyPrefixRules(augmentExceptions, stem); ok {
		return out
	}
	ls := grapheme.Parse(stem)
	if len(ls) == 0 {
		return []string{stem}
	}
	if pluperfect && ls[0].Base == 'ε' {
		return []string{stem}
	}
	if !grapheme.IsVowel(ls[0].Base) {
		if ls[0].Base == 'ρ' {
			ls[0].Marks &^= grapheme.Breathings
			return []string{grapheme.Normalize("ἐρ") + grapheme.Render(ls, grapheme.Precomposed)}
		}
		return []string{grapheme.Normalize("ἐ") + stem}
	}
	return []string{lengthenInitial(ls)}
}

// lengthenInitial applies the temporal augment to a vowel-initial word.
func lengthenInitial(ls []grapheme.Letter) string {
	breathing := breathingOf(grapheme.Render(ls, grapheme.Precomposed))
	out := make([]grapheme.Letter, 0, len(ls))
	rest := ls[1:]
	first := ls[0]
	first.Marks &^= grapheme.Breathings | grapheme.Macron
	if len(ls) > 1 && isDiphthong(ls[0], ls[1]) {
		rest = ls[2:]
		switch string([]rune{ls[0].Base, ls[1].Base}) {
		case "αι", "ει":
			out = append(out, grapheme.Letter{Base: 'η', Marks: grapheme.IotaSubscript})
		case "οι":
			out = append(out, grapheme.Letter{Base: 'ω', Marks: grapheme.IotaSubscript})
		case "αυ", "ευ":
			out = append(out, grapheme.Letter{Base: 'η'}, grapheme.Letter{Base: 'υ'})
		default:
			out = append(out, first, grapheme.Letter{Base: ls[1].Base})
		}
	} else {
		switch first.Base {
		case 'α', 'ε':
			first.Base = 'η'
		case 'ο':
			first.Base = 'ω'
		case 'ι', 'υ':
			first.Marks |= grapheme.Macron
		}
		out = append(out, first)
	}
	out = append(out, rest...)
	return withBreathing(grapheme.Render(out, grapheme.Precomposed), breathing)
}

// deaugment removes the augment from an aorist simplex stem. present is the
// simplex present stem, used to undo a temporal augment.
func deaugment(stem, present string) string {
	if out, ok := applyPrefixRules(deaugmentExceptions, stem); ok {
		return out[0]
	}
	ls := grapheme.Parse(stem)
	if len(ls) < 2 {
		return stem
	}
	if ls[0].Base == 'ε' && ls[0].Has(grapheme.Smooth) && !grapheme.IsVowel(ls[1].Base) {
		if len(ls) > 2 && ls[1].Base == 'ρ' && ls[2].Base == 'ρ' {
			ls[2].Marks = grapheme.Rough
			return grapheme.Render(ls[2:], grapheme.Precomposed)
		}
		return grapheme.Render(ls[1:], grapheme.Precomposed)
	}
	if !grapheme.IsVowel(ls[0].Base) || !startsWithVowel(present) {
		return stem
	}
	initial := initialVowels(present)
	lengthened := grapheme.StripAccent(augment(initial, false)[0])
	if out, ok := replacePrefix(stem, lengthened, grapheme.StripAccent(initial)); ok {
		return out
	}
	return stem
}

// initialVowels returns the leading vowel or diphthong of s.
func initialVowels(s string) string {
	ls := grapheme.Parse(s)
	n := 1
	if len(ls) > 1 && isDiphthong(ls[0], ls[1]) {
		n = 2
	}
	head, _ := firstLetters(s, n)
	return head
}

// stemForm is a stem ready for its ending, in fused and decomposed views.
type stemForm struct {
	// fused is the stem as written, preverb and augment included.
	fused string
	// preverb is the full preverb shown in decomposed forms.
	preverb string
	// augment is a syllabic augment shown as its own morpheme.
	augment string
	// body is the simplex stem shown in decomposed forms.
	body string
	// boundary is the first letter index the accent may reach.
	boundary int
}

func (s stemForm) decomposed(ending string) string {
	return joinMorphemes(s.preverb, s.augment, s.body, ending)
}

// withSuffix applies a stem change to both views.
func (s stemForm) withSuffix(f func(string) string) stemForm {
	s.fused, s.body = f(s.fused), f(s.body)
	return s
}

// plainForm wraps an unaugmented stem.
func plainForm(pv *preverb, stem string, augmented bool) stemForm {
	sf, simplex, ok := splitPreverb(pv, stem)
	form := stemForm{fused: stem, body: simplex}
	if ok {
		form.preverb = grapheme.Normalize(sf.pv.Full)
		form.boundary = preverbBoundary(sf, augmented)
	}
	return form
}

// augmentedForms adds the augment to a present or perfect stem.
func augmentedForms(pv *preverb, stem string, pluperfect bool) []stemForm {
	sf, simplex, ok := splitPreverb(pv, stem)
	var out []stemForm
	for _, a := range augment(simplex, pluperfect) {
		form := stemForm{fused: a, body: a}
		if syllabic, ok := replacePrefix(a, "ἐ", ""); ok && sameStem(syllabic, simplex) {
			form.augment, form.body = grapheme.Normalize("ἐ"), simplex
		}
		if ok {
			form.fused = joinPreverb(sf.pv, a)
			form.preverb = grapheme.Normalize(sf.pv.Full)
			if fsf, _, found := matchSurface(sf.pv, form.fused); found {
				form.boundary = preverbBoundary(fsf, true)
			}
		}
		out = append(out, form)
	}
	return out
}

// sameStem compares a stem after syllabic augment removal with the original,
// allowing for the doubled ρ.
func sameStem(afterAugment, simplex string) bool {
	if afterAugment == simplex {
		return true
	}
	if rest, ok := replacePrefix(afterAugment, "ρρ", "ῥ"); ok {
		return rest == simplex
	}
	return false
}

// indicativeAoristForm keeps the augment of an aorist stem and exposes it
// in the decomposed view.
func indicativeAoristForm(pv *preverb, stem, present string) stemForm {
	sf, simplex, ok := splitPreverb(pv, stem)
	form := stemForm{fused: stem, body: simplex}
	if ok {
		form.preverb = grapheme.Normalize(sf.pv.Full)
		form.boundary = preverbBoundary(sf, true)
	}
	bare := deaugment(simplex, present)
	if hasPrefix(simplex, "ἐ") && bare != simplex && !startsWithVowel(bare) {
		form.augment, form.body = grapheme.Normalize("ἐ"), bare
	}
	return form
}

// deaugmentedForm strips the augment of an aorist stem for the
// non-indicative moods and the future passive.
func deaugmentedForm(pv *preverb, stem, present string) stemForm {
	sf, simplex, ok := splitPreverb(pv, stem)
	bare := deaugment(simplex, present)
	if !ok {
		return stemForm{fused: bare, body: bare}
	}
	fused := joinPreverb(sf.pv, bare)
	form := stemForm{fused: fused, preverb: grapheme.Normalize(sf.pv.Full), body: bare}
	if fsf, _, found := matchSurface(sf.pv, fused); found {
		form.boundary = preverbBoundary(fsf, false)
	}
	return form
}
