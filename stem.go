package hoplite

import (
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// vowelClass is the stem vowel of an athematic formation.
type vowelClass uint8

const (
	classO vowelClass = iota
	classE
	classA
	classU
)

// athematicVowel classifies a long-grade stem: διδω- is o, τιθη- e,
// ἱστη- and βη- a, δεικνῡ- u.
func athematicVowel(long string) vowelClass {
	last, _, ok := lastLetter(long)
	if !ok {
		return classE
	}
	switch last.Base {
	case 'ω', 'ο':
		return classO
	case 'υ':
		return classU
	case 'α':
		return classA
	case 'η':
		bare := stripBreathing(grapheme.StripAccent(long))
		for _, s := range []string{"στη", "βη", "φη", "δρα"} {
			if hasSuffix(bare, s) {
				return classA
			}
		}
	}
	return classE
}

// longStem is the long grade of an athematic stem. The mixed aorist drops
// the κ of its singular (ἐδωκ- to ἐδω-).
func longStem(s string, kind stemKind) string {
	if kind == kindMixedAorist {
		return trimSuffix(s, "κ")
	}
	return s
}

// shortStem shortens the final vowel of a long-grade stem.
func shortStem(s string, class vowelClass) string {
	ls := grapheme.Parse(s)
	if len(ls) == 0 {
		return s
	}
	l := &ls[len(ls)-1]
	switch l.Base {
	case 'ω':
		l.Base = 'ο'
	case 'η':
		l.Base = 'ε'
		if class == classA {
			l.Base = 'α'
		}
	}
	l.Marks &^= grapheme.Macron | grapheme.Circumflex | grapheme.IotaSubscript
	return grapheme.Render(ls, grapheme.Precomposed)
}

// bareStem removes the final vowel of a stem.
func bareStem(s string) string {
	last, rest, ok := lastLetter(s)
	if !ok || !grapheme.IsVowel(last.Base) {
		return s
	}
	return rest
}

// applyGrade returns the shape of stem selected by g. Thematic stems
// ignore the grade.
func applyGrade(stem string, g grade, kind stemKind, class vowelClass) string {
	if g == gradeAsIs {
		return stem
	}
	long := longStem(stem, kind)
	switch g {
	case gradeShort:
		return shortStem(long, class)
	case gradeBare:
		return bareStem(long)
	}
	return long
}

// isAthematic reports whether the stem takes graded endings.
func (k stemKind) isAthematic() bool {
	switch k {
	case kindAthematic, kindRootAorist, kindMixedAorist, kindAoristPassive:
		return true
	}
	return false
}

// presentSimplex is the unaccented first principal part without its preverb.
func presentSimplex(v *Verb, pv *preverb) string {
	_, simplex, _ := splitPreverb(pv, v.bare(1))
	return simplex
}

// stemForms prepares the stems of one principal part spelling for the
// tense and mood of r: augment for the imperfect and pluperfect, kept
// augment in the aorist indicative, removed augment elsewhere.
func (r FormRequest) stemForms(info stemInfo, pv *preverb) []stemForm {
	v := r.Verb
	present := presentSimplex(v, pv)
	switch r.Tense {
	case Imperfect:
		return augmentedForms(pv, info.stem, false)
	case Pluperfect:
		return augmentedForms(pv, info.stem, true)
	case Aorist:
		if r.Mood == Indicative {
			return []stemForm{indicativeAoristForm(pv, info.stem, present)}
		}
		return []stemForm{deaugmentedForm(pv, info.stem, present)}
	case Future:
		if info.kind == kindFuturePassive {
			f := deaugmentedForm(pv, info.stem, present)
			return []stemForm{f.withSuffix(func(s string) string { return s + "σ" })}
		}
		return []stemForm{plainForm(pv, info.stem, false)}
	case Perfect:
		return []stemForm{plainForm(pv, info.stem, true)}
	}
	return []stemForm{plainForm(pv, info.stem, false)}
}
