package hoplite

import (
	"fmt"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// IsLegalForm reports whether r names a well-formed paradigm slot. The result
// depends only on the categories of r, apart from the perfect-tense exception
// of the οἶδα family.
func IsLegalForm(r FormRequest) bool {
	return r.legality() == nil
}

func (r FormRequest) legality() error {
	know := r.Verb != nil && r.Verb.isKnowVerb()
	illegal := func(why string) error {
		return fmt.Errorf("%s: %s: %w", r, why, ErrIllegalForm)
	}
	switch {
	case r.Person == First && r.Number == Dual:
		return illegal("no first person dual")
	case r.Person == First && r.Mood == Imperative:
		return illegal("no first person imperative")
	case (r.Mood == Subjunctive || r.Mood == Imperative) &&
		r.Tense != Present && r.Tense != Aorist && !(know && r.Tense == Perfect):
		return illegal("mood only in present and aorist")
	case r.Mood == Optative &&
		r.Tense != Present && r.Tense != Aorist && r.Tense != Future && !(know && r.Tense == Perfect):
		return illegal("optative only in present, future and aorist")
	case r.Mood == Infinitive:
		if r.Person != PersonNone || r.Number != NumberNone || r.Gender != GenderNone || r.Case != CaseNone {
			return illegal("infinitive takes no person, number, gender or case")
		}
	case r.Mood == Participle:
		if r.Person != PersonNone || r.Gender == GenderNone || r.Number == NumberNone || r.Case == CaseNone {
			return illegal("participle needs gender, number and case and no person")
		}
	default:
		if r.Person == PersonNone || r.Number == NumberNone || r.Gender != GenderNone || r.Case != CaseNone {
			return illegal("finite form needs person and number only")
		}
	}
	if !r.Mood.IsFinite() && (r.Tense == Imperfect || r.Tense == Pluperfect) {
		return illegal("no non-finite forms in past tenses")
	}
	if know && (r.Tense == Present || r.Tense == Imperfect || r.Tense == Aorist) {
		return illegal("perfect with present meaning")
	}
	return nil
}

// IsLegalDeponent reports whether the verb's deponency allows the voice
// of r.
func IsLegalDeponent(r FormRequest) bool {
	return r.deponency() == nil
}

func (r FormRequest) deponency() error {
	v := r.Verb
	dep := v.DeponentType()
	deponent := func(why string) error {
		return fmt.Errorf("%s %s: %s: %w", v.Lemma(), r, why, ErrDeponent)
	}
	switch r.Voice {
	case Active:
		switch dep {
		case MiddleDeponent, PassiveDeponent, MiddleDeponentWithPassive:
			if !(r.Tense == Aorist && v.hasRootAorist()) {
				return deponent("no active voice")
			}
		case GignomaiDeponent:
			if r.Tense != Perfect && r.Tense != Pluperfect {
				return deponent("active only in the perfect")
			}
		default:
			if n := principalPartSlot(v, r.Tense, r.Voice); !v.blank(n) && v.partEnds(n, "μαι", "μην") {
				return deponent("principal part is middle in form")
			}
		}
	case Middle:
		if dep == PartialDeponent && v.partEnds(1, "μαι") {
			if n := principalPartSlot(v, r.Tense, r.Voice); n != 1 && !v.blank(n) && !v.partEnds(n, "μαι", "μην") {
				return deponent("principal part is active in form")
			}
		}
	case Passive:
		switch {
		case dep == MiddleDeponent || dep == GignomaiDeponent:
			return deponent("no passive voice")
		case r.Tense == Future && dep == PassiveDeponent:
			return deponent("future passive of a passive deponent")
		case (r.Tense == Present || r.Tense == Imperfect) && v.partEnds(1, "μαι"):
			return deponent("present stem is already middle")
		case (r.Tense == Perfect || r.Tense == Pluperfect) &&
			(dep == PassiveDeponent || dep == MiddleDeponentWithPassive):
			return deponent("perfect is middle in meaning")
		}
	}
	return nil
}

// hasRootAorist reports whether the third principal part has an active root
// aorist spelling (ἔβην, ἔγνων).
func (v *Verb) hasRootAorist() bool {
	for _, a := range v.alternates(3) {
		if isRootAorist(grapheme.StripAccent(a)) {
			return true
		}
	}
	return false
}
