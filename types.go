package hoplite

import (
	"fmt"
	"strings"
)

// Person is the grammatical person of a finite form. PersonNone marks
// non-finite requests.
type Person uint8

const (
	PersonNone Person = iota
	First
	Second
	Third
)

// Number is the grammatical number.
type Number uint8

const (
	NumberNone Number = iota
	Singular
	Dual
	Plural
)

// Tense enumerates the six tenses that have principal-part support.
type Tense uint8

const (
	Present Tense = iota
	Imperfect
	Future
	Aorist
	Perfect
	Pluperfect
)

// Voice enumerates the three Greek voices.
type Voice uint8

const (
	Active Voice = iota
	Middle
	Passive
)

// Mood enumerates the moods, infinitive and participle included.
type Mood uint8

const (
	Indicative Mood = iota
	Subjunctive
	Optative
	Imperative
	Infinitive
	Participle
)

// Gender is the gender of a participle.
type Gender uint8

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
)

// Case is the case of a participle.
type Case uint8

const (
	CaseNone Case = iota
	Nominative
	Genitive
	Dative
	Accusative
	Vocative
)

var (
	personNames = []string{"", "1st", "2nd", "3rd"}
	numberNames = []string{"", "singular", "dual", "plural"}
	tenseNames  = []string{"present", "imperfect", "future", "aorist", "perfect", "pluperfect"}
	voiceNames  = []string{"active", "middle", "passive"}
	moodNames   = []string{"indicative", "subjunctive", "optative", "imperative", "infinitive", "participle"}
	genderNames = []string{"", "masculine", "feminine", "neuter"}
	caseNames   = []string{"", "nominative", "genitive", "dative", "accusative", "vocative"}
)

// Tenses, Voices, Moods, Persons, Numbers, Genders and Cases list every
// value in paradigm order.
var (
	Tenses  = []Tense{Present, Imperfect, Future, Aorist, Perfect, Pluperfect}
	Voices  = []Voice{Active, Middle, Passive}
	Moods   = []Mood{Indicative, Subjunctive, Optative, Imperative, Infinitive, Participle}
	Persons = []Person{First, Second, Third}
	Numbers = []Number{Singular, Dual, Plural}
	Genders = []Gender{Masculine, Feminine, Neuter}
	Cases   = []Case{Nominative, Genitive, Dative, Accusative, Vocative}
)

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func (p Person) String() string { return name(personNames, int(p)) }
func (n Number) String() string { return name(numberNames, int(n)) }
func (t Tense) String() string  { return name(tenseNames, int(t)) }
func (v Voice) String() string  { return name(voiceNames, int(v)) }
func (m Mood) String() string   { return name(moodNames, int(m)) }
func (g Gender) String() string { return name(genderNames, int(g)) }
func (c Case) String() string   { return name(caseNames, int(c)) }

// IsFinite reports whether m takes person endings.
func (m Mood) IsFinite() bool {
	return m <= Imperative
}

func lookup(names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n != "" && (n == s || (len(s) >= 3 && strings.HasPrefix(n, s))) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", s)
}

// ParsePerson accepts "1", "1st", "first" and so on.
func ParsePerson(s string) (Person, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "1st", "first":
		return First, nil
	case "2", "2nd", "second":
		return Second, nil
	case "3", "3rd", "third":
		return Third, nil
	}
	return PersonNone, fmt.Errorf("unknown person %q", s)
}

// ParseNumber accepts "singular", "sg", "dual", "du", "plural", "pl".
func ParseNumber(s string) (Number, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sg", "s":
		return Singular, nil
	case "du", "d":
		return Dual, nil
	case "pl", "p":
		return Plural, nil
	}
	i, err := lookup(numberNames, s)
	return Number(i), err
}

// ParseTense parses a tense name or a prefix of at least three letters.
func ParseTense(s string) (Tense, error) {
	i, err := lookup(tenseNames, s)
	return Tense(i), err
}

// ParseVoice parses a voice name or a prefix of at least three letters.
func ParseVoice(s string) (Voice, error) {
	i, err := lookup(voiceNames, s)
	return Voice(i), err
}

// ParseMood parses a mood name or a prefix of at least three letters.
func ParseMood(s string) (Mood, error) {
	i, err := lookup(moodNames, s)
	return Mood(i), err
}

// ParseGender parses a gender name or a prefix of at least three letters.
func ParseGender(s string) (Gender, error) {
	i, err := lookup(genderNames, s)
	return Gender(i), err
}

// ParseCase parses a case name or a prefix of at least three letters.
func ParseCase(s string) (Case, error) {
	i, err := lookup(caseNames, s)
	return Case(i), err
}

// Step is one entry of a derivation trace.
type Step struct {
	// Form is the surface text produced so far.
	Form string
	// Explanation names the stage that produced Form.
	Explanation string
}

// Step labels.
const (
	StepPrincipalPart = "Principal part"
	StepRemoveEnding  = "Remove ending"
	StepRemoveAugment = "Remove augment"
	StepAddAugment    = "Add augment"
	StepAddEnding     = "Add ending"
	StepContract      = "Contract"
	StepAccent        = "Accent"
	StepIrregular     = "Irregular form"
)
