package hoplite

import (
	"errors"
	"fmt"
	"strings"
)

// FormRequest names one paradigm cell of a verb. Categories that do not
// apply to the mood are left at their None value.
type FormRequest struct {
	Verb   *Verb
	Person Person
	Number Number
	Tense  Tense
	Voice  Voice
	Mood   Mood
	Gender Gender
	Case   Case
}

// Option sets an optional category of a FormRequest.
type Option func(*FormRequest)

func WithPerson(p Person) Option { return func(r *FormRequest) { r.Person = p } }
func WithNumber(n Number) Option { return func(r *FormRequest) { r.Number = n } }
func WithGender(g Gender) Option { return func(r *FormRequest) { r.Gender = g } }
func WithCase(c Case) Option     { return func(r *FormRequest) { r.Case = c } }

// NewFormRequest builds a request for v.
func NewFormRequest(v *Verb, t Tense, vo Voice, m Mood, opts ...Option) FormRequest {
	r := FormRequest{Verb: v, Tense: t, Voice: vo, Mood: m}
	for _, o := range opts {
		o(&r)
	}
	return r
}

// String describes the cell, e.g. "1st singular aorist active indicative".
func (r FormRequest) String() string {
	var parts []string
	if r.Person != PersonNone {
		parts = append(parts, r.Person.String())
	}
	if r.Number != NumberNone && r.Mood != Participle {
		parts = append(parts, r.Number.String())
	}
	parts = append(parts, r.Tense.String(), r.Voice.String(), r.Mood.String())
	if r.Mood == Participle {
		for _, s := range []fmt.Stringer{r.Gender, r.Case, r.Number} {
			if s.String() != "" {
				parts = append(parts, s.String())
			}
		}
	}
	return strings.Join(parts, " ")
}

// Validate reports whether the request can be sent to Form.
func (r FormRequest) Validate() error {
	if r.Verb == nil {
		return errors.New("form request has no verb")
	}
	return r.legality()
}

// Form derives the cell. The returned steps trace the derivation and the
// last step holds the answer, alternates joined by AlternateSeparator.
// With decompose set, morphemes are kept apart and no accent or
// contraction is applied.
func (r FormRequest) Form(decompose bool) ([]Step, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := r.deponency(); err != nil {
		return nil, err
	}
	steps, handled, err := r.irregularForm(decompose)
	if handled || err != nil {
		return steps, err
	}
	return r.regularForm(decompose)
}

// Surface returns the final accented form.
func (r FormRequest) Surface() (string, error) {
	steps, err := r.Form(false)
	if err != nil {
		return "", err
	}
	return steps[len(steps)-1].Form, nil
}

// contractedPresent reports whether the first principal part is an ε-, α-
// or ο-contract verb.
func (r FormRequest) contractedPresent() bool {
	alts := r.Verb.alternates(1)
	if len(alts) == 0 {
		return false
	}
	info, err := stripEnding(r.Verb, 1, alts[0], Present)
	return err == nil && info.contracted
}

// Forms returns the alternates of the final form separately.
func (r FormRequest) Forms(decompose bool) ([]string, error) {
	steps, err := r.Form(decompose)
	if err != nil {
		return nil, err
	}
	return strings.Split(steps[len(steps)-1].Form, AlternateSeparator), nil
}
