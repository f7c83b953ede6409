package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLegalForm(t *testing.T) {
	l := loadLexicon(t)
	lu := mustVerb(t, l, "λῡ́ω")
	oida := mustVerb(t, l, "οἶδα")

	tests := []struct {
		name string
		req  FormRequest
		want bool
	}{
		{"present indicative", finite(lu, Present, Active, Indicative, First, Singular), true},
		{"first person dual", finite(lu, Present, Active, Indicative, First, Dual), false},
		{"first person imperative", finite(lu, Present, Active, Imperative, First, Singular), false},
		{"second person imperative", finite(lu, Aorist, Active, Imperative, Second, Singular), true},
		{"perfect subjunctive", finite(lu, Perfect, Active, Subjunctive, Third, Singular), false},
		{"perfect subjunctive of οἶδα", finite(oida, Perfect, Active, Subjunctive, Third, Singular), true},
		{"future optative", finite(lu, Future, Active, Optative, Third, Singular), true},
		{"imperfect optative", finite(lu, Imperfect, Active, Optative, Third, Singular), false},
		{"future imperative", finite(lu, Future, Active, Imperative, Second, Singular), false},
		{"infinitive", NewFormRequest(lu, Present, Active, Infinitive), true},
		{"infinitive with person", NewFormRequest(lu, Present, Active, Infinitive, WithPerson(First)), false},
		{"imperfect infinitive", NewFormRequest(lu, Imperfect, Active, Infinitive), false},
		{"participle", ptc(lu, Aorist, Passive, Feminine, Dative, Plural), true},
		{"participle without case", NewFormRequest(lu, Present, Active, Participle, WithGender(Masculine), WithNumber(Singular)), false},
		{"participle with person", NewFormRequest(lu, Present, Active, Participle, WithPerson(Third),
			WithGender(Masculine), WithNumber(Singular), WithCase(Nominative)), false},
		{"pluperfect participle", ptc(lu, Pluperfect, Active, Masculine, Nominative, Singular), false},
		{"finite without number", NewFormRequest(lu, Present, Active, Indicative, WithPerson(First)), false},
		{"finite with gender", finite(lu, Present, Active, Indicative, Third, Singular).withGender(Neuter), false},
		{"present of οἶδα", finite(oida, Present, Active, Indicative, First, Singular), false},
		{"aorist of οἶδα", finite(oida, Aorist, Active, Indicative, First, Singular), false},
		{"pluperfect of οἶδα", finite(oida, Pluperfect, Active, Indicative, First, Singular), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalForm(tt.req), tt.req.String())
		})
	}
}

func (r FormRequest) withGender(g Gender) FormRequest {
	r.Gender = g
	return r
}

func TestIsLegalDeponent(t *testing.T) {
	l := loadLexicon(t)
	tests := []struct {
		name string
		req  FormRequest
		want bool
	}{
		{"active of a regular verb", finite(mustVerb(t, l, "λῡ́ω"), Present, Active, Indicative, First, Singular), true},
		{"middle deponent active", finite(mustVerb(t, l, "μάχομαι"), Present, Active, Indicative, First, Singular), false},
		{"middle deponent middle", finite(mustVerb(t, l, "μάχομαι"), Aorist, Middle, Indicative, First, Singular), true},
		{"middle deponent passive", finite(mustVerb(t, l, "μάχομαι"), Aorist, Passive, Indicative, First, Singular), false},
		{"passive deponent future passive", finite(mustVerb(t, l, "βούλομαι"), Future, Passive, Indicative, First, Singular), false},
		{"passive deponent aorist passive", finite(mustVerb(t, l, "βούλομαι"), Aorist, Passive, Indicative, First, Singular), true},
		{"passive deponent perfect passive", finite(mustVerb(t, l, "βούλομαι"), Perfect, Passive, Indicative, First, Singular), false},
		{"present passive of a middle present", finite(mustVerb(t, l, "ἡγέομαι"), Present, Passive, Indicative, First, Singular), false},
		{"γίγνομαι perfect active", finite(mustVerb(t, l, "γίγνομαι"), Perfect, Active, Indicative, First, Singular), true},
		{"γίγνομαι present active", finite(mustVerb(t, l, "γίγνομαι"), Present, Active, Indicative, First, Singular), false},
		{"γίγνομαι passive", finite(mustVerb(t, l, "γίγνομαι"), Aorist, Passive, Indicative, First, Singular), false},
		{"partial deponent active aorist", finite(mustVerb(t, l, "ἔρχομαι"), Aorist, Active, Indicative, First, Singular), true},
		{"partial deponent active present", finite(mustVerb(t, l, "ἔρχομαι"), Present, Active, Indicative, First, Singular), false},
		{"partial deponent middle aorist", finite(mustVerb(t, l, "ἔρχομαι"), Aorist, Middle, Indicative, First, Singular), false},
		{"middle future of an active present", finite(mustVerb(t, l, "ἀκούω"), Future, Active, Indicative, First, Singular), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLegalDeponent(tt.req), tt.req.String())
		})
	}
}
