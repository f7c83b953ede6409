package hoplite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func finite(v *Verb, t Tense, vo Voice, m Mood, p Person, n Number) FormRequest {
	return NewFormRequest(v, t, vo, m, WithPerson(p), WithNumber(n))
}

func ptc(v *Verb, t Tense, vo Voice, g Gender, k Case, n Number) FormRequest {
	return NewFormRequest(v, t, vo, Participle, WithGender(g), WithCase(k), WithNumber(n))
}

func TestRegularForms(t *testing.T) {
	l := loadLexicon(t)
	lu := mustVerb(t, l, "λῡ́ω")
	tests := []struct {
		name string
		req  FormRequest
		want string
	}{
		{"first aorist", finite(lu, Aorist, Active, Indicative, First, Singular), "ἔλῡσα"},
		{"thematic present third plural", finite(lu, Present, Active, Indicative, Third, Plural), "λῡ́ουσι(ν)"},
		{"present participle", ptc(lu, Present, Active, Masculine, Nominative, Singular), "λῡ́ων"},
		{"perfect participle feminine", ptc(lu, Perfect, Active, Feminine, Nominative, Singular), "λελυκυῖα"},
		{"aorist passive infinitive", NewFormRequest(lu, Aorist, Passive, Infinitive), "λυθῆναι"},
		{"consonant perfect middle infinitive", NewFormRequest(mustVerb(t, l, "βλάπτω"), Perfect, Middle, Infinitive), "βεβλάφθαι"},
		{"contracted participle", ptc(mustVerb(t, l, "τῑμάω"), Present, Active, Masculine, Nominative, Singular), "τῑμῶν"},
		{"ε-contract third plural", finite(mustVerb(t, l, "ποιέω"), Present, Active, Indicative, Third, Plural), "ποιοῦσι(ν)"},
		{"second aorist infinitive", NewFormRequest(mustVerb(t, l, "βάλλω"), Aorist, Active, Infinitive), "βαλεῖν"},
		{"mixed aorist infinitive", NewFormRequest(mustVerb(t, l, "δίδωμι"), Aorist, Active, Infinitive), "δοῦναι"},
		{"compound imperative", finite(mustVerb(t, l, "ἀποδίδωμι"), Aorist, Active, Imperative, Second, Singular), "ἀπόδος"},
		{"second aorist of a partial deponent", finite(mustVerb(t, l, "ἔρχομαι"), Aorist, Active, Indicative, First, Singular), "ἦλθον"},
		{"root aorist", finite(mustVerb(t, l, "βαίνω"), Aorist, Active, Indicative, First, Singular), "ἔβην"},
		{"middle future", finite(mustVerb(t, l, "ἀκούω"), Future, Middle, Indicative, First, Singular), "ἀκούσομαι"},
		{"third singular optative counts final αι long", finite(lu, Aorist, Active, Optative, Third, Singular), "λῡ́σαι"},
		{"aorist infinitive counts final αι short", NewFormRequest(lu, Aorist, Active, Infinitive), "λῦσαι"},
		{"long ι of a perfect middle", finite(mustVerb(t, l, "ἀφικνέομαι"), Perfect, Middle, Indicative, First, Singular), "ἀφῖγμαι"},
		{"long ι before σ", finite(mustVerb(t, l, "ἀφικνέομαι"), Perfect, Middle, Indicative, Second, Singular), "ἀφῖξαι"},
		{"long ι before τ", finite(mustVerb(t, l, "ἀφικνέομαι"), Perfect, Middle, Indicative, Third, Singular), "ἀφῖκται"},
		{"attested imperative", finite(mustVerb(t, l, "ἔχω"), Aorist, Active, Imperative, Second, Singular), "σχές"},
		{"attested optative singular", finite(mustVerb(t, l, "ἔχω"), Aorist, Active, Optative, First, Singular), "σχοίην"},
		{"optative plural from the rules", finite(mustVerb(t, l, "ἔχω"), Aorist, Active, Optative, First, Plural), "σχοῖμεν"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Surface()
			require.NoError(t, err, tt.req.String())
			assert.Equal(t, grapheme.Normalize(tt.want), got)
		})
	}
}

func TestFormSteps(t *testing.T) {
	l := loadLexicon(t)
	r := finite(mustVerb(t, l, "λῡ́ω"), Aorist, Active, Indicative, First, Singular)

	steps, err := r.Form(false)
	require.NoError(t, err)
	want := []Step{
		{Form: "ἔλῡσα", Explanation: StepPrincipalPart},
		{Form: "ἐλῡσ", Explanation: StepRemoveEnding},
		{Form: "ἐλῡσα", Explanation: StepAddEnding},
		{Form: "ἔλῡσα", Explanation: StepAccent},
	}
	for i := range want {
		want[i].Form = grapheme.Normalize(want[i].Form)
	}
	assert.Equal(t, want, steps)

	steps, err = r.Form(true)
	require.NoError(t, err)
	last := steps[len(steps)-1]
	assert.Equal(t, StepAddEnding, last.Explanation, "decomposed mode stops before accent")
	assert.Equal(t, grapheme.Normalize("ἐ - λῡσ - α"), last.Form)
}

func TestImperfectAugmentStep(t *testing.T) {
	l := loadLexicon(t)
	steps, err := finite(mustVerb(t, l, "λῡ́ω"), Imperfect, Active, Indicative, Third, Plural).Form(false)
	require.NoError(t, err)
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = s.Explanation
	}
	assert.Contains(t, labels, StepAddAugment)
}

func TestFormErrors(t *testing.T) {
	l := loadLexicon(t)
	tests := []struct {
		name string
		req  FormRequest
		kind string
	}{
		{"first person dual", finite(mustVerb(t, l, "λῡ́ω"), Present, Active, Indicative, First, Dual), "IllegalForm"},
		{"perfect subjunctive", finite(mustVerb(t, l, "λῡ́ω"), Perfect, Active, Subjunctive, First, Singular), "IllegalForm"},
		{"blank perfect middle", finite(mustVerb(t, l, "ἐθέλω"), Perfect, Middle, Indicative, First, Singular), "BlankPrincipalPart"},
		{"active of a middle present", finite(mustVerb(t, l, "ἔρχομαι"), Present, Active, Indicative, First, Singular), "Deponent"},
		{"active of a middle future", finite(mustVerb(t, l, "ἀκούω"), Future, Active, Indicative, First, Singular), "Deponent"},
		{"passive of a middle deponent", finite(mustVerb(t, l, "μάχομαι"), Aorist, Passive, Indicative, First, Singular), "Deponent"},
		{"root aorist middle", finite(mustVerb(t, l, "βαίνω"), Aorist, Middle, Indicative, First, Singular), "InternalError"},
		{"impersonal first person", finite(mustVerb(t, l, "δεῖ"), Present, Active, Indicative, First, Singular), "BlankPrincipalPart"},
		{"irregular without fallthrough", finite(mustVerb(t, l, "εἶμι"), Future, Middle, Indicative, First, Singular), "BlankPrincipalPart"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Form(false)
			require.Error(t, err)
			assert.Equal(t, tt.kind, Kind(err), err.Error())
		})
	}
}

func TestValidateWithoutVerb(t *testing.T) {
	r := FormRequest{Tense: Present, Mood: Infinitive}
	assert.Error(t, r.Validate())
	_, err := r.Form(false)
	assert.Error(t, err)
}

func TestRequestString(t *testing.T) {
	l := loadLexicon(t)
	v := mustVerb(t, l, "λῡ́ω")
	assert.Equal(t, "1st singular aorist active indicative", finite(v, Aorist, Active, Indicative, First, Singular).String())
	assert.Equal(t, "present active participle masculine nominative singular",
		ptc(v, Present, Active, Masculine, Nominative, Singular).String())
	assert.Equal(t, "aorist passive infinitive", NewFormRequest(v, Aorist, Passive, Infinitive).String())
}

func TestExtraAlternates(t *testing.T) {
	l := loadLexicon(t)
	forms, err := finite(mustVerb(t, l, "δίδωμι"), Present, Active, Indicative, Second, Singular).Forms(false)
	require.NoError(t, err)
	assert.Contains(t, forms, grapheme.Normalize("διδοῖς"))
	assert.Greater(t, len(forms), 1)
}

func TestAttestedFormReplacesRules(t *testing.T) {
	l := loadLexicon(t)
	r := finite(mustVerb(t, l, "ἔχω"), Aorist, Active, Imperative, Second, Singular)

	steps, err := r.Form(false)
	require.NoError(t, err)
	last := steps[len(steps)-1]
	assert.Equal(t, StepAccent, last.Explanation)
	assert.Equal(t, grapheme.Normalize("σχές"), last.Form)
	assert.Equal(t, grapheme.Normalize("σχες"), steps[len(steps)-2].Form)

	forms, err := r.Forms(true)
	require.NoError(t, err)
	assert.Equal(t, []string{grapheme.Normalize("σχ - ες")}, forms)
}

// The first singular of each principal part's tense and voice rebuilds
// that principal part. Contracted stems show the contracted form instead.
func TestPrincipalPartsRoundTrip(t *testing.T) {
	l := loadLexicon(t)
	cells := [6]struct {
		tense         Tense
		voice, middle Voice
	}{
		{Present, Active, Middle},
		{Future, Active, Middle},
		{Aorist, Active, Middle},
		{Perfect, Active, Active},
		{Perfect, Middle, Middle},
		{Aorist, Passive, Passive},
	}
	for _, v := range l.Verbs() {
		if IsIrregular(v) {
			continue
		}
		for n := 1; n <= 6; n++ {
			if v.blank(n) {
				continue
			}
			c := cells[n-1]
			voice := c.voice
			if v.partEnds(n, "μαι", "μην") {
				voice = c.middle
			}
			r := finite(v, c.tense, voice, Indicative, First, Singular)
			if !IsLegalDeponent(r) {
				continue
			}
			forms, err := r.Forms(false)
			require.NoError(t, err, "%s: %s", v.Lemma(), r)
			for _, alt := range v.alternates(n) {
				info, err := stripEnding(v, n, alt, c.tense)
				require.NoError(t, err, "%s principal part %d", v.Lemma(), n)
				if info.contracted {
					continue
				}
				assert.Contains(t, forms, grapheme.Normalize(alt), "%s principal part %d", v.Lemma(), n)
			}
		}
	}
}

// Every generated cell is deduplicated and already fully accented.
func TestFormsAreUniqueAndStable(t *testing.T) {
	l := loadLexicon(t)
	for _, lemma := range []string{"λῡ́ω", "τῑμάω", "δίδωμι", "βλάπτω", "λέγω"} {
		v := mustVerb(t, l, lemma)
		for _, tense := range Tenses {
			for _, voice := range Voices {
				for _, n := range Numbers {
					for _, p := range Persons {
						r := finite(v, tense, voice, Indicative, p, n)
						forms, err := r.Forms(false)
						if err != nil {
							continue
						}
						assert.Equal(t, unique(forms), forms, r.String())
						for _, f := range forms {
							word := strings.Fields(f)[0]
							ctx := r.accentContext(accentRecessive, 0)
							assert.Equal(t, word, accentuate(word, ctx), "accenting %s again changes it", word)
						}
					}
				}
			}
		}
	}
}
