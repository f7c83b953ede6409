package hoplite

import (
	"fmt"
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// cellKey is a tense, voice and mood column of a literal paradigm.
type cellKey struct {
	tense Tense
	voice Voice
	mood  Mood
}

// participleStem generates an irregular participle with the regular
// participle endings.
type participleStem struct {
	stem      string
	class     participleClass
	rule      accentRule
	breathing grapheme.Mark
}

// irregularVerb is a literal paradigm. Cells hold "/"-separated
// alternates; an alternate may carry its decomposed form after "|".
type irregularVerb struct {
	finite     map[cellKey][9]string
	infinitive map[cellKey]string
	participle map[cellKey]participleStem
	// neuterParticiple holds the only participle of impersonal verbs.
	neuterParticiple map[Tense]string
	// regular lists tenses that fall through to the rules when the table
	// has no entry.
	regular    map[Tense]bool
	impersonal bool
	// derive rewrites every form of the verb this one is built on.
	derive func(form, decomposed string, c cellKey) (string, string)
}

func act(t Tense, m Mood) cellKey { return cellKey{t, Active, m} }
func mid(t Tense, m Mood) cellKey { return cellKey{t, Middle, m} }

var (
	eimi = irregularVerb{
		finite: map[cellKey][9]string{
			act(Present, Indicative):   {"εἰμί", "εἶ", "ἐστί(ν)", "", "ἐστόν", "ἐστόν", "ἐσμέν", "ἐστέ", "εἰσί(ν)"},
			act(Imperfect, Indicative): {"ἦ / ἦν", "ἦσθα", "ἦν", "", "ἦστον / ἦτον", "ἤστην / ἤτην", "ἦμεν", "ἦστε / ἦτε", "ἦσαν"},
			act(Present, Subjunctive):  {"ὦ", "ᾖς", "ᾖ", "", "ἦτον", "ἦτον", "ὦμεν", "ἦτε", "ὦσι(ν)"},
			act(Present, Optative):     {"εἴην", "εἴης", "εἴη", "", "εἶτον / εἴητον", "εἴτην / εἰήτην", "εἶμεν / εἴημεν", "εἶτε / εἴητε", "εἶεν / εἴησαν"},
			act(Present, Imperative):   {"", "ἴσθι", "ἔστω", "", "ἔστον", "ἔστων", "", "ἔστε", "ἔστων / ὄντων"},
			mid(Future, Indicative):    {"", "", "ἔσται"},
		},
		infinitive: map[cellKey]string{act(Present, Infinitive): "εἶναι"},
		participle: map[cellKey]participleStem{
			act(Present, Participle): {stem: "", class: thematicParticiple, rule: accentParticipleUltima, breathing: grapheme.Smooth},
		},
		regular: map[Tense]bool{Future: true},
	}

	eimiGo = irregularVerb{
		finite: map[cellKey][9]string{
			act(Present, Indicative):   {"εἶμι", "εἶ", "εἶσι(ν)", "", "ἴτον", "ἴτον", "ἴμεν", "ἴτε", "ἴᾱσι(ν)"},
			act(Imperfect, Indicative): {"ᾖα / ᾔειν", "ᾔεισθα / ᾔεις", "ᾔει(ν)", "", "ᾖτον", "ᾔτην", "ᾖμεν", "ᾖτε", "ᾖσαν / ᾔεσαν"},
			act(Present, Subjunctive):  {"ἴω", "ἴῃς", "ἴῃ", "", "ἴητον", "ἴητον", "ἴωμεν", "ἴητε", "ἴωσι(ν)"},
			act(Present, Optative):     {"ἴοιμι / ἰοίην", "ἴοις", "ἴοι", "", "ἴοιτον", "ἰοίτην", "ἴοιμεν", "ἴοιτε", "ἴοιεν"},
			act(Present, Imperative):   {"", "ἴθι", "ἴτω", "", "ἴτον", "ἴτων", "", "ἴτε", "ἰόντων"},
		},
		infinitive: map[cellKey]string{act(Present, Infinitive): "ἰέναι"},
		participle: map[cellKey]participleStem{
			act(Present, Participle): {stem: "ἰ", class: thematicParticiple, rule: accentParticipleUltima},
		},
	}

	oida = irregularVerb{
		finite: map[cellKey][9]string{
			act(Perfect, Indicative): {"οἶδα", "οἶσθα", "οἶδε(ν)", "", "ἴστον", "ἴστον", "ἴσμεν", "ἴστε", "ἴσᾱσι(ν)"},
			act(Pluperfect, Indicative): {"ᾔδη / ᾔδειν", "ᾔδησθα / ᾔδεις", "ᾔδει(ν)", "", "ᾖστον", "ᾔστην",
				"ᾖσμεν / ᾔδεμεν", "ᾖστε / ᾔδετε", "ᾖσαν / ᾔδεσαν"},
			act(Perfect, Subjunctive): {"εἰδῶ", "εἰδῇς", "εἰδῇ", "", "εἰδῆτον", "εἰδῆτον", "εἰδῶμεν", "εἰδῆτε", "εἰδῶσι(ν)"},
			act(Perfect, Optative): {"εἰδείην", "εἰδείης", "εἰδείη", "", "εἰδεῖτον / εἰδείητον", "εἰδείτην / εἰδειήτην",
				"εἰδεῖμεν / εἰδείημεν", "εἰδεῖτε / εἰδείητε", "εἰδεῖεν / εἰδείησαν"},
			act(Perfect, Imperative): {"", "ἴσθι", "ἴστω", "", "ἴστον", "ἴστων", "", "ἴστε", "ἴστων"},
		},
		infinitive: map[cellKey]string{act(Perfect, Infinitive): "εἰδέναι"},
		participle: map[cellKey]participleStem{
			act(Perfect, Participle): {stem: "εἰδ", class: perfectActiveParticiple, rule: accentParticipleUltima},
		},
		regular: map[Tense]bool{Future: true},
	}

	phemi = irregularVerb{
		finite: map[cellKey][9]string{
			act(Present, Indicative):   {"φημί", "φῄς", "φησί(ν)", "", "φατόν", "φατόν", "φαμέν", "φατέ", "φᾱσί(ν)"},
			act(Imperfect, Indicative): {"ἔφην", "ἔφησθα / ἔφης", "ἔφη", "", "ἔφατον", "ἐφάτην", "ἔφαμεν", "ἔφατε", "ἔφασαν"},
			act(Present, Subjunctive):  {"φῶ", "φῇς", "φῇ", "", "φῆτον", "φῆτον", "φῶμεν", "φῆτε", "φῶσι(ν)"},
			act(Present, Optative):     {"φαίην", "φαίης", "φαίη", "", "φαῖτον / φαίητον", "φαίτην / φαιήτην", "φαῖμεν / φαίημεν", "φαῖτε / φαίητε", "φαῖεν / φαίησαν"},
			act(Present, Imperative):   {"", "φάθι / φαθί", "φάτω", "", "φάτον", "φάτων", "", "φάτε", "φάντων"},
		},
		infinitive: map[cellKey]string{act(Present, Infinitive): "φάναι"},
		participle: map[cellKey]participleStem{
			act(Present, Participle): {stem: "φ", class: aParticiple, rule: accentParticipleUltima},
		},
		regular: map[Tense]bool{Future: true, Aorist: true},
	}

	keimai = irregularVerb{
		finite: map[cellKey][9]string{
			mid(Present, Indicative):   {"κεῖμαι", "κεῖσαι", "κεῖται", "", "κεῖσθον", "κεῖσθον", "κείμεθα", "κεῖσθε", "κεῖνται"},
			mid(Imperfect, Indicative): {"ἐκείμην", "ἔκεισο", "ἔκειτο", "", "ἔκεισθον", "ἐκείσθην", "ἐκείμεθα", "ἔκεισθε", "ἔκειντο"},
			mid(Present, Subjunctive):  {"κέωμαι", "κέῃ", "κέηται", "", "κέησθον", "κέησθον", "κεώμεθα", "κέησθε", "κέωνται"},
			mid(Present, Optative):     {"κεοίμην", "κέοιο", "κέοιτο", "", "κέοισθον", "κεοίσθην", "κεοίμεθα", "κέοισθε", "κέοιντο"},
			mid(Present, Imperative):   {"", "κεῖσο", "κείσθω", "", "κεῖσθον", "κείσθων", "", "κεῖσθε", "κείσθων"},
		},
		infinitive: map[cellKey]string{mid(Present, Infinitive): "κεῖσθαι"},
		participle: map[cellKey]participleStem{
			mid(Present, Participle): {stem: "κει", class: middleParticiple, rule: accentRecessive},
		},
		regular: map[Tense]bool{Future: true},
	}

	dei = impersonal(
		map[cellKey]string{
			act(Present, Indicative): "δεῖ", act(Imperfect, Indicative): "ἔδει", act(Future, Indicative): "δεήσει",
			act(Aorist, Indicative): "ἐδέησε(ν)", act(Present, Subjunctive): "δέῃ", act(Present, Optative): "δέοι",
			act(Future, Optative): "δεήσοι", act(Aorist, Subjunctive): "δεήσῃ", act(Aorist, Optative): "δεήσαι",
			act(Present, Infinitive): "δεῖν", act(Future, Infinitive): "δεήσειν", act(Aorist, Infinitive): "δεῆσαι",
		},
		map[Tense]string{Present: "δέον", Future: "δεῆσον", Aorist: "δεῆσαν"},
	)

	chre = impersonal(
		map[cellKey]string{
			act(Present, Indicative): "χρή", act(Imperfect, Indicative): "χρῆν / ἐχρῆν", act(Future, Indicative): "χρῆσται",
			act(Present, Subjunctive): "χρῇ", act(Present, Optative): "χρείη", act(Present, Infinitive): "χρῆναι",
		},
		map[Tense]string{Present: "χρεών"},
	)

	exesti = impersonal(
		map[cellKey]string{
			act(Present, Indicative): "ἔξεστι(ν)|ἐξ - ἐστι(ν)", act(Imperfect, Indicative): "ἐξῆν|ἐξ - ἦν",
			act(Future, Indicative): "ἐξέσται|ἐξ - ἔσται", act(Present, Subjunctive): "ἐξῇ|ἐξ - ᾖ",
			act(Present, Optative): "ἐξείη|ἐξ - εἴη", act(Present, Infinitive): "ἐξεῖναι|ἐξ - εἶναι",
			act(Future, Infinitive): "ἐξέσεσθαι|ἐξ - ἔσεσθαι",
		},
		map[Tense]string{Present: "ἐξόν|ἐξ - ὄν"},
	)

	enesti = impersonal(
		map[cellKey]string{
			act(Present, Indicative): "ἔνεστι(ν)|ἐν - ἐστι(ν)", act(Imperfect, Indicative): "ἐνῆν|ἐν - ἦν",
			act(Future, Indicative): "ἐνέσται|ἐν - ἔσται", act(Present, Subjunctive): "ἐνῇ|ἐν - ᾖ",
			act(Present, Optative): "ἐνείη|ἐν - εἴη", act(Present, Infinitive): "ἐνεῖναι|ἐν - εἶναι",
		},
		map[Tense]string{Present: "ἐνόν|ἐν - ὄν"},
	)
)

// impersonal builds a third singular only paradigm.
func impersonal(forms map[cellKey]string, participles map[Tense]string) irregularVerb {
	v := irregularVerb{
		finite:           map[cellKey][9]string{},
		infinitive:       map[cellKey]string{},
		neuterParticiple: participles,
		impersonal:       true,
	}
	for k, f := range forms {
		if k.mood == Infinitive {
			v.infinitive[k] = f
			continue
		}
		var row [9]string
		row[slot(Third, Singular)] = f
		v.finite[k] = row
	}
	return v
}

// synoida is οἶδα with συν-: recessive again in the indicative and
// imperative, unchanged elsewhere.
var synoida = func() irregularVerb {
	v := oida
	sun := &preverbs[indexPreverb("συν")]
	v.derive = func(form, decomposed string, c cellKey) (string, string) {
		fused := joinPreverb(sun, form)
		decomposed = joinMorphemes(grapheme.Normalize(sun.Full), decomposed)
		if c.mood == Indicative || c.mood == Imperative {
			boundary := 1
			if c.tense == Pluperfect {
				boundary = grapheme.Len(grapheme.Normalize(sun.Full))
			}
			fused = accentuate(grapheme.StripAccent(fused), accentContext{rule: accentRecessive, boundary: boundary})
		}
		return fused, decomposed
	}
	return v
}()

func indexPreverb(full string) int {
	for i, p := range preverbs {
		if p.Full == full {
			return i
		}
	}
	return -1
}

// irregulars maps a normalized first principal part to its paradigm.
var irregulars = func() map[string]*irregularVerb {
	m := map[string]*irregularVerb{}
	for lemma, v := range map[string]*irregularVerb{
		"εἰμί": &eimi, "εἶμι": &eimiGo, "οἶδα": &oida, "σύνοιδα": &synoida, "φημί": &phemi,
		"κεῖμαι": &keimai, "δεῖ": &dei, "χρή": &chre, "ἔξεστι(ν)": &exesti, "ἔνεστι(ν)": &enesti,
	} {
		m[grapheme.Normalize(lemma)] = v
	}
	return m
}()

// IsIrregular reports whether the verb's forms come from a literal table.
func IsIrregular(v *Verb) bool {
	_, ok := irregulars[v.Lemma()]
	return ok
}

// irregularForm looks r up in the literal tables. handled is false when the
// verb has no table or the table defers the tense to the rules.
func (r FormRequest) irregularForm(decompose bool) (steps []Step, handled bool, err error) {
	irr, ok := irregulars[r.Verb.Lemma()]
	if !ok {
		return nil, false, nil
	}
	key := cellKey{r.Tense, r.Voice, r.Mood}
	cell := ""
	switch r.Mood {
	case Infinitive:
		cell = irr.infinitive[key]
	case Participle:
		if ps, ok := irr.participle[key]; ok {
			cell = r.irregularParticiple(ps)
		} else if irr.impersonal && r.Voice == Active && r.Gender == Neuter && r.Number == Singular &&
			(r.Case == Nominative || r.Case == Accusative) {
			cell = irr.neuterParticiple[r.Tense]
		}
	default:
		if row, ok := irr.finite[key]; ok {
			cell = row[slot(r.Person, r.Number)]
		}
	}
	if cell == "" {
		if irr.regular[r.Tense] && !irr.impersonal {
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("%s %s: no form: %w", r.Verb.Lemma(), r, ErrBlankPrincipalPart)
	}
	var surfaces, decomposed []string
	for _, alt := range strings.Split(cell, "/") {
		s, dec, found := strings.Cut(strings.TrimSpace(alt), "|")
		s = grapheme.Normalize(s)
		if !found {
			dec = s
		}
		dec = grapheme.Normalize(dec)
		if irr.derive != nil {
			s, dec = irr.derive(s, dec, key)
		}
		surfaces = append(surfaces, s)
		decomposed = append(decomposed, dec)
	}
	form := joinAlternates(surfaces)
	if decompose {
		form = joinAlternates(decomposed)
	}
	return []Step{
		{Form: r.Verb.Lemma(), Explanation: StepPrincipalPart},
		{Form: form, Explanation: StepIrregular},
	}, true, nil
}

// irregularParticiple builds the participle of an irregular verb from its
// stem, returned as a "surface|decomposed" cell.
func (r FormRequest) irregularParticiple(ps participleStem) string {
	e, ok := participleEnding(ps.class, r.Gender, r.Number, r.Case)
	if !ok {
		return ""
	}
	stem := grapheme.Normalize(ps.stem)
	word := accentuate(stem+e.text, r.accentContext(ps.rule, 0))
	if ps.breathing != 0 {
		word = withBreathing(word, ps.breathing)
	}
	return word + "|" + joinMorphemes(stem, e.text)
}
