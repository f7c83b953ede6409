package hoplite

import (
	"fmt"
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// AlternateSeparator joins alternate forms of one paradigm cell.
const AlternateSeparator = " / "

// derivation collects, stage by stage, the forms produced for every
// spelling of the selected principal part.
type derivation struct {
	stems        []string
	augmented    []string
	augmentLabel string
	added        []string
	contracted   []string
	accented     []string
}

// regularForm runs the rule pipeline over each spelling of the selected
// principal part.
func (r FormRequest) regularForm(decompose bool) ([]Step, error) {
	v := r.Verb
	n := principalPartSlot(v, r.Tense, r.Voice)
	if v.blank(n) {
		return nil, fmt.Errorf("%s %s: principal part %d: %w", v.Lemma(), r, n, ErrBlankPrincipalPart)
	}
	pv := verbPreverb(v)
	var d derivation
	skippedRoot := false
	for _, alt := range v.alternates(n) {
		info, err := stripEnding(v, n, alt, r.Tense)
		if err != nil {
			return nil, err
		}
		if info.kind == kindRootAorist && r.Voice != Active {
			skippedRoot = true
			continue
		}
		p, err := r.plan(info)
		if err != nil {
			return nil, err
		}
		d.stems = append(d.stems, info.stem)
		for _, sf := range r.stemForms(info, pv) {
			if sf.fused != info.stem {
				d.augmented = append(d.augmented, sf.fused)
				d.augmentLabel = StepAddAugment
				if r.Tense == Aorist || r.Tense == Future {
					d.augmentLabel = StepRemoveAugment
				}
			}
			for _, e := range p.endings {
				r.attach(&d, info, p, sf, e, decompose)
			}
		}
	}
	if len(d.stems) == 0 {
		if skippedRoot {
			return nil, fmt.Errorf("%s %s: root aorist has no middle: %w", v.Lemma(), r, ErrInternal)
		}
		return nil, fmt.Errorf("%s %s: no principal part spelling: %w", v.Lemma(), r, ErrInternal)
	}
	return d.steps(r, v.PrincipalPart(n), decompose), nil
}

// attach adds one ending to one stem.
func (r FormRequest) attach(d *derivation, info stemInfo, p plan, sf stemForm, e ending, decompose bool) {
	stem := applyGrade(sf.fused, e.grade, info.kind, p.class)
	body := applyGrade(sf.body, e.grade, info.kind, p.class)
	text := p.link + e.text
	if r.Mood == Imperative && e.text == "θι" && hasSuffix(stem, "θη") {
		text = grapheme.Normalize("τι")
	}
	if info.kind == kindPerfectMiddle && r.Mood == Indicative && r.Person == Third && r.Number == Plural && endsInConsonant(info.stem) {
		r.periphrastic(d, plainForm(verbPreverb(r.Verb), info.stem, true), decompose)
		return
	}
	if decompose {
		d.added = append(d.added, joinMorphemes(sf.preverb, sf.augment, body, text))
		return
	}
	word := stem + text
	if info.kind == kindPerfectMiddle && r.Verb.Properties.Any(ConsonantStem) {
		word = assimilate(stem, text)
	}
	d.added = append(d.added, word)

	ctx := r.accentContext(p.rule, sf.boundary)
	if info.kind == kindSecondAorist && r.Mood == Imperative && r.Voice == Active &&
		r.Person == Second && r.Number == Singular && sf.preverb == "" && oxytoneImperatives[stem] {
		ctx.rule = accentOxytone
	}
	contracted := info.contracted && !e.accented()
	at := grapheme.Len(stem) - 1
	if contracted && r.Mood == Participle && r.Voice == Active && at > ctx.boundary {
		ctx.boundary = at
	}
	accented := accentuate(word, ctx)
	if contracted {
		if c, ok := contract(accented, at); ok {
			d.contracted = append(d.contracted, grapheme.StripAccent(c))
			accented = c
		}
	}
	d.accented = append(d.accented, accented)
}

// oxytoneImperatives are second aorist stems whose active imperative
// singular is accented on the ending (εἰπέ, ἐλθέ).
var oxytoneImperatives = func() map[string]bool {
	m := map[string]bool{}
	for _, s := range []string{"εἰπ", "ἐλθ", "εὑρ", "ἰδ", "λαβ"} {
		m[grapheme.Normalize(s)] = true
	}
	return m
}()

// periphrastic builds the third plural perfect and pluperfect middle of
// consonant stems from the participle and a form of εἰμί.
func (r FormRequest) periphrastic(d *derivation, sf stemForm, decompose bool) {
	aux := grapheme.Normalize("εἰσί(ν)")
	if r.Tense == Pluperfect {
		aux = grapheme.Normalize("ἦσαν")
	}
	ending := grapheme.Normalize("μενοι")
	if decompose {
		d.added = append(d.added, joinMorphemes(sf.preverb, sf.body, ending)+" "+aux)
		return
	}
	word := assimilate(sf.fused, ending)
	d.added = append(d.added, word+" "+aux)
	ctx := accentContext{rule: accentPenult, boundary: sf.boundary}
	d.accented = append(d.accented, accentuate(word, ctx)+" "+aux)
}

func (r FormRequest) accentContext(rule accentRule, boundary int) accentContext {
	return accentContext{
		rule:               rule,
		boundary:           boundary,
		longFinalDiphthong: r.Mood == Optative && r.Person == Third && r.Number == Singular,
		gender:             r.Gender,
		number:             r.Number,
		grammaticalCase:    r.Case,
	}
}

// steps turns a derivation into the trace returned to callers.
func (d derivation) steps(r FormRequest, part string, decompose bool) []Step {
	steps := []Step{
		{Form: part, Explanation: StepPrincipalPart},
		{Form: joinAlternates(d.stems), Explanation: StepRemoveEnding},
	}
	if len(d.augmented) > 0 {
		steps = append(steps, Step{Form: joinAlternates(d.augmented), Explanation: d.augmentLabel})
	}
	added, contracted, accented := d.added, d.contracted, d.accented
	if extra, ok := extraAlternates(r); ok {
		if decompose {
			added = append(added, extra.decomposed)
		} else {
			accented = append(accented, extra.accented)
		}
		if extra.replace {
			added = []string{grapheme.StripAccent(extra.accented)}
			if decompose {
				added = []string{extra.decomposed}
			}
			contracted, accented = nil, []string{extra.accented}
		}
	}
	steps = append(steps, Step{Form: joinAlternates(added), Explanation: StepAddEnding})
	if decompose {
		return steps
	}
	if len(contracted) > 0 {
		steps = append(steps, Step{Form: joinAlternates(contracted), Explanation: StepContract})
	}
	return append(steps, Step{Form: joinAlternates(accented), Explanation: StepAccent})
}

// joinAlternates deduplicates forms and joins them for display.
func joinAlternates(forms []string) string {
	return strings.Join(unique(forms), AlternateSeparator)
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// extraKey identifies a paradigm cell of one lemma.
type extraKey struct {
	lemma  string
	tense  Tense
	voice  Voice
	mood   Mood
	person Person
	number Number
}

// attested is a spelling the rules do not produce. A replacing spelling
// stands in for the rule output of its cell instead of joining it.
type attested struct {
	accented   string
	decomposed string
	replace    bool
}

var extraForms = func() map[extraKey]attested {
	raw := map[extraKey]attested{
		{"τίθημι", Present, Active, Indicative, Second, Singular}:    {"τιθεῖς", "τιθ - εις", false},
		{"δίδωμι", Present, Active, Indicative, Second, Singular}:    {"διδοῖς", "διδ - οις", false},
		{"ἀποδίδωμι", Present, Active, Indicative, Second, Singular}: {"ἀποδιδοῖς", "ἀπο - διδ - οις", false},
		{"λέγω", Aorist, Active, Indicative, First, Singular}:        {"εἶπα", "εἰπ - α", false},
		{"ἔχω", Aorist, Active, Imperative, Second, Singular}:        {"σχές", "σχ - ες", true},

		// Simplex ἔχω takes -οιη- in the singular; compounds keep σχοῖμι.
		{"ἔχω", Aorist, Active, Optative, First, Singular}:  {"σχοίην", "σχ - οιην", true},
		{"ἔχω", Aorist, Active, Optative, Second, Singular}: {"σχοίης", "σχ - οιης", true},
		{"ἔχω", Aorist, Active, Optative, Third, Singular}:  {"σχοίη", "σχ - οιη", true},
	}
	out := make(map[extraKey]attested, len(raw))
	for k, v := range raw {
		k.lemma = grapheme.Normalize(k.lemma)
		out[k] = attested{grapheme.Normalize(v.accented), grapheme.Normalize(v.decomposed), v.replace}
	}
	return out
}()

func extraAlternates(r FormRequest) (attested, bool) {
	v, ok := extraForms[extraKey{r.Verb.Lemma(), r.Tense, r.Voice, r.Mood, r.Person, r.Number}]
	return v, ok
}
