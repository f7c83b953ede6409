package hoplite

import (
	"fmt"
	"strings"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// grade selects which shape of an athematic stem an ending attaches to.
type grade uint8

const (
	// gradeAsIs attaches to the stem as derived.
	gradeAsIs grade = iota
	// gradeLong attaches to the long-vowel stem (διδω-, τιθη-, ἱστη-).
	gradeLong
	// gradeShort attaches to the short-vowel stem (διδο-, τιθε-, ἱστα-).
	gradeShort
	// gradeBare attaches to the stem without its final vowel (διδ-, τιθ-).
	gradeBare
)

type ending struct {
	text  string
	grade grade
}

// accented reports whether the ending carries its own accent, in which case
// the word is not re-accented.
func (e ending) accented() bool {
	return grapheme.HasAccent(e.text)
}

// parseEndings reads "/"-separated alternates with an optional L:, S: or B:
// grade prefix.
func parseEndings(s string) []ending {
	if s == "" {
		return nil
	}
	var out []ending
	for _, alt := range strings.Split(s, "/") {
		alt = strings.TrimSpace(alt)
		e := ending{}
		if len(alt) >= 2 && alt[1] == ':' {
			switch alt[0] {
			case 'L':
				e.grade = gradeLong
			case 'S':
				e.grade = gradeShort
			case 'B':
				e.grade = gradeBare
			}
			alt = alt[2:]
		}
		e.text = grapheme.Normalize(alt)
		out = append(out, e)
	}
	return out
}

// paradigmClass indexes a finite ending set.
type paradigmClass int

const (
	presentActiveIndicative paradigmClass = iota
	imperfectActiveIndicative
	aoristActiveIndicative
	perfectActiveIndicative
	pluperfectActiveIndicative
	activeSubjunctive
	activeOptative
	contractActiveOptative
	aoristActiveOptative
	activeImperative
	aoristActiveImperative
	presentMiddleIndicative
	imperfectMiddleIndicative
	aoristMiddleIndicative
	perfectMiddleIndicative
	pluperfectMiddleIndicative
	middleSubjunctive
	middleOptative
	aoristMiddleOptative
	middleImperative
	aoristMiddleImperative
	secondAoristMiddleImperative
	miPresentActiveIndicativeO
	miPresentActiveIndicativeE
	miPresentActiveIndicativeA
	miPresentActiveIndicativeU
	miImperfectActiveIndicativeO
	miImperfectActiveIndicativeE
	miImperfectActiveIndicativeA
	miPresentMiddleIndicative
	miImperfectMiddleIndicative
	miActiveImperativeO
	miActiveImperativeE
	miActiveImperativeA
	miMiddleImperative
	miActiveSubjunctiveO
	miActiveSubjunctiveE
	miMiddleSubjunctiveO
	miMiddleSubjunctiveE
	miActiveOptativeO
	miActiveOptativeE
	miActiveOptativeA
	miMiddleOptativeO
	miMiddleOptativeE
	miMiddleOptativeA
	rootAoristIndicative
	rootAoristImperative
	mixedAoristActiveIndicative
	mixedAoristMiddleIndicative
	mixedAoristActiveImperative
	mixedAoristMiddleImperative
	numParadigmClasses
)

// Slots run 1st, 2nd, 3rd singular, dual, then plural. "" marks a slot
// with no form.
var finiteEndings = [numParadigmClasses][9]string{
	presentActiveIndicative:    {"ω", "εις", "ει", "", "ετον", "ετον", "ομεν", "ετε", "ουσι(ν)"},
	imperfectActiveIndicative:  {"ον", "ες", "ε(ν)", "", "ετον", "ετην", "ομεν", "ετε", "ον"},
	aoristActiveIndicative:     {"α", "ας", "ε(ν)", "", "ατον", "ατην", "αμεν", "ατε", "αν"},
	perfectActiveIndicative:    {"α", "ας", "ε(ν)", "", "ατον", "ατον", "αμεν", "ατε", "ᾱσι(ν)"},
	pluperfectActiveIndicative: {"η", "ης", "ει(ν)", "", "ετον", "ετην", "εμεν", "ετε", "εσαν"},
	activeSubjunctive:          {"ω", "ῃς", "ῃ", "", "ητον", "ητον", "ωμεν", "ητε", "ωσι(ν)"},
	activeOptative:             {"οιμι", "οις", "οι", "", "οιτον", "οιτην", "οιμεν", "οιτε", "οιεν"},
	contractActiveOptative:     {"οιην", "οιης", "οιη", "", "οιτον / οιητον", "οιτην / οιητην", "οιμεν / οιημεν", "οιτε / οιητε", "οιεν"},
	aoristActiveOptative:       {"αιμι", "αις / ειας", "αι / ειε(ν)", "", "αιτον", "αιτην", "αιμεν", "αιτε", "αιεν / ειαν"},
	activeImperative:           {"", "ε", "ετω", "", "ετον", "ετων", "", "ετε", "οντων"},
	aoristActiveImperative:     {"", "ον", "ατω", "", "ατον", "ατων", "", "ατε", "αντων"},

	presentMiddleIndicative:      {"ομαι", "ει / ῃ", "εται", "", "εσθον", "εσθον", "ομεθα", "εσθε", "ονται"},
	imperfectMiddleIndicative:    {"ομην", "ου", "ετο", "", "εσθον", "εσθην", "ομεθα", "εσθε", "οντο"},
	aoristMiddleIndicative:       {"αμην", "ω", "ατο", "", "ασθον", "ασθην", "αμεθα", "ασθε", "αντο"},
	perfectMiddleIndicative:      {"μαι", "σαι", "ται", "", "σθον", "σθον", "μεθα", "σθε", "νται"},
	pluperfectMiddleIndicative:   {"μην", "σο", "το", "", "σθον", "σθην", "μεθα", "σθε", "ντο"},
	middleSubjunctive:            {"ωμαι", "ῃ", "ηται", "", "ησθον", "ησθον", "ωμεθα", "ησθε", "ωνται"},
	middleOptative:               {"οιμην", "οιο", "οιτο", "", "οισθον", "οισθην", "οιμεθα", "οισθε", "οιντο"},
	aoristMiddleOptative:         {"αιμην", "αιο", "αιτο", "", "αισθον", "αισθην", "αιμεθα", "αισθε", "αιντο"},
	middleImperative:             {"", "ου", "εσθω", "", "εσθον", "εσθων", "", "εσθε", "εσθων"},
	aoristMiddleImperative:       {"", "αι", "ασθω", "", "ασθον", "ασθων", "", "ασθε", "ασθων"},
	secondAoristMiddleImperative: {"", "οῦ", "εσθω", "", "εσθον", "εσθων", "", "εσθε", "εσθων"},

	miPresentActiveIndicativeO:   {"L:μι", "L:ς", "L:σι(ν)", "", "S:τον", "S:τον", "S:μεν", "S:τε", "S:ᾱσι(ν)"},
	miPresentActiveIndicativeE:   {"L:μι", "L:ς", "L:σι(ν)", "", "S:τον", "S:τον", "S:μεν", "S:τε", "S:ᾱσι(ν)"},
	miPresentActiveIndicativeA:   {"L:μι", "L:ς", "L:σι(ν)", "", "S:τον", "S:τον", "S:μεν", "S:τε", "B:ᾶσι(ν)"},
	miPresentActiveIndicativeU:   {"L:μι", "L:ς", "L:σι(ν)", "", "S:τον", "S:τον", "S:μεν", "S:τε", "S:ᾱσι(ν)"},
	miImperfectActiveIndicativeO: {"B:ουν", "B:ους", "B:ου", "", "S:τον", "S:την", "S:μεν", "S:τε", "S:σαν"},
	miImperfectActiveIndicativeE: {"L:ν", "B:εις", "B:ει", "", "S:τον", "S:την", "S:μεν", "S:τε", "S:σαν"},
	miImperfectActiveIndicativeA: {"L:ν", "L:ς", "L:", "", "S:τον", "S:την", "S:μεν", "S:τε", "S:σαν"},
	miPresentMiddleIndicative:    {"S:μαι", "S:σαι", "S:ται", "", "S:σθον", "S:σθον", "S:μεθα", "S:σθε", "S:νται"},
	miImperfectMiddleIndicative:  {"S:μην", "S:σο", "S:το", "", "S:σθον", "S:σθην", "S:μεθα", "S:σθε", "S:ντο"},
	miActiveImperativeO:          {"", "B:ου", "S:τω", "", "S:τον", "S:των", "", "S:τε", "S:ντων"},
	miActiveImperativeE:          {"", "B:ει", "S:τω", "", "S:τον", "S:των", "", "S:τε", "S:ντων"},
	miActiveImperativeA:          {"", "L:", "S:τω", "", "S:τον", "S:των", "", "S:τε", "S:ντων"},
	miMiddleImperative:           {"", "S:σο", "S:σθω", "", "S:σθον", "S:σθων", "", "S:σθε", "S:σθων"},
	miActiveSubjunctiveO:         {"B:ῶ", "B:ῷς", "B:ῷ", "", "B:ῶτον", "B:ῶτον", "B:ῶμεν", "B:ῶτε", "B:ῶσι(ν)"},
	miActiveSubjunctiveE:         {"B:ῶ", "B:ῇς", "B:ῇ", "", "B:ῆτον", "B:ῆτον", "B:ῶμεν", "B:ῆτε", "B:ῶσι(ν)"},
	miMiddleSubjunctiveO:         {"B:ῶμαι", "B:ῷ", "B:ῶται", "", "B:ῶσθον", "B:ῶσθον", "B:ώμεθα", "B:ῶσθε", "B:ῶνται"},
	miMiddleSubjunctiveE:         {"B:ῶμαι", "B:ῇ", "B:ῆται", "", "B:ῆσθον", "B:ῆσθον", "B:ώμεθα", "B:ῆσθε", "B:ῶνται"},
	miActiveOptativeO: {"B:οίην", "B:οίης", "B:οίη", "", "B:οῖτον / B:οίητον", "B:οίτην / B:οιήτην",
		"B:οῖμεν / B:οίημεν", "B:οῖτε / B:οίητε", "B:οῖεν / B:οίησαν"},
	miActiveOptativeE: {"B:είην", "B:είης", "B:είη", "", "B:εῖτον / B:είητον", "B:είτην / B:ειήτην",
		"B:εῖμεν / B:είημεν", "B:εῖτε / B:είητε", "B:εῖεν / B:είησαν"},
	miActiveOptativeA: {"B:αίην", "B:αίης", "B:αίη", "", "B:αῖτον / B:αίητον", "B:αίτην / B:αιήτην",
		"B:αῖμεν / B:αίημεν", "B:αῖτε / B:αίητε", "B:αῖεν / B:αίησαν"},
	miMiddleOptativeO: {"B:οίμην", "B:οῖο", "B:οῖτο", "", "B:οῖσθον", "B:οίσθην", "B:οίμεθα", "B:οῖσθε", "B:οῖντο"},
	miMiddleOptativeE: {"B:είμην", "B:εῖο", "B:εῖτο", "", "B:εῖσθον", "B:είσθην", "B:είμεθα", "B:εῖσθε", "B:εῖντο"},
	miMiddleOptativeA: {"B:αίμην", "B:αῖο", "B:αῖτο", "", "B:αῖσθον", "B:αίσθην", "B:αίμεθα", "B:αῖσθε", "B:αῖντο"},

	rootAoristIndicative:        {"L:ν", "L:ς", "L:", "", "L:τον", "L:την", "L:μεν", "L:τε", "L:σαν"},
	rootAoristImperative:        {"", "L:θι", "L:τω", "", "L:τον", "L:των", "", "L:τε", "S:ντων"},
	mixedAoristActiveIndicative: {"α", "ας", "ε(ν)", "", "S:τον", "S:την", "S:μεν", "S:τε", "S:σαν"},
	mixedAoristMiddleIndicative: {"S:μην", "B:ου", "S:το", "", "S:σθον", "S:σθην", "S:μεθα", "S:σθε", "S:ντο"},
	mixedAoristActiveImperative: {"", "S:ς", "S:τω", "", "S:τον", "S:των", "", "S:τε", "S:ντων"},
	mixedAoristMiddleImperative: {"", "B:οῦ", "S:σθω", "", "S:σθον", "S:σθων", "", "S:σθε", "S:σθων"},
}

var parsedFinite = func() [numParadigmClasses][9][]ending {
	var out [numParadigmClasses][9][]ending
	for c, row := range finiteEndings {
		for i, s := range row {
			out[c][i] = parseEndings(s)
		}
	}
	return out
}()

// slot maps person and number to a table column.
func slot(p Person, n Number) int {
	return (int(n)-1)*3 + int(p) - 1
}

// finiteEnding returns the ending alternates of class c for person and number.
func finiteEnding(c paradigmClass, p Person, n Number) []ending {
	if p == PersonNone || n == NumberNone || c < 0 || c >= numParadigmClasses {
		return nil
	}
	return parsedFinite[c][slot(p, n)]
}

// plan is everything needed to attach endings to a stem for one request.
type plan struct {
	endings []ending
	rule    accentRule
	// link is inserted between stem and ending (the thematic vowel of
	// middle participles).
	link  string
	class vowelClass
}

var (
	miPresentActive   = [...]paradigmClass{miPresentActiveIndicativeO, miPresentActiveIndicativeE, miPresentActiveIndicativeA, miPresentActiveIndicativeU}
	miImperfectActive = [...]paradigmClass{miImperfectActiveIndicativeO, miImperfectActiveIndicativeE, miImperfectActiveIndicativeA, miImperfectActiveIndicativeA}
	miImperative      = [...]paradigmClass{miActiveImperativeO, miActiveImperativeE, miActiveImperativeA, miActiveImperativeA}
	miSubjActive      = [...]paradigmClass{miActiveSubjunctiveO, miActiveSubjunctiveE, miActiveSubjunctiveE, miActiveSubjunctiveE}
	miSubjMiddle      = [...]paradigmClass{miMiddleSubjunctiveO, miMiddleSubjunctiveE, miMiddleSubjunctiveE, miMiddleSubjunctiveE}
	miOptActive       = [...]paradigmClass{miActiveOptativeO, miActiveOptativeE, miActiveOptativeA, miActiveOptativeA}
	miOptMiddle       = [...]paradigmClass{miMiddleOptativeO, miMiddleOptativeE, miMiddleOptativeA, miMiddleOptativeA}
	athematicPtc      = [...]participleClass{oParticiple, eParticiple, aParticiple, uParticiple}
)

// pick returns the active or middle member of a pair.
func pick[T any](middle bool, active, mid T) T {
	if middle {
		return mid
	}
	return active
}

// finiteClass selects the paradigm class of a finite request. Only
// morphological categories are consulted.
func (r FormRequest) finiteClass(kind stemKind, vc vowelClass) (paradigmClass, grade, bool) {
	mid := r.Voice != Active
	switch kind {
	case kindThematic, kindFuture, kindContractedFuture, kindFuturePassive:
		switch r.Mood {
		case Indicative:
			if r.Tense == Imperfect {
				return pick(mid, imperfectActiveIndicative, imperfectMiddleIndicative), gradeAsIs, true
			}
			return pick(mid, presentActiveIndicative, presentMiddleIndicative), gradeAsIs, true
		case Subjunctive:
			return pick(mid, activeSubjunctive, middleSubjunctive), gradeAsIs, true
		case Optative:
			if !mid && kind == kindThematic && r.Tense == Present && r.contractedPresent() {
				return contractActiveOptative, gradeAsIs, true
			}
			return pick(mid, activeOptative, middleOptative), gradeAsIs, true
		case Imperative:
			return pick(mid, activeImperative, middleImperative), gradeAsIs, true
		}
	case kindAthematic:
		switch r.Mood {
		case Indicative:
			if r.Tense == Imperfect {
				return pick(mid, miImperfectActive[vc], miImperfectMiddleIndicative), gradeAsIs, true
			}
			return pick(mid, miPresentActive[vc], miPresentMiddleIndicative), gradeAsIs, true
		case Subjunctive:
			if vc == classU {
				return pick(mid, activeSubjunctive, middleSubjunctive), gradeShort, true
			}
			return pick(mid, miSubjActive[vc], miSubjMiddle[vc]), gradeAsIs, true
		case Optative:
			if vc == classU {
				return pick(mid, activeOptative, middleOptative), gradeShort, true
			}
			return pick(mid, miOptActive[vc], miOptMiddle[vc]), gradeAsIs, true
		case Imperative:
			return pick(mid, miImperative[vc], miMiddleImperative), gradeAsIs, true
		}
	case kindFirstAorist:
		switch r.Mood {
		case Indicative:
			return pick(mid, aoristActiveIndicative, aoristMiddleIndicative), gradeAsIs, true
		case Subjunctive:
			return pick(mid, activeSubjunctive, middleSubjunctive), gradeAsIs, true
		case Optative:
			return pick(mid, aoristActiveOptative, aoristMiddleOptative), gradeAsIs, true
		case Imperative:
			return pick(mid, aoristActiveImperative, aoristMiddleImperative), gradeAsIs, true
		}
	case kindSecondAorist:
		switch r.Mood {
		case Indicative:
			return pick(mid, imperfectActiveIndicative, imperfectMiddleIndicative), gradeAsIs, true
		case Subjunctive:
			return pick(mid, activeSubjunctive, middleSubjunctive), gradeAsIs, true
		case Optative:
			return pick(mid, activeOptative, middleOptative), gradeAsIs, true
		case Imperative:
			return pick(mid, activeImperative, secondAoristMiddleImperative), gradeAsIs, true
		}
	case kindRootAorist, kindAoristPassive:
		switch r.Mood {
		case Indicative:
			return rootAoristIndicative, gradeAsIs, true
		case Subjunctive:
			return miSubjActive[vc], gradeAsIs, true
		case Optative:
			return miOptActive[vc], gradeAsIs, true
		case Imperative:
			return rootAoristImperative, gradeAsIs, true
		}
	case kindMixedAorist:
		switch r.Mood {
		case Indicative:
			return pick(mid, mixedAoristActiveIndicative, mixedAoristMiddleIndicative), gradeAsIs, true
		case Subjunctive:
			return pick(mid, miSubjActive[vc], miSubjMiddle[vc]), gradeAsIs, true
		case Optative:
			return pick(mid, miOptActive[vc], miOptMiddle[vc]), gradeAsIs, true
		case Imperative:
			return pick(mid, mixedAoristActiveImperative, mixedAoristMiddleImperative), gradeAsIs, true
		}
	case kindPerfectActive:
		if r.Mood == Indicative {
			return pick(r.Tense == Pluperfect, perfectActiveIndicative, pluperfectActiveIndicative), gradeAsIs, true
		}
	case kindPerfectMiddle:
		if r.Mood == Indicative {
			return pick(r.Tense == Pluperfect, perfectMiddleIndicative, pluperfectMiddleIndicative), gradeAsIs, true
		}
	}
	return 0, gradeAsIs, false
}

// infinitive returns the infinitive ending and its accent rule.
func (r FormRequest) infinitive(kind stemKind, vc vowelClass) (string, accentRule) {
	mid := r.Voice != Active
	switch kind {
	case kindAthematic:
		return pick(mid, "S:ναι", "S:σθαι"), pick(mid, accentPenult, accentRecessive)
	case kindFuturePassive:
		return "εσθαι", accentRecessive
	case kindFirstAorist:
		return pick(mid, "αι", "ασθαι"), pick(mid, accentPenult, accentRecessive)
	case kindSecondAorist:
		return pick(mid, "ειν", "εσθαι"), pick(mid, accentUltima, accentPenult)
	case kindRootAorist, kindAoristPassive:
		return "L:ναι", accentPenult
	case kindMixedAorist:
		if mid {
			return "S:σθαι", accentRecessive
		}
		return pick(vc == classO, "B:εῖναι", "B:οῦναι"), accentRecessive
	case kindPerfectActive:
		return "εναι", accentPenult
	case kindPerfectMiddle:
		return "σθαι", accentPenult
	}
	return pick(mid, "ειν", "εσθαι"), accentRecessive
}

// participle returns the ending class, grade, link vowel and accent rule of
// a participle.
func (r FormRequest) participle(kind stemKind, vc vowelClass) (participleClass, grade, string, accentRule) {
	mid := r.Voice != Active && kind != kindAoristPassive
	switch kind {
	case kindAthematic, kindMixedAorist:
		if mid {
			return middleParticiple, gradeShort, "", accentRecessive
		}
		return athematicPtc[vc], gradeBare, "", accentParticipleUltima
	case kindRootAorist:
		return athematicPtc[vc], gradeBare, "", accentParticipleUltima
	case kindAoristPassive:
		return eParticiple, gradeBare, "", accentParticipleUltima
	case kindFirstAorist:
		if mid {
			return middleParticiple, gradeAsIs, "α", accentRecessive
		}
		return aParticiple, gradeAsIs, "", accentParticiple
	case kindSecondAorist:
		if mid {
			return middleParticiple, gradeAsIs, "ο", accentRecessive
		}
		return thematicParticiple, gradeAsIs, "", accentParticipleUltima
	case kindPerfectActive:
		return perfectActiveParticiple, gradeAsIs, "", accentParticipleUltima
	case kindPerfectMiddle:
		return middleParticiple, gradeAsIs, "", accentPenult
	}
	if mid {
		return middleParticiple, gradeAsIs, "ο", accentRecessive
	}
	return thematicParticiple, gradeAsIs, "", accentParticiple
}

// plan selects endings and accent rule for a stem of the given kind.
func (r FormRequest) plan(info stemInfo) (plan, error) {
	vc := classE
	if info.kind.isAthematic() && info.kind != kindAoristPassive {
		vc = athematicVowel(longStem(info.stem, info.kind))
	}
	p := plan{class: vc, rule: accentRecessive}
	switch r.Mood {
	case Infinitive:
		text, rule := r.infinitive(info.kind, vc)
		p.endings, p.rule = parseEndings(text), rule
	case Participle:
		c, g, link, rule := r.participle(info.kind, vc)
		e, ok := participleEnding(c, r.Gender, r.Number, r.Case)
		if ok {
			e.grade = g
			p.endings = []ending{e}
		}
		p.link, p.rule = grapheme.Normalize(link), rule
	default:
		c, g, ok := r.finiteClass(info.kind, vc)
		if ok {
			for _, e := range finiteEnding(c, r.Person, r.Number) {
				if g != gradeAsIs {
					e.grade = g
				}
				p.endings = append(p.endings, e)
			}
		}
	}
	if len(p.endings) == 0 {
		return p, fmt.Errorf("%s %s (%s): no ending: %w", r.Verb.Lemma(), r, info.kind, ErrInternal)
	}
	return p, nil
}
