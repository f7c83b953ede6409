package hoplite

import (
	"fmt"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// principalPartSlot maps tense and voice to the principal part (1-6) that
// supplies the stem.
func principalPartSlot(v *Verb, t Tense, vo Voice) int {
	switch t {
	case Present, Imperfect:
		return 1
	case Future:
		if vo == Passive {
			return 6
		}
		return 2
	case Aorist:
		if vo == Passive {
			return 6
		}
		return 3
	}
	if v.isKnowVerb() {
		return 1
	}
	if vo == Active {
		return 4
	}
	return 5
}

// stemKind names the formation a principal part spelling belongs to.
type stemKind int

const (
	kindThematic stemKind = iota
	kindAthematic
	kindFuture
	kindContractedFuture
	kindFirstAorist
	kindSecondAorist
	kindRootAorist
	kindMixedAorist
	kindPerfectActive
	kindPerfectMiddle
	kindAoristPassive
	kindFuturePassive
)

var stemKindNames = []string{
	"thematic present", "athematic present", "future", "contracted future",
	"first aorist", "second aorist", "root aorist", "mixed aorist",
	"perfect active", "perfect middle", "aorist passive", "future passive",
}

func (k stemKind) String() string { return name(stemKindNames, int(k)) }

// stemInfo is a principal part spelling with its ending removed.
type stemInfo struct {
	kind stemKind
	// stem is unaccented; breathings and macrons are kept, and a
	// circumflex on α, ι or υ becomes a macron.
	stem string
	// part is the accented spelling the stem came from.
	part string
	// contracted is set for α-, ε- and ο-contract presents and contracted futures.
	contracted bool
}

// StripEnding removes the lexical ending from the first spelling of
// principal part n and returns the unaccented stem.
func StripEnding(v *Verb, n int) (string, error) {
	alts := v.alternates(n)
	if len(alts) == 0 || v.blank(n) {
		return "", fmt.Errorf("%s principal part %d: %w", v.Lemma(), n, ErrBlankPrincipalPart)
	}
	info, err := stripEnding(v, n, alts[0], Present)
	if err != nil {
		return "", err
	}
	return info.stem, nil
}

// stripEnding classifies one spelling of principal part n. The tense only
// separates the future passive from the aorist passive in slot 6.
func stripEnding(v *Verb, n int, part string, t Tense) (stemInfo, error) {
	bare := grapheme.StripAccent(part)
	info := stemInfo{part: part}
	cut := func(kind stemKind, suffix string) bool {
		if !hasSuffix(bare, suffix) {
			return false
		}
		info.kind, info.stem = kind, trimSuffix(bare, suffix)
		return true
	}
	ok := false
	switch n {
	case 1:
		switch {
		case v.Properties.Has(MiVerb) && cut(kindAthematic, "μι"):
			ok = true
		case cut(kindThematic, "ομαι"), cut(kindThematic, "ω"), cut(kindAthematic, "μαι"):
			ok = true
		}
		if ok && info.kind == kindThematic {
			info.contracted = endsInContractVowel(info.stem)
		}
	case 2:
		switch {
		case hasSuffix(part, "ῶ") && cut(kindContractedFuture, "ω"),
			hasSuffix(part, "οῦμαι") && cut(kindContractedFuture, "ουμαι"):
			if v.Properties.Has(ContractedFutureAlpha) {
				info.stem += "α"
			} else {
				info.stem += "ε"
			}
			info.contracted = true
			ok = true
		case cut(kindFuture, "ομαι"), cut(kindFuture, "ω"):
			ok = true
		}
	case 3:
		switch {
		case cut(kindFirstAorist, "αμην"), cut(kindSecondAorist, "ομην"):
			ok = true
		case v.Properties.Has(MiVerb) && hasSuffix(bare, "κα") && cut(kindMixedAorist, "α"):
			ok = true
		case cut(kindFirstAorist, "α"), cut(kindSecondAorist, "ον"):
			ok = true
		case isRootAorist(bare) && cut(kindRootAorist, "ν"):
			ok = true
		}
	case 4:
		ok = cut(kindPerfectActive, "α")
	case 5:
		ok = stripPerfectMiddle(v, bare, &info)
	case 6:
		kind := kindAoristPassive
		if t == Future {
			kind = kindFuturePassive
		}
		ok = hasSuffix(bare, "ην") && cut(kind, "ν")
	}
	if !ok {
		return stemInfo{}, fmt.Errorf("%s principal part %d %q: %w", v.Lemma(), n, part, ErrUnexpectedPrincipalPartEnding)
	}
	info.stem = keepLength(part, info.stem)
	return info, nil
}

// isRootAorist reports whether an unaccented third principal part is a root
// aorist (ἔβην, ἔγνων, ἔστην).
func isRootAorist(bare string) bool {
	return hasSuffix(bare, "ν") && !hasSuffix(bare, "ον") && !hasSuffix(bare, "μην")
}

func endsInContractVowel(stem string) bool {
	last, _, ok := lastLetter(stem)
	if !ok {
		return false
	}
	switch last.Base {
	case 'α', 'ε', 'ο':
		return true
	}
	return false
}

// consonantStems lists, per consonant-stem flag, the perfect middle ending
// that hides the stem consonant and the consonant to put back.
var consonantStems = []struct {
	flag    Properties
	ending  string
	restore string
}{
	{ConsonantStemPerfectMuPi, "μμαι", "μπ"},
	{ConsonantStemPerfectPi, "μμαι", "π"},
	{ConsonantStemPerfectBeta, "μμαι", "β"},
	{ConsonantStemPerfectPhi, "μμαι", "φ"},
	{ConsonantStemPerfectKappa, "γμαι", "κ"},
	{ConsonantStemPerfectGamma, "γμαι", "γ"},
	{ConsonantStemPerfectChi, "γμαι", "χ"},
	{ConsonantStemPerfectSigma, "σμαι", "σ"},
	{ConsonantStemPerfectLambda, "λμαι", "λ"},
}

func stripPerfectMiddle(v *Verb, bare string, info *stemInfo) bool {
	info.kind = kindPerfectMiddle
	for _, c := range consonantStems {
		if v.Properties.Has(c.flag) && hasSuffix(bare, c.ending) {
			info.stem = trimSuffix(bare, c.ending) + grapheme.Normalize(c.restore)
			return true
		}
	}
	if !hasSuffix(bare, "μαι") {
		return false
	}
	info.stem = trimSuffix(bare, "μαι")
	return true
}
