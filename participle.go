package hoplite

// participleClass indexes a participle ending set.
type participleClass int

const (
	// thematicParticiple is λύων, λύουσα, λῦον.
	thematicParticiple participleClass = iota
	// oParticiple is διδούς, δούς, γνούς.
	oParticiple
	// eParticiple is τιθείς, θείς and the aorist passive λυθείς.
	eParticiple
	// aParticiple is λύσᾱς, ἱστάς, βάς.
	aParticiple
	// uParticiple is δεικνύς.
	uParticiple
	perfectActiveParticiple
	middleParticiple
	numParticipleClasses
)

// Each gender row holds nominative, genitive, dative, accusative and
// vocative for singular, dual and plural in turn.
var participleEndings = [numParticipleClasses][3][15]string{
	thematicParticiple: {
		{"ων", "οντος", "οντι", "οντα", "ων", "οντε", "οντοιν", "οντοιν", "οντε", "οντε", "οντες", "οντων", "ουσι(ν)", "οντας", "οντες"},
		{"ουσα", "ουσης", "ουσῃ", "ουσαν", "ουσα", "ουσᾱ", "ουσαιν", "ουσαιν", "ουσᾱ", "ουσᾱ", "ουσαι", "ουσων", "ουσαις", "ουσᾱς", "ουσαι"},
		{"ον", "οντος", "οντι", "ον", "ον", "οντε", "οντοιν", "οντοιν", "οντε", "οντε", "οντα", "οντων", "ουσι(ν)", "οντα", "οντα"},
	},
	oParticiple: {
		{"ους", "οντος", "οντι", "οντα", "ους", "οντε", "οντοιν", "οντοιν", "οντε", "οντε", "οντες", "οντων", "ουσι(ν)", "οντας", "οντες"},
		{"ουσα", "ουσης", "ουσῃ", "ουσαν", "ουσα", "ουσᾱ", "ουσαιν", "ουσαιν", "ουσᾱ", "ουσᾱ", "ουσαι", "ουσων", "ουσαις", "ουσᾱς", "ουσαι"},
		{"ον", "οντος", "οντι", "ον", "ον", "οντε", "οντοιν", "οντοιν", "οντε", "οντε", "οντα", "οντων", "ουσι(ν)", "οντα", "οντα"},
	},
	eParticiple: {
		{"εις", "εντος", "εντι", "εντα", "εις", "εντε", "εντοιν", "εντοιν", "εντε", "εντε", "εντες", "εντων", "εισι(ν)", "εντας", "εντες"},
		{"εισα", "εισης", "εισῃ", "εισαν", "εισα", "εισᾱ", "εισαιν", "εισαιν", "εισᾱ", "εισᾱ", "εισαι", "εισων", "εισαις", "εισᾱς", "εισαι"},
		{"εν", "εντος", "εντι", "εν", "εν", "εντε", "εντοιν", "εντοιν", "εντε", "εντε", "εντα", "εντων", "εισι(ν)", "εντα", "εντα"},
	},
	aParticiple: {
		{"ᾱς", "αντος", "αντι", "αντα", "ᾱς", "αντε", "αντοιν", "αντοιν", "αντε", "αντε", "αντες", "αντων", "ᾱσι(ν)", "αντας", "αντες"},
		{"ᾱσα", "ᾱσης", "ᾱσῃ", "ᾱσαν", "ᾱσα", "ᾱσᾱ", "ᾱσαιν", "ᾱσαιν", "ᾱσᾱ", "ᾱσᾱ", "ᾱσαι", "ᾱσων", "ᾱσαις", "ᾱσᾱς", "ᾱσαι"},
		{"αν", "αντος", "αντι", "αν", "αν", "αντε", "αντοιν", "αντοιν", "αντε", "αντε", "αντα", "αντων", "ᾱσι(ν)", "αντα", "αντα"},
	},
	uParticiple: {
		{"ῡς", "υντος", "υντι", "υντα", "ῡς", "υντε", "υντοιν", "υντοιν", "υντε", "υντε", "υντες", "υντων", "ῡσι(ν)", "υντας", "υντες"},
		{"ῡσα", "ῡσης", "ῡσῃ", "ῡσαν", "ῡσα", "ῡσᾱ", "ῡσαιν", "ῡσαιν", "ῡσᾱ", "ῡσᾱ", "ῡσαι", "ῡσων", "ῡσαις", "ῡσᾱς", "ῡσαι"},
		{"υν", "υντος", "υντι", "υν", "υν", "υντε", "υντοιν", "υντοιν", "υντε", "υντε", "υντα", "υντων", "ῡσι(ν)", "υντα", "υντα"},
	},
	perfectActiveParticiple: {
		{"ως", "οτος", "οτι", "οτα", "ως", "οτε", "οτοιν", "οτοιν", "οτε", "οτε", "οτες", "οτων", "οσι(ν)", "οτας", "οτες"},
		{"υια", "υιᾱς", "υιᾳ", "υιαν", "υια", "υιᾱ", "υιαιν", "υιαιν", "υιᾱ", "υιᾱ", "υιαι", "υιων", "υιαις", "υιᾱς", "υιαι"},
		{"ος", "οτος", "οτι", "ος", "ος", "οτε", "οτοιν", "οτοιν", "οτε", "οτε", "οτα", "οτων", "οσι(ν)", "οτα", "οτα"},
	},
	middleParticiple: {
		{"μενος", "μενου", "μενῳ", "μενον", "μενε", "μενω", "μενοιν", "μενοιν", "μενω", "μενω", "μενοι", "μενων", "μενοις", "μενους", "μενοι"},
		{"μενη", "μενης", "μενῃ", "μενην", "μενη", "μενᾱ", "μεναιν", "μεναιν", "μενᾱ", "μενᾱ", "μεναι", "μενων", "μεναις", "μενᾱς", "μεναι"},
		{"μενον", "μενου", "μενῳ", "μενον", "μενον", "μενω", "μενοιν", "μενοιν", "μενω", "μενω", "μενα", "μενων", "μενοις", "μενα", "μενα"},
	},
}

var parsedParticiple = func() [numParticipleClasses][3][15]ending {
	var out [numParticipleClasses][3][15]ending
	for c, genders := range participleEndings {
		for g, row := range genders {
			for i, s := range row {
				out[c][g][i] = parseEndings(s)[0]
			}
		}
	}
	return out
}()

// participleEnding returns the ending of class c for the given cell.
func participleEnding(c participleClass, g Gender, n Number, k Case) (ending, bool) {
	if g == GenderNone || n == NumberNone || k == CaseNone || c < 0 || c >= numParticipleClasses {
		return ending{}, false
	}
	return parsedParticiple[c][g-1][(int(n)-1)*5+int(k)-1], true
}
