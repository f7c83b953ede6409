package hoplite

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

const dataDir = "data"

func loadLexicon(t *testing.T) *Lexicon {
	t.Helper()
	l, err := New(dataDir)
	require.NoError(t, err)
	return l
}

func mustVerb(t *testing.T, l *Lexicon, lemma string) *Verb {
	t.Helper()
	v := l.Verb(lemma)
	require.NotNil(t, v, "verb %s", lemma)
	return v
}

func TestNew(t *testing.T) {
	l := loadLexicon(t)
	assert.Greater(t, l.Len(), 50)
	assert.Equal(t, 1, l.Verbs()[0].ID)
	t.Logf("Loaded %d verbs", l.Len())
}

func TestLexiconLookup(t *testing.T) {
	l := loadLexicon(t)

	v := mustVerb(t, l, "λῡ́ω")
	assert.Equal(t, grapheme.Normalize("λῡ́ω"), v.Lemma())
	assert.Same(t, v, l.Verb("λῡω"), "lookup ignores accents")

	be := mustVerb(t, l, "εἰμί")
	goVerb := mustVerb(t, l, "εἶμι")
	assert.NotSame(t, be, goVerb, "exact match wins over the shared unaccented key")

	assert.Nil(t, l.Verb("ἀγαπάω"))
}

func TestNewFSGlob(t *testing.T) {
	fsys := fstest.MapFS{
		"a/one.txt":  {Data: []byte("# comment\n\nπαύω, παύσω, ἔπαυσα, πέπαυκα, πέπαυμαι, ἐπαύθην % 3 % NONE\n")},
		"b/two.txt":  {Data: []byte("δίδωμι, δώσω, ἔδωκα, δέδωκα, δέδομαι, ἐδόθην % 9 % MI_VERB\n")},
		"skip.notes": {Data: []byte("not a verb file")},
	}
	l, err := NewFS(fsys)
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	verbs := l.Verbs()
	assert.Equal(t, 1, verbs[0].ID)
	assert.Equal(t, 2, verbs[1].ID)
	assert.True(t, verbs[1].Properties.Has(MiVerb))

	_, err = NewFS(fsys, WithGlob("**/*.csv"))
	assert.Error(t, err)
}

func TestParseVerbRecord(t *testing.T) {
	v, err := ParseVerbRecord(7, "βλάπτω, βλάψω, ἔβλαψα, βέβλαφα, βέβλαμμαι, ἐβλάφθην / ἐβλάβην % 4 % CONSONANT_STEM_PERFECT_BETA")
	require.NoError(t, err)
	assert.Equal(t, 7, v.ID)
	assert.Equal(t, 4, v.Unit)
	assert.True(t, v.Properties.Has(ConsonantStemPerfectBeta))
	assert.Equal(t, []string{grapheme.Normalize("ἐβλάφθην"), grapheme.Normalize("ἐβλάβην")}, v.alternates(6))

	v, err = ParseVerbRecord(1, "ἥκω, ἥξω, -, —, —, —")
	require.NoError(t, err)
	assert.True(t, v.blank(3), "hyphen is normalized to the blank marker")
	assert.Equal(t, BlankPart, v.PrincipalPart(3))

	_, err = ParseVerbRecord(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι % 2 % NONE")
	assert.ErrorIs(t, err, ErrPrincipalPartCount)

	_, err = ParseVerbRecord(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι, ἐλύθην % two % NONE")
	assert.Error(t, err)

	_, err = ParseVerbRecord(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι, ἐλύθην % 2 % NOT_A_FLAG")
	assert.Error(t, err)
}

func TestReadVerbsReportsLine(t *testing.T) {
	_, err := ReadVerbs(strings.NewReader("# header\nλῡ́ω, λῡ́σω\n"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.ErrorIs(t, err, ErrPrincipalPartCount)
}

func TestStripEnding(t *testing.T) {
	l := loadLexicon(t)
	tests := []struct {
		lemma string
		part  int
		want  string
	}{
		{"λῡ́ω", 1, "λῡ"},
		{"λῡ́ω", 3, "ἐλῡσ"},
		{"λῡ́ω", 6, "ἐλυθη"},
		{"δίδωμι", 1, "διδω"},
		{"βλάπτω", 5, "βεβλαβ"},
		{"τῑμάω", 1, "τῑμα"},
		{"ἀφικνέομαι", 5, "ἀφῑκ"},
		{"ἀφικνέομαι", 1, "ἀφικνε"},
	}
	for _, tt := range tests {
		got, err := StripEnding(mustVerb(t, l, tt.lemma), tt.part)
		require.NoError(t, err, "%s %d", tt.lemma, tt.part)
		assert.Equal(t, grapheme.Normalize(tt.want), got, "%s %d", tt.lemma, tt.part)
	}

	_, err := StripEnding(mustVerb(t, l, "ἐθέλω"), 5)
	assert.ErrorIs(t, err, ErrBlankPrincipalPart)
}

func TestVerbPrincipalPartCount(t *testing.T) {
	_, err := NewVerb(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι", 0, 2)
	require.ErrorIs(t, err, ErrPrincipalPartCount)
	_, err = NewVerb(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι, ἐλύθην, ἐλύθην", 0, 2)
	require.ErrorIs(t, err, ErrPrincipalPartCount)
	v, err := NewVerb(1, "λῡ́ω, λῡ́σω, ἔλῡσα, λέλυκα, λέλυμαι, ἐλύθην", 0, 2)
	require.NoError(t, err)
	assert.Len(t, v.PrincipalParts(), 6)
}

func TestDeponentType(t *testing.T) {
	l := loadLexicon(t)
	tests := map[string]DeponentType{
		"λῡ́ω":      NotDeponent,
		"βούλομαι": PassiveDeponent,
		"μάχομαι":  MiddleDeponent,
		"ἡγέομαι":  MiddleDeponentWithPassive,
		"γίγνομαι": GignomaiDeponent,
		"ἔρχομαι":  PartialDeponent,
	}
	for lemma, want := range tests {
		assert.Equal(t, want, mustVerb(t, l, lemma).DeponentType(), lemma)
	}
}
