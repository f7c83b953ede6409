package paradigm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func loadVerb(t *testing.T, lemma string) *hoplite.Verb {
	t.Helper()
	l, err := hoplite.New("../data")
	require.NoError(t, err)
	v := l.Verb(lemma)
	require.NotNil(t, v, lemma)
	return v
}

func find(tb Table, label string) (Cell, bool) {
	for _, c := range tb.Cells {
		if c.Label == label {
			return c, true
		}
	}
	return Cell{}, false
}

func TestRequestsAreLegal(t *testing.T) {
	v := loadVerb(t, "λῡ́ω")
	reqs := Requests(v)
	require.NotEmpty(t, reqs)
	for _, r := range reqs {
		assert.True(t, hoplite.IsLegalForm(r), r.String())
	}
	first := reqs[0]
	assert.Equal(t, hoplite.Present, first.Tense)
	assert.Equal(t, hoplite.Active, first.Voice)
	assert.Equal(t, hoplite.Indicative, first.Mood)
	assert.Equal(t, hoplite.First, first.Person)
	assert.Equal(t, hoplite.Singular, first.Number)
}

func TestBuild(t *testing.T) {
	v := loadVerb(t, "λῡ́ω")
	b := NewBuilder(WithWorkers(3))
	tb, err := b.Build(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, v, tb.Verb)
	assert.Len(t, tb.Cells, len(Requests(v)))

	aorist := hoplite.NewFormRequest(v, hoplite.Aorist, hoplite.Active, hoplite.Indicative,
		hoplite.WithPerson(hoplite.First), hoplite.WithNumber(hoplite.Singular))
	c, ok := find(tb, aorist.String())
	require.True(t, ok)
	assert.True(t, c.OK())
	assert.Equal(t, grapheme.Normalize("ἔλῡσα"), c.Form)
	assert.Equal(t, grapheme.Normalize("ἐ - λῡσ - α"), c.Decomposed)
	assert.Equal(t, aorist, c.Request(v))

	for _, c := range tb.Cells {
		if c.Mood == hoplite.Infinitive {
			assert.NotEqual(t, hoplite.Imperfect, c.Tense, c.Label)
		}
	}
}

func TestBuildRecordsMissingForms(t *testing.T) {
	v := loadVerb(t, "ἐθέλω")
	tb, err := NewBuilder().Build(context.Background(), v)
	require.NoError(t, err)

	missing := 0
	for _, c := range tb.Cells {
		if !c.OK() {
			missing++
			assert.Empty(t, c.Form)
			assert.NotEmpty(t, c.Kind, c.Label)
		}
	}
	assert.Positive(t, missing, "blank fifth principal part leaves gaps")
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewBuilder(WithWorkers(1)).Build(ctx, loadVerb(t, "λῡ́ω"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildAll(t *testing.T) {
	verbs := []*hoplite.Verb{loadVerb(t, "λῡ́ω"), loadVerb(t, "εἰμί")}
	tables, err := NewBuilder(WithWorkers(2)).BuildAll(context.Background(), verbs)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, verbs[1], tables[1].Verb)
}
