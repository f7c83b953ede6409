// Package paradigm builds complete verb paradigms on a worker pool.
package paradigm

import (
	"context"
	"log/slog"
	"runtime"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
)

// Cell is one generated paradigm slot.
type Cell struct {
	Label      string         `json:"label"`
	Tense      hoplite.Tense  `json:"-"`
	Voice      hoplite.Voice  `json:"-"`
	Mood       hoplite.Mood   `json:"-"`
	Person     hoplite.Person `json:"-"`
	Number     hoplite.Number `json:"-"`
	Gender     hoplite.Gender `json:"-"`
	Case       hoplite.Case   `json:"-"`
	Form       string         `json:"form,omitempty"`
	Decomposed string         `json:"decomposed,omitempty"`
	// Kind is the failure class when no form exists, e.g. "BlankPrincipalPart".
	Kind string `json:"error,omitempty"`
	Err  error  `json:"-"`
}

// OK reports whether the cell holds a form.
func (c Cell) OK() bool { return c.Err == nil }

// Request rebuilds the request the cell was generated from.
func (c Cell) Request(v *hoplite.Verb) hoplite.FormRequest {
	return hoplite.FormRequest{Verb: v, Person: c.Person, Number: c.Number, Tense: c.Tense,
		Voice: c.Voice, Mood: c.Mood, Gender: c.Gender, Case: c.Case}
}

// Table is the paradigm of one verb in canonical order.
type Table struct {
	Verb  *hoplite.Verb
	Cells []Cell
}

// Builder generates paradigms.
type Builder struct {
	workers int
	logger  *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers sets the pool size. Values below one mean GOMAXPROCS.
func WithWorkers(n int) Option { return func(b *Builder) { b.workers = n } }

// WithLogger sets the builder's logger.
func WithLogger(l *slog.Logger) Option { return func(b *Builder) { b.logger = l } }

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{logger: slog.Default()}
	for _, o := range opts {
		o(b)
	}
	if b.workers < 1 {
		b.workers = runtime.GOMAXPROCS(0)
	}
	return b
}

// Requests lists every legal cell of v: finite forms by tense, voice and
// mood, then the infinitive, then participles by gender, number and case.
func Requests(v *hoplite.Verb) []hoplite.FormRequest {
	var out []hoplite.FormRequest
	add := func(r hoplite.FormRequest) {
		if hoplite.IsLegalForm(r) {
			out = append(out, r)
		}
	}
	for _, t := range hoplite.Tenses {
		for _, vo := range hoplite.Voices {
			for _, m := range hoplite.Moods {
				switch {
				case m.IsFinite():
					for _, n := range hoplite.Numbers {
						for _, p := range hoplite.Persons {
							add(hoplite.NewFormRequest(v, t, vo, m, hoplite.WithPerson(p), hoplite.WithNumber(n)))
						}
					}
				case m == hoplite.Infinitive:
					add(hoplite.NewFormRequest(v, t, vo, m))
				default:
					for _, g := range hoplite.Genders {
						for _, n := range hoplite.Numbers {
							for _, k := range hoplite.Cases {
								add(hoplite.NewFormRequest(v, t, vo, m,
									hoplite.WithGender(g), hoplite.WithNumber(n), hoplite.WithCase(k)))
							}
						}
					}
				}
			}
		}
	}
	return out
}

// Build generates every cell of v. Failed cells are kept with their error
// kind; only illegal combinations are left out.
func (b *Builder) Build(ctx context.Context, v *hoplite.Verb) (Table, error) {
	reqs := Requests(v)
	cells := make([]Cell, len(reqs))
	pool := NewWorkerPool(b.workers, len(reqs))
	pool.Start(ctx)
	for i, r := range reqs {
		i, r := i, r
		err := pool.Submit(func(context.Context) {
			cells[i] = generate(r)
		})
		if err != nil {
			pool.Close()
			return Table{}, err
		}
	}
	pool.Close()
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	failed := 0
	for _, c := range cells {
		if !c.OK() {
			failed++
		}
	}
	b.logger.Debug("paradigm built", "verb", v.Lemma(), "cells", len(cells), "missing", failed)
	return Table{Verb: v, Cells: cells}, nil
}

// BuildAll builds the paradigm of each verb in order.
func (b *Builder) BuildAll(ctx context.Context, verbs []*hoplite.Verb) ([]Table, error) {
	tables := make([]Table, 0, len(verbs))
	for _, v := range verbs {
		t, err := b.Build(ctx, v)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	b.logger.Info("paradigms built", "verbs", len(tables))
	return tables, nil
}

func generate(r hoplite.FormRequest) Cell {
	c := Cell{
		Label: r.String(), Tense: r.Tense, Voice: r.Voice, Mood: r.Mood,
		Person: r.Person, Number: r.Number, Gender: r.Gender, Case: r.Case,
	}
	form, err := r.Surface()
	if err != nil {
		c.Err, c.Kind = err, hoplite.Kind(err)
		return c
	}
	c.Form = form
	if steps, err := r.Form(true); err == nil {
		c.Decomposed = steps[len(steps)-1].Form
	}
	return c
}
