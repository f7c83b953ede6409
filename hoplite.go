// Package hoplite generates inflected forms of Ancient Greek verbs from their
// six principal parts, with the derivation steps that lead to each form.
package hoplite

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

// DefaultGlob selects the verb files of a data directory.
const DefaultGlob = "**/*.txt"

// Lexicon holds the loaded verbs. It is read-only after New and safe for
// concurrent use.
type Lexicon struct {
	verbs []*Verb

	// lemmas maps the normalized first principal part to its verb.
	lemmas map[string]*Verb

	// bare maps the unaccented lemma to the first verb carrying it.
	bare map[string]*Verb
}

type lexiconOptions struct {
	glob   string
	logger *slog.Logger
}

// LexiconOption configures New.
type LexiconOption func(*lexiconOptions)

// WithGlob sets the doublestar pattern of verb files.
func WithGlob(pattern string) LexiconOption {
	return func(o *lexiconOptions) { o.glob = pattern }
}

// WithLogger sets the logger used while loading.
func WithLogger(l *slog.Logger) LexiconOption {
	return func(o *lexiconOptions) { o.logger = l }
}

// New loads every verb file under dataDir.
func New(dataDir string, opts ...LexiconOption) (*Lexicon, error) {
	return NewFS(os.DirFS(dataDir), opts...)
}

// NewFS loads every matching verb file of fsys in lexical path order.
func NewFS(fsys fs.FS, opts ...LexiconOption) (*Lexicon, error) {
	o := lexiconOptions{glob: DefaultGlob, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	paths, err := doublestar.Glob(fsys, o.glob)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", o.glob, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no verb files match %q", o.glob)
	}
	sort.Strings(paths)
	var verbs []*Verb
	for _, p := range paths {
		vs, err := LoadVerbs(fsys, p, len(verbs)+1)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("loaded verb file", "path", p, "verbs", len(vs))
		verbs = append(verbs, vs...)
	}
	l := NewLexicon(verbs)
	o.logger.Info("lexicon loaded", "files", len(paths), "verbs", len(verbs))
	return l, nil
}

// NewLexicon indexes verbs. Later duplicates of a lemma are ignored.
func NewLexicon(verbs []*Verb) *Lexicon {
	l := &Lexicon{
		lemmas: make(map[string]*Verb, len(verbs)),
		bare:   make(map[string]*Verb, len(verbs)),
	}
	for _, v := range verbs {
		if _, dup := l.lemmas[v.Lemma()]; dup {
			continue
		}
		l.verbs = append(l.verbs, v)
		l.lemmas[v.Lemma()] = v
		if k := lookupKey(v.Lemma()); l.bare[k] == nil {
			l.bare[k] = v
		}
	}
	return l
}

// lookupKey drops accents so that "λυω" finds λύω. Breathings are kept.
func lookupKey(s string) string {
	return grapheme.StripAccent(grapheme.Normalize(s))
}

// Verb looks up a verb by its first principal part. An exact match wins
// over an accent-insensitive one. It returns nil when nothing matches.
func (l *Lexicon) Verb(lemma string) *Verb {
	lemma = grapheme.Normalize(lemma)
	if v := l.lemmas[lemma]; v != nil {
		return v
	}
	return l.bare[lookupKey(lemma)]
}

// Verbs returns the verbs in load order.
func (l *Lexicon) Verbs() []*Verb {
	out := make([]*Verb, len(l.verbs))
	copy(out, l.verbs)
	return out
}

// Len returns the number of verbs.
func (l *Lexicon) Len() int {
	return len(l.verbs)
}
