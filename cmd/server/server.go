package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"

	hoplite "github.com/jeremymarch/hoplite-verbs-rs-sub000"
	"github.com/jeremymarch/hoplite-verbs-rs-sub000/paradigm"
)

// ---- JSON response types ------------------------------------------------

type verbJSON struct {
	ID             int      `json:"id"`
	Lemma          string   `json:"lemma"`
	PrincipalParts []string `json:"principal_parts"`
	Unit           int      `json:"unit"`
	Deponent       string   `json:"deponent"`
}

type verbsResponse struct {
	Verbs []verbJSON `json:"verbs"`
}

type stepJSON struct {
	Form        string `json:"form"`
	Explanation string `json:"explanation"`
}

type formResponse struct {
	Verb    string     `json:"verb"`
	Request string     `json:"request"`
	Form    string     `json:"form"`
	Steps   []stepJSON `json:"steps"`
}

type paradigmResponse struct {
	Verb  verbJSON        `json:"verb"`
	Cells []paradigm.Cell `json:"cells"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ---- server -------------------------------------------------------------

// server answers API requests from the current lexicon, which reload may
// swap at any time.
type server struct {
	lexicon atomic.Pointer[hoplite.Lexicon]
	builder *paradigm.Builder
	metrics *metrics
	logger  *slog.Logger
}

func newServer(lex *hoplite.Lexicon, b *paradigm.Builder, m *metrics, logger *slog.Logger) *server {
	s := &server{builder: b, metrics: m, logger: logger}
	s.lexicon.Store(lex)
	return s
}

// handler wires the routes behind request ids, metrics and CORS.
func (s *server) handler(allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/verbs", s.instrument("verbs", s.handleVerbs))
	mux.Handle("/api/form", s.instrument("form", s.handleForm))
	mux.Handle("/api/paradigm", s.instrument("paradigm", s.handleParadigm))
	mux.Handle("/metrics", s.metrics.handler())

	opts := cors.Options{AllowedMethods: []string{http.MethodGet}}
	if len(allowedOrigins) > 0 {
		opts.AllowedOrigins = allowedOrigins
	}
	return cors.New(opts).Handler(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) instrument(route string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		h(rec, r)
		s.metrics.observe(route, rec.status, time.Since(start))
		s.logger.Debug("request", "id", id, "route", route, "status", rec.status, "query", r.URL.RawQuery)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode error", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toVerbJSON(v *hoplite.Verb) verbJSON {
	return verbJSON{
		ID:             v.ID,
		Lemma:          v.Lemma(),
		PrincipalParts: v.PrincipalParts(),
		Unit:           v.Unit,
		Deponent:       v.DeponentType().String(),
	}
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleVerbs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	verbs := s.lexicon.Load().Verbs()
	out := make([]verbJSON, 0, len(verbs))
	for _, v := range verbs {
		out = append(out, toVerbJSON(v))
	}
	writeJSON(w, http.StatusOK, verbsResponse{Verbs: out})
}

func (s *server) lookup(w http.ResponseWriter, r *http.Request) (*hoplite.Verb, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return nil, false
	}
	lemma := r.URL.Query().Get("verb")
	if lemma == "" {
		writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
		return nil, false
	}
	v := s.lexicon.Load().Verb(lemma)
	if v == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("verb %q not found", lemma))
		return nil, false
	}
	return v, true
}

func (s *server) handleForm(w http.ResponseWriter, r *http.Request) {
	v, ok := s.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	req, err := parseRequest(v, q.Get("tense"), q.Get("voice"), q.Get("mood"),
		q.Get("person"), q.Get("number"), q.Get("gender"), q.Get("case"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	decompose := q.Get("decompose") == "true"
	steps, err := req.Form(decompose)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, hoplite.ErrInternal) || errors.Is(err, hoplite.ErrUnexpectedPrincipalPartEnding) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, errorResponse{Error: err.Error(), Kind: hoplite.Kind(err)})
		return
	}
	out := make([]stepJSON, len(steps))
	for i, st := range steps {
		out[i] = stepJSON{Form: st.Form, Explanation: st.Explanation}
	}
	writeJSON(w, http.StatusOK, formResponse{
		Verb:    v.Lemma(),
		Request: req.String(),
		Form:    steps[len(steps)-1].Form,
		Steps:   out,
	})
}

func (s *server) handleParadigm(w http.ResponseWriter, r *http.Request) {
	v, ok := s.lookup(w, r)
	if !ok {
		return
	}
	t, err := s.builder.Build(r.Context(), v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, paradigmResponse{Verb: toVerbJSON(v), Cells: t.Cells})
}

// parseRequest reads textual categories; tense, voice and mood default to
// present active indicative.
func parseRequest(v *hoplite.Verb, tense, voice, mood, person, number, gender, gramCase string) (hoplite.FormRequest, error) {
	var r hoplite.FormRequest
	var err error
	if r.Tense, err = parseOr(tense, hoplite.ParseTense); err != nil {
		return r, err
	}
	if r.Voice, err = parseOr(voice, hoplite.ParseVoice); err != nil {
		return r, err
	}
	if r.Mood, err = parseOr(mood, hoplite.ParseMood); err != nil {
		return r, err
	}
	if r.Person, err = parseOr(person, hoplite.ParsePerson); err != nil {
		return r, err
	}
	if r.Number, err = parseOr(number, hoplite.ParseNumber); err != nil {
		return r, err
	}
	if r.Gender, err = parseOr(gender, hoplite.ParseGender); err != nil {
		return r, err
	}
	if r.Case, err = parseOr(gramCase, hoplite.ParseCase); err != nil {
		return r, err
	}
	r.Verb = v
	return r, nil
}

// parseOr returns the zero value for an empty string.
func parseOr[T any](s string, parse func(string) (T, error)) (T, error) {
	var zero T
	if s == "" {
		return zero, nil
	}
	return parse(s)
}
