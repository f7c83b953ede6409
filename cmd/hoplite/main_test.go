package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremymarch/hoplite-verbs-rs-sub000/grapheme"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--data", "../../data", "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hoplite version "+Version+"\n", out)
}

func TestFormCommand(t *testing.T) {
	out, err := run(t, "form", "--verb", "λῡω", "--tense", "aorist", "--person", "1", "--number", "sg")
	require.NoError(t, err)
	assert.Equal(t, grapheme.Normalize("ἔλῡσα")+"\n", out)

	out, err = run(t, "form", "--verb", "λῡω", "--tense", "aorist", "--person", "1", "--number", "sg", "--steps")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4)
}

func TestFormCommandErrors(t *testing.T) {
	_, err := run(t, "form", "--verb", "ἀγαπάω", "--person", "1", "--number", "sg")
	assert.ErrorContains(t, err, "unknown verb")

	_, err = run(t, "form", "--verb", "λῡω", "--mood", "imperative", "--person", "1", "--number", "sg")
	assert.ErrorContains(t, err, "IllegalForm")

	_, err = run(t, "form")
	assert.Error(t, err, "--verb is required")
}

func TestParadigmCommand(t *testing.T) {
	out, err := run(t, "paradigm", "--verb", "εἰμί")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.Contains(t, lines[1], grapheme.Normalize("εἰμί"))
}

func TestExportCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "forms.db")
	out, err := run(t, "export", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "exported")
	assert.Contains(t, out, db)
}

func TestParseRequest(t *testing.T) {
	r, err := parseRequest(nil, "aorist", "passive", "participle", "", "pl", "fem", "gen")
	require.NoError(t, err)
	assert.Equal(t, "aorist passive participle feminine genitive plural", r.String())

	_, err = parseRequest(nil, "present", "active", "indicative", "4", "", "", "")
	assert.Error(t, err)
}
