package hoplite

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// recordSeparator splits a verb record into parts, unit and flags.
const recordSeparator = "%"

// ParseVerbRecord parses one line of the verb list:
//
//	λύω, λύσω, ἔλυσα, λέλυκα, λέλυμαι, ἐλύθην % 2 % NONE
//
// The unit and flag fields are optional.
func ParseVerbRecord(id int, line string) (*Verb, error) {
	fields := strings.Split(line, recordSeparator)
	if len(fields) > 3 {
		return nil, fmt.Errorf("verb record %q: too many %q fields", line, recordSeparator)
	}
	unit := 0
	if len(fields) > 1 {
		u := strings.TrimSpace(fields[1])
		if u != "" {
			n, err := strconv.Atoi(u)
			if err != nil {
				return nil, fmt.Errorf("verb record %q: unit: %w", line, err)
			}
			unit = n
		}
	}
	var props Properties
	if len(fields) > 2 {
		p, err := ParseProperties(fields[2])
		if err != nil {
			return nil, fmt.Errorf("verb record %q: %w", line, err)
		}
		props = p
	}
	return NewVerb(id, fields[0], props, unit)
}

// ReadVerbs reads verb records from r, numbering them from firstID.
// Blank lines and lines starting with # are skipped.
func ReadVerbs(r io.Reader, firstID int) ([]*Verb, error) {
	var verbs []*Verb
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := ParseVerbRecord(firstID+len(verbs), line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		verbs = append(verbs, v)
	}
	return verbs, sc.Err()
}

// LoadVerbs reads the verb file at path in fsys.
func LoadVerbs(fsys fs.FS, path string, firstID int) ([]*Verb, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	verbs, err := ReadVerbs(f, firstID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return verbs, nil
}
