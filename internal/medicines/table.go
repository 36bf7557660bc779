// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package medicines holds the lookup table that maps medicine names to
// medicine codes. Several names may share a code when they refer to the same
// active ingredient. A Table is immutable once built and may be shared by
// any number of concurrent extractions.
package medicines

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validation errors returned by NewTable.
var (
	ErrEmptyTable      = errors.New("medicine table is empty")
	ErrEmptyName       = errors.New("medicine name is empty")
	ErrNameHasSpace    = errors.New("medicine name contains a space")
	ErrNegativeCode    = errors.New("medicine code is negative")
	ErrConflictingCode = errors.New("medicine name maps to conflicting codes")
)

// defaultMedicines is the built-in table. Paracetamol and panadol share
// code 1 because they are the same active ingredient.
var defaultMedicines = map[string]int{
	"paracetamol": 1,
	"panadol":     1,
	"aspirin":     2,
	"penicillin":  3,
}

var defaultTable = mustNewTable(defaultMedicines)

// Entry is a single name/code pair of a Table.
type Entry struct {
	Name string `json:"name" yaml:"name"`
	Code int    `json:"code" yaml:"code"`
}

// Table maps lower-cased medicine names to medicine codes.
type Table struct {
	codes map[string]int
}

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

// NewTable builds a Table from names to codes. Names are lower-cased; two
// spellings of one name must agree on the code.
func NewTable(medicines map[string]int) (*Table, error) {
	if len(medicines) == 0 {
		return nil, ErrEmptyTable
	}

	// Sorted so that conflicts are reported deterministically.
	names := make([]string, 0, len(medicines))
	for name := range medicines {
		names = append(names, name)
	}
	sort.Strings(names)

	codes := make(map[string]int, len(medicines))
	for _, name := range names {
		code := medicines[name]
		switch {
		case strings.TrimSpace(name) == "":
			return nil, ErrEmptyName
		case strings.Contains(name, " "):
			return nil, fmt.Errorf("%w: %q", ErrNameHasSpace, name)
		case code < 0:
			return nil, fmt.Errorf("%w: %q has code %d", ErrNegativeCode, name, code)
		}

		key := Normalize(name)
		if existing, ok := codes[key]; ok && existing != code {
			return nil, fmt.Errorf("%w: %q has codes %d and %d", ErrConflictingCode, key, existing, code)
		}
		codes[key] = code
	}

	return &Table{codes: codes}, nil
}

func mustNewTable(medicines map[string]int) *Table {
	t, err := NewTable(medicines)
	if err != nil {
		panic(fmt.Sprintf("medicines: invalid built-in table: %v", err))
	}
	return t
}

// Normalize returns the lookup key for a medicine name. Matching is exact
// after lower-casing; no other folding is applied.
func Normalize(name string) string {
	// A Caser keeps state, so one is made per call to keep Table safe
	// for concurrent use.
	return cases.Lower(language.Und).String(name)
}

// Lookup returns the code for name, ignoring case. A nil Table matches
// nothing.
func (t *Table) Lookup(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	code, ok := t.codes[Normalize(name)]
	return code, ok
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

// Entries returns the table contents sorted by code, then name.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.codes))
	for name, code := range t.codes {
		entries = append(entries, Entry{Name: name, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Code != entries[j].Code {
			return entries[i].Code < entries[j].Code
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}
