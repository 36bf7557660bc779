// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"log/slog"
	"strings"

	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/pkg/types"
)

// State is the state of a Scanner.
type State int

const (
	// StateScanning is the initial state: lines are parsed as they arrive.
	StateScanning State = iota
	// StateStopped is terminal. It is entered at the first line without
	// content and is never left.
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "scanning"
}

// ScanStats counts what a Scanner did with its lines.
type ScanStats struct {
	// Lines is the number of lines examined, including the terminating one.
	Lines int
	// Matched is the number of lines that produced an entry.
	Matched int
	// Skipped is the number of content lines that produced no entry.
	Skipped int
	// StoppedAt is the 1-based number of the terminating line, or 0 when
	// the input ran out first.
	StoppedAt int
}

// Scanner accumulates entries from the lines of one document, in order.
type Scanner struct {
	table   *medicines.Table
	opts    ParseOptions
	state   State
	entries []types.MedicineEntry
	stats   ScanStats
}

// NewScanner returns a Scanner in StateScanning. logger may be nil.
func NewScanner(table *medicines.Table, logger *slog.Logger) *Scanner {
	opts := DefaultParseOptions()
	opts.Logger = logger
	return &Scanner{
		table:   table,
		opts:    opts,
		entries: []types.MedicineEntry{},
	}
}

// Feed processes the next line and reports whether the scanner is still
// accepting lines. Once stopped, Feed ignores its input.
func (s *Scanner) Feed(line string) bool {
	if s.state == StateStopped {
		return false
	}
	s.stats.Lines++

	if !IsContentLine(line) {
		s.state = StateStopped
		s.stats.StoppedAt = s.stats.Lines
		return false
	}

	res := ParseLine(line, s.table, s.opts)
	if !res.OK() {
		s.stats.Skipped++
		return true
	}
	s.entries = append(s.entries, res.Entry)
	s.stats.Matched++
	return true
}

// State returns the current state.
func (s *Scanner) State() State { return s.state }

// Entries returns the entries accumulated so far.
func (s *Scanner) Entries() []types.MedicineEntry { return s.entries }

// Stats returns the line counters.
func (s *Scanner) Stats() ScanStats { return s.stats }

// Extract returns the entries of document, one per recognised line, up to
// the first empty or whitespace-only line. Lines naming an unknown medicine
// are skipped. Extract never fails.
func Extract(document string, table *medicines.Table) []types.MedicineEntry {
	entries, _ := ExtractWithStats(document, table, nil)
	return entries
}

// ExtractWithStats is Extract that also returns the scan counters and
// sends per-line diagnostics to logger, which may be nil.
func ExtractWithStats(document string, table *medicines.Table, logger *slog.Logger) ([]types.MedicineEntry, ScanStats) {
	sc := NewScanner(table, logger)
	for _, line := range strings.Split(document, "\n") {
		if !sc.Feed(line) {
			break
		}
	}
	return sc.Entries(), sc.Stats()
}
