// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/pkg/types"
)

// IsContentLine reports whether line carries any text. An empty or
// whitespace-only line is the termination boundary of a document.
func IsContentLine(line string) bool {
	if len(line) == 0 {
		return false
	}
	return trimSpace(line) != ""
}

// isSpace extends unicode.IsSpace with the file, group, record and unit
// separators (U+001C to U+001F), which also count as blank.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Outcome classifies the result of parsing one line.
type Outcome int

const (
	// OutcomeMatched means the name was found and the entry is valid.
	OutcomeMatched Outcome = iota
	// OutcomeUnknownMedicine means the name is not in the table.
	OutcomeUnknownMedicine
	// OutcomeUnparseable means the line has no space and an empty dosage
	// was not allowed.
	OutcomeUnparseable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeUnknownMedicine:
		return "unknown medicine"
	case OutcomeUnparseable:
		return "unparseable"
	default:
		return "unknown"
	}
}

// LineResult is either a matched entry or the reason there is none.
type LineResult struct {
	Entry   types.MedicineEntry
	Outcome Outcome
}

// OK reports whether the line produced an entry.
func (r LineResult) OK() bool {
	return r.Outcome == OutcomeMatched
}

// ParseOptions controls ParseLine.
type ParseOptions struct {
	// AllowEmptyDosage accepts a line made of a name alone, giving an
	// empty dosage. When false such a line is OutcomeUnparseable.
	AllowEmptyDosage bool

	// Logger receives a debug notice for every line that yields no entry.
	// Nil disables the notices.
	Logger *slog.Logger
}

// DefaultParseOptions returns the options the document extractor uses.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{AllowEmptyDosage: true}
}

// ParseLine splits line at its first space into a medicine name and a
// dosage, and resolves the name in table. Only the space character
// separates the name; a tab before the first space is part of the name.
func ParseLine(line string, table *medicines.Table, opts ParseOptions) LineResult {
	name, rest, found := strings.Cut(line, " ")
	if !found && !opts.AllowEmptyDosage {
		if opts.Logger != nil {
			opts.Logger.Debug("unable to identify medicine and dosage", "line", line)
		}
		return LineResult{Outcome: OutcomeUnparseable}
	}

	code, ok := table.Lookup(name)
	if !ok {
		if opts.Logger != nil {
			opts.Logger.Debug("unknown medicine", "name", medicines.Normalize(name))
		}
		return LineResult{Outcome: OutcomeUnknownMedicine}
	}

	return LineResult{
		Entry: types.MedicineEntry{
			Code:   code,
			Dosage: trimSpace(rest),
		},
		Outcome: OutcomeMatched,
	}
}
