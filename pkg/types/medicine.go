// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MedicineEntry is one recognised line of a document: the code of the
// medicine named at the start of the line and the dosage text after it.
type MedicineEntry struct {
	// Code is the medicine code from the lookup table. Synonyms share a code.
	Code int `json:"code" yaml:"code"`

	// Dosage is the rest of the line after the first space, trimmed of
	// surrounding whitespace. Empty when the line holds only a name.
	Dosage string `json:"dosage" yaml:"dosage"`
}

// ExtractionResult holds the entries extracted from a single document.
type ExtractionResult struct {
	// Source is the path the document was read from. Empty for in-memory text.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Entries are in the order of their source lines. Duplicates are kept.
	Entries []MedicineEntry `json:"entries" yaml:"entries"`

	// Error records a read failure for Source. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
