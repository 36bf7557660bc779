// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extraction results for people and for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medication-extractor/pkg/types"
)

// Sink writes extraction results somewhere.
type Sink interface {
	Write(result types.ExtractionResult) error
}

// New returns the sink for format writing to w. An empty format selects text.
func New(format types.OutputFormat, w io.Writer) (Sink, error) {
	switch format {
	case types.OutputText, "":
		return NewTextSink(w), nil
	case types.OutputJSON:
		return NewJSONSink(w), nil
	case types.OutputYAML:
		return NewYAMLSink(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextSink prints the entries of each result as a list literal, for example
// [[2, '75mg daily'], [1, '']]. Failed results print nothing; their error is
// reported by the caller.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) Write(result types.ExtractionResult) error {
	if result.Error != "" {
		return nil
	}
	_, err := fmt.Fprintln(s.w, FormatEntries(result.Entries))
	return err
}

// FormatEntries renders entries as a list of [code, 'dosage'] pairs.
func FormatEntries(entries []types.MedicineEntry) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.Code))
		b.WriteString(", ")
		b.WriteString(quote(e.Dosage))
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// quote wraps s in single quotes, or in double quotes when s holds a single
// quote and no double quote. Backslashes, the chosen quote and
// non-printable characters are escaped.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == '\\' || r == q:
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}

// JSONSink writes each result as an indented JSON document.
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink returns a JSONSink writing to w.
func NewJSONSink(w io.Writer) *JSONSink {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONSink{enc: enc}
}

func (s *JSONSink) Write(result types.ExtractionResult) error {
	if result.Entries == nil {
		result.Entries = []types.MedicineEntry{}
	}
	if err := s.enc.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// YAMLSink writes each result as a YAML document. Documents after the
// first are preceded by a --- separator.
type YAMLSink struct {
	enc *yaml.Encoder
}

// NewYAMLSink returns a YAMLSink writing to w. Call Close to flush.
func NewYAMLSink(w io.Writer) *YAMLSink {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLSink{enc: enc}
}

func (s *YAMLSink) Write(result types.ExtractionResult) error {
	if err := s.enc.Encode(&result); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// Close flushes the encoder.
func (s *YAMLSink) Close() error {
	return s.enc.Close()
}

// Close closes sink if it holds buffered output.
func Close(sink Sink) error {
	if c, ok := sink.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
