// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/pkg/types"
)

// WriteTable renders the contents of a lookup table in format.
func WriteTable(w io.Writer, format types.OutputFormat, table *medicines.Table) error {
	entries := table.Entries()

	switch format {
	case types.OutputText, "":
		fmt.Fprintf(w, "%-6s  %s\n", "Code", "Name")
		fmt.Fprintln(w, strings.Repeat("-", 30))
		for _, e := range entries {
			fmt.Fprintf(w, "%-6d  %s\n", e.Code, e.Name)
		}
		_, err := fmt.Fprintf(w, "\n%d medicines\n", len(entries))
		return err
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case types.OutputYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
