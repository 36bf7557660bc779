// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls medicine codes and dosages out of line-oriented
// text. Each line names a medicine followed by its dosage; the first empty
// or whitespace-only line ends the document.
package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/pkg/types"
)

// ResultWriter receives the result of each processed document.
type ResultWriter interface {
	Write(result types.ExtractionResult) error
}

// BatchSummary holds counts from a batch extraction run.
type BatchSummary struct {
	Extracted int
	Failed    int
	Entries   int
}

// Total returns the number of documents processed.
func (s BatchSummary) Total() int {
	return s.Extracted + s.Failed
}

// HasFailures reports whether any document could not be read.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// lineBreaks maps CRLF and lone CR line endings to LF.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadDocument returns the contents of the file at path with every line
// ending converted to "\n".
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", path, err)
	}
	return lineBreaks.Replace(string(data)), nil
}

// ExtractFile reads the document at path and extracts its entries.
func ExtractFile(path string, table *medicines.Table) (*types.ExtractionResult, error) {
	return extractFile(path, table, nil)
}

func extractFile(path string, table *medicines.Table, logger *slog.Logger) (*types.ExtractionResult, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	entries, stats := ExtractWithStats(doc, table, logger)
	if logger != nil {
		logger.Debug("document extracted",
			"source", path,
			"lines", stats.Lines,
			"matched", stats.Matched,
			"skipped", stats.Skipped,
			"stopped_at", stats.StoppedAt)
	}

	return &types.ExtractionResult{
		Source:  path,
		Entries: entries,
	}, nil
}

// ExtractAll extracts every document in paths, in order, and passes each
// result to out. Progress lines go to w. A document that cannot be read is
// reported, counted as failed, and handed to out with its Error set; the
// remaining documents are still processed. An error from out stops the run.
func ExtractAll(ctx context.Context, paths []string, table *medicines.Table, out ResultWriter, w io.Writer, logger *slog.Logger) (BatchSummary, error) {
	var summary BatchSummary

	for _, path := range paths {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		fmt.Fprintf(w, "Extracting from %s\n", path)

		result, err := extractFile(path, table, logger)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			if logger != nil {
				logger.Debug("extraction failed", "source", path, "error", err)
			}
			summary.Failed++
			result = &types.ExtractionResult{
				Source:  path,
				Entries: []types.MedicineEntry{},
				Error:   err.Error(),
			}
		} else {
			summary.Extracted++
			summary.Entries += len(result.Entries)
		}

		if err := out.Write(*result); err != nil {
			return summary, fmt.Errorf("writing result for %s: %w", path, err)
		}
	}

	return summary, nil
}
