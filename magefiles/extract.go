//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleDocuments are written to data/ by Samples. Each one exercises a
// different stopping rule of the extractor.
var sampleDocuments = map[string]string{
	"input1.data": "Aspirin 75mg daily\nPANADOL 1000mg WHEN NEEDED MAX FOUR TIMES DAILY\nPenicillin 500mg daily\nParacetamol\n",
	"input2.data": "Aspirin 75mg daily\nPANADOL 1000mg WHEN NEEDED MAX FOUR TIMES DAILY\n\nPenicillin 500mg daily\n",
	"input3.data": "Aspirin 75mg daily\nIbuprofen 200mg every six hours\nPanadol   1000mg WHEN NEEDED MAX FOUR TIMES daily  \n   \nPenicillin 500mg daily\n",
}

// Samples writes the sample documents into data/.
func Samples() error {
	mg.Deps(Init)
	for name, content := range sampleDocuments {
		path := filepath.Join("data", name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}

// Extract builds the CLI and runs it over the sample documents.
func Extract() error {
	mg.Deps(Build, Samples)
	return sh.RunV(filepath.Join(binDir, binName), "extract",
		filepath.Join("data", "input1.data"),
		filepath.Join("data", "input2.data"),
		filepath.Join("data", "input3.data"))
}
