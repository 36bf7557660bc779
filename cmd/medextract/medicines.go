// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/internal/report"
)

var medicinesCmd = &cobra.Command{
	Use:   "medicines",
	Short: "Show the medicine lookup table",
	Long: `Medicines prints the lookup table used by extract: the built-in table,
or the one named by --medicines. Names are shown lower-cased, sorted by
code.

Use --write to save the table as YAML, as a starting point for a custom
table file.`,
	RunE: runMedicines,
}

func runMedicines(cmd *cobra.Command, args []string) error {
	table, err := medicines.Resolve(appConfig.Lookup.MedicinesFile)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("write"); path != "" {
		if err := medicines.WriteFile(path, table); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d medicines to %s\n", table.Len(), path)
		return nil
	}

	return report.WriteTable(cmd.OutOrStdout(), appConfig.Report.Format, table)
}

func init() {
	medicinesCmd.Flags().String("write", "", "write the table to this YAML file instead of printing it")

	rootCmd.AddCommand(medicinesCmd)
}
