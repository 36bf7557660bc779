// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/medication-extractor/internal/extract"
	"github.com/pdiddy/medication-extractor/internal/medicines"
	"github.com/pdiddy/medication-extractor/internal/report"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract medicine codes and dosages from documents",
	Long: `Extract reads each file in turn and prints the (code, dosage) pairs of
its recognised lines, in line order. Reading a file stops at its first
empty or whitespace-only line.

A file that cannot be read is reported and the remaining files are still
processed; the command then exits with a non-zero status. With no files
the command does nothing.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}

	table, err := medicines.Resolve(appConfig.Lookup.MedicinesFile)
	if err != nil {
		return err
	}

	sink, err := report.New(appConfig.Report.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	summary, err := extract.ExtractAll(cmd.Context(), args, table, sink, cmd.ErrOrStderr(), logger)
	if cerr := report.Close(sink); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Debug("extraction finished",
		"documents", summary.Total(),
		"failed", summary.Failed,
		"entries", summary.Entries)

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", summary.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
