// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medextract CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/medication-extractor/internal/logging"
	"github.com/pdiddy/medication-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// appConfig is resolved from flags, environment and config file before
	// any subcommand runs.
	appConfig types.Config

	logger    = slog.Default()
	logCloser io.Closer
)

// rootCmd is the base command for the medextract CLI.
var rootCmd = &cobra.Command{
	Use:   "medextract",
	Short: "Extract medicine codes and dosages from text documents",
	Long: `medextract reads line-oriented documents in which each line names a
medicine followed by its dosage, and reports the medicine code and dosage
of every line whose medicine is known. Reading stops at the first empty
line of a document. Lines naming unknown medicines are skipped.

Medicine names are matched case-insensitively against a lookup table.
A built-in table is used unless --medicines names a YAML table file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// extract without files does nothing, whatever the configuration.
		if cmd == extractCmd && len(args) == 0 {
			return nil
		}

		initConfig(cmd)
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		appConfig = cfg

		l, closer, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		logCloser = closer
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./medextract.yaml or ~/.config/medextract/medextract.yaml)")
	flags.String("medicines", "", "YAML file mapping medicine names to codes (default: built-in table)")
	flags.String("format", string(types.OutputText), "output format: text, json, or yaml")
	flags.BoolP("verbose", "v", false, "log a notice for every skipped line")
	flags.String("log-file", "", "also write JSON logs to this file (rotated by size)")

	viper.SetDefault("report.format", string(types.OutputText))
	mustBind("lookup.medicines_file", "medicines")
	mustBind("report.format", "format")
	mustBind("logging.verbose", "verbose")
	mustBind("logging.log_file", "log-file")
}

func mustBind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// initConfig points viper at the config file and the environment. Keys
// follow the yaml layout of types.Config, so report.format is set by
//
//	report:
//	  format: json
//
// or by MEDEXTRACT_REPORT_FORMAT.
func initConfig(cmd *cobra.Command) {
	cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medextract"))
		}
	}

	viper.SetEnvPrefix("MEDEXTRACT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects the settings held by v into a types.Config.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Lookup: types.LookupConfig{
			MedicinesFile: v.GetString("lookup.medicines_file"),
		},
		Report: types.ReportConfig{
			Format: types.OutputFormat(strings.ToLower(v.GetString("report.format"))),
		},
		Logging: types.LoggingConfig{
			Verbose:    v.GetBool("logging.verbose"),
			LogFile:    v.GetString("logging.log_file"),
			MaxSizeMB:  v.GetInt("logging.max_size_mb"),
			MaxBackups: v.GetInt("logging.max_backups"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
