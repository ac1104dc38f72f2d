package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/surveyclean/internal/clean"
	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/exitcode"
	"github.com/gyeh/surveyclean/internal/logging"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a raw survey CSV and write the typed table",
	RunE:  runClean,
}

func init() {
	f := cleanCmd.Flags()
	f.StringVar(&cfg.InputPath, "input", config.DefaultInputPath, "Path to the raw survey CSV")
	f.StringVar(&cfg.OutputPath, "output", config.DefaultOutputPath, "Path of the cleaned output file")
	f.StringVar(&formatFlag, "format", "", "Output format: csv or parquet (default from --output extension)")
	f.StringVar(&outputNullFlag, "output-null", "", "Marker written for null integers in CSV output")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfg.Format == "" && strings.EqualFold(filepath.Ext(cfg.OutputPath), ".parquet") {
		cfg.Format = config.FormatParquet
	}
	if err := cfg.ValidateOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := clean.Run(log, &cfg)
	if err != nil {
		var pe *clean.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("clean failed")
			switch pe.Phase {
			case "read":
				os.Exit(exitcode.ReadError)
			case "project":
				os.Exit(exitcode.ValidationError)
			case "write":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.UsageError)
			}
		}
		log.Error().Err(err).Msg("clean failed")
		os.Exit(exitcode.WriteError)
	}

	fmt.Printf("Clean complete: %d rows read, %d rows written to %s (%d cells changed, %.1fs)\n",
		summary.RowsRead, summary.RowsWritten, summary.OutputPath,
		summary.TotalCellsChanged(), summary.DurationTotal.Seconds())
	return nil
}
