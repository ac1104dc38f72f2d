package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/db"
	"github.com/gyeh/surveyclean/internal/exitcode"
	"github.com/gyeh/surveyclean/internal/load"
	"github.com/gyeh/surveyclean/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a raw survey CSV or a cleaned Parquet file into Postgres",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.InputPath, "input", config.DefaultInputPath, "Raw survey CSV, or Parquet written by clean")
	f.BoolVar(&cfg.Force, "force", false, "Reload even if the file SHA was already loaded")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		code := exitcode.LoadError
		var pe *load.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight", "read":
				code = exitcode.ReadError
			case "validate":
				code = exitcode.ValidationError
			}
		} else {
			log.Error().Err(err).Msg("load failed")
		}
		// os.Exit skips deferred calls.
		pool.Close()
		os.Exit(code)
	}

	if summary.AlreadyLoaded {
		fmt.Printf("Already loaded as batch %s (use --force to reload)\n", summary.LoadBatchID)
		return nil
	}
	fmt.Printf("Load complete: %d rows in batch %s (%.1fs)\n",
		summary.RowsLoaded, summary.LoadBatchID, summary.DurationTotal.Seconds())
	return nil
}
