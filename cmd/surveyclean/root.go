package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/logging"
)

var (
	cfg            config.Config
	configPath     string
	logLevel       string
	formatFlag     string
	outputNullFlag string
)

var rootCmd = &cobra.Command{
	Use:          "surveyclean",
	Short:        "Mental-health survey CSV cleaner",
	Long:         "Normalizes a raw tech mental-health survey export into a typed 24-column table, optionally loading it into Postgres via the COPY protocol.",
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.SetLevel(logLevel); err != nil {
			return err
		}
		if configPath != "" {
			if err := cfg.LoadFromFile(configPath); err != nil {
				return err
			}
		}
		// Explicit flags beat the config file.
		if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
			cfg.Format = formatFlag
		}
		if f := cmd.Flags().Lookup("output-null"); f != nil && f.Changed {
			cfg.OutputNull = outputNullFlag
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&configPath, "config", "", "Optional YAML config file (format, null_markers, output_null)")
}
