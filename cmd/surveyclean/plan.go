package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/surveyclean/internal/clean"
	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/csvio"
	"github.com/gyeh/surveyclean/internal/exitcode"
	"github.com/gyeh/surveyclean/internal/logging"
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/normalize"
)

const planTopValues = 10

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and cleaning stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.InputPath, "input", config.DefaultInputPath, "Path to the raw survey CSV")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ReadError)
	}

	table, err := csvio.NewReader(cfg.NullMarkers).ReadFile(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.ReadError)
	}

	fmt.Println("=== surveyclean plan ===")
	fmt.Printf("File:       %s\n", cfg.InputPath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Columns:    %d\n", len(table.Columns))
	fmt.Printf("Total rows: %d\n", table.Len())

	if missing := clean.MissingColumns(table.Columns); len(missing) > 0 {
		fmt.Printf("\nSchema validation: FAILED, missing %d column(s):\n", len(missing))
		for _, c := range missing {
			fmt.Printf("  %s\n", c)
		}
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("\nRaw values (most frequent):")
	for _, col := range []string{model.ColGender, model.ColNoEmployees} {
		fmt.Printf("  %s:\n", col)
		printCounts(rawCounts(table, col), planTopValues)
	}

	rows, changed, err := clean.CleanWithStats(table)
	if err != nil {
		log.Error().Err(err).Msg("clean failed")
		os.Exit(exitcode.ValidationError)
	}
	summary := model.NewCleanSummary()
	clean.Tally(summary, rows)

	fmt.Println("\nCleaned distribution:")
	fmt.Printf("  %s:\n", model.ColGender)
	printCounts(summary.GenderCounts, 0)
	fmt.Printf("  %s:\n", model.ColNoEmployees)
	printCounts(summary.CompanySizes, 0)
	fmt.Printf("  null %s: %d\n", model.ColAge, summary.NullAges)

	fmt.Println("\nCells changed per column:")
	for _, col := range model.RequiredColumns {
		if n := changed[col]; n > 0 {
			fmt.Printf("  %-26s %d\n", col, n)
		}
	}
	fmt.Println("\nSchema validation: OK")

	return nil
}

// rawCounts counts the distinct raw values of column, labelling nulls.
func rawCounts(t *model.Table, column string) map[string]int64 {
	counts := make(map[string]int64)
	for _, rec := range t.Records {
		v := rec.Get(column)
		if v == nil {
			counts["<null>"]++
			continue
		}
		counts[*v]++
	}
	return counts
}

// printCounts prints counts in descending order; limit 0 prints all.
func printCounts(counts map[string]int64, limit int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for i, k := range keys {
		if limit > 0 && i == limit {
			fmt.Printf("    ... %d more\n", len(keys)-limit)
			break
		}
		fmt.Printf("    %-30s %d\n", fmt.Sprintf("%q", strings.TrimSpace(k)), counts[k])
	}
}
