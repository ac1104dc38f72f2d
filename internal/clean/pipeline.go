package clean

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/csvio"
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/parquetio"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full clean pipeline: read → project/clean → write.
// Nothing is written when projection fails.
func Run(log zerolog.Logger, cfg *config.Config) (*model.CleanSummary, error) {
	totalStart := time.Now()
	summary := model.NewCleanSummary()
	summary.InputPath = cfg.InputPath
	summary.OutputPath = cfg.OutputPath
	summary.Format = cfg.Format

	// Phase 1: Read
	log.Info().Str("file", cfg.InputPath).Msg("reading input")
	start := time.Now()
	table, err := csvio.NewReader(cfg.NullMarkers).ReadFile(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	summary.RowsRead = int64(table.Len())
	summary.DurationRead = time.Since(start)
	log.Info().
		Int64("rows", summary.RowsRead).
		Int("columns", len(table.Columns)).
		Dur("duration", summary.DurationRead).
		Msg("read complete")

	// Phase 2: Clean
	start = time.Now()
	rows, changed, err := CleanWithStats(table)
	if err != nil {
		return nil, &PipelineError{Phase: "project", Err: err}
	}
	summary.CellsChanged = changed
	summary.DurationClean = time.Since(start)
	Tally(summary, rows)

	for _, col := range model.RequiredColumns {
		if n := changed[col]; n > 0 {
			log.Debug().Str("column", col).Int64("cells_changed", n).Msg("column cleaned")
		}
	}
	log.Info().
		Int64("cells_changed", summary.TotalCellsChanged()).
		Int64("null_ages", summary.NullAges).
		Dur("duration", summary.DurationClean).
		Msg("clean complete")

	// Phase 3: Write
	start = time.Now()
	if err := Write(cfg, rows); err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}
	summary.RowsWritten = int64(len(rows))
	summary.DurationWrite = time.Since(start)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("output", cfg.OutputPath).
		Str("format", cfg.Format).
		Int64("rows_read", summary.RowsRead).
		Int64("rows_written", summary.RowsWritten).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("clean pipeline complete")

	return summary, nil
}

// Write saves rows to cfg.OutputPath in cfg.Format.
func Write(cfg *config.Config, rows []model.Response) error {
	switch cfg.Format {
	case config.FormatParquet:
		return parquetio.WriteFile(cfg.OutputPath, rows)
	case config.FormatCSV, "":
		return csvio.WriteFile(cfg.OutputPath, rows, cfg.OutputNull)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// Tally fills the output distributions of summary from rows.
func Tally(summary *model.CleanSummary, rows []model.Response) {
	for i := range rows {
		summary.GenderCounts[rows[i].Gender]++
		summary.CompanySizes[rows[i].NoEmployees]++
		if rows[i].Age == nil {
			summary.NullAges++
		}
	}
}
