package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/surveyclean/internal/clean"
	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/csvio"
	"github.com/gyeh/surveyclean/internal/db"
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/normalize"
	"github.com/gyeh/surveyclean/internal/parquetio"
	embedsql "github.com/gyeh/surveyclean/internal/sql"
)

// PipelineError wraps an error with the load phase where it occurred.
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

// Run loads cfg.InputPath into survey.responses as one batch. A .parquet
// input is taken as already-cleaned output; anything else is read as a raw
// survey CSV and cleaned first. A file whose SHA-256 is already loaded is
// skipped unless cfg.Force is set, in which case the old batch is superseded.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	summary := &model.LoadSummary{SourcePath: cfg.InputPath, SourceSHA256: sha}

	existing, found, err := lookupLoaded(ctx, pool, sha)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	if found && !cfg.Force {
		log.Info().
			Str("load_batch_id", existing.ID.String()).
			Int64("rows", existing.RowCount).
			Str("sha256", sha).
			Msg("file already loaded, skipping (use --force to reload)")
		summary.LoadBatchID = existing.ID.String()
		summary.RowsLoaded = existing.RowCount
		summary.AlreadyLoaded = true
		summary.DurationTotal = time.Since(totalStart)
		return summary, nil
	}

	// Phase 2: Read
	start := time.Now()
	rows, err := ReadResponses(cfg)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	summary.RowsRead = int64(len(rows))
	summary.DurationRead = time.Since(start)
	log.Info().
		Str("file", filepath.Base(cfg.InputPath)).
		Int64("rows", summary.RowsRead).
		Dur("duration", summary.DurationRead).
		Msg("read complete")

	// Phase 3: Validate
	if err := clean.ValidateRows(rows); err != nil {
		return nil, &PipelineError{Phase: "validate", Err: err}
	}

	// Phase 4: Copy
	batchID := uuid.New()
	start = time.Now()
	loaded, err := copyBatch(ctx, pool, batchID, cfg.InputPath, sha, rows)
	if err != nil {
		return nil, &PipelineError{Phase: "copy", Err: err}
	}
	summary.LoadBatchID = batchID.String()
	summary.RowsLoaded = loaded
	summary.DurationCopy = time.Since(start)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("load_batch_id", summary.LoadBatchID).
		Int64("rows_loaded", loaded).
		Bool("superseded", found).
		Str("duration", summary.DurationCopy.String()).
		Float64("rows_per_sec", float64(loaded)/summary.DurationCopy.Seconds()).
		Msg("load complete")

	return summary, nil
}

// ReadResponses returns the typed rows for cfg.InputPath, cleaning raw CSV input.
func ReadResponses(cfg *config.Config) ([]model.Response, error) {
	if strings.EqualFold(filepath.Ext(cfg.InputPath), ".parquet") {
		return parquetio.ReadAll(cfg.InputPath)
	}
	table, err := csvio.NewReader(cfg.NullMarkers).ReadFile(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	return clean.Clean(table)
}

// Batch tags rows with batchID and their 1-based source position.
func Batch(batchID uuid.UUID, rows []model.Response) []model.LoadRow {
	out := make([]model.LoadRow, len(rows))
	for i := range rows {
		out[i] = model.LoadRow{
			BatchID:         batchID,
			SourceRowNumber: int64(i + 1),
			Response:        &rows[i],
		}
	}
	return out
}

// loadedBatch is the current loaded batch for a source file.
type loadedBatch struct {
	ID       uuid.UUID
	RowCount int64
}

func lookupLoaded(ctx context.Context, pool *pgxpool.Pool, sha string) (loadedBatch, bool, error) {
	var b loadedBatch
	err := pool.QueryRow(ctx, embedsql.LookupLoadedBatch, sha).Scan(&b.ID, &b.RowCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return loadedBatch{}, false, nil
	}
	if err != nil {
		return loadedBatch{}, false, fmt.Errorf("lookup loaded batch: %w", err)
	}
	return b, true, nil
}

// copyBatch registers the batch, COPYs its rows and marks it loaded in one
// transaction, so a failed load leaves no rows behind.
func copyBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, path, sha string, rows []model.Response) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin load: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, embedsql.SupersedeBatches, sha); err != nil {
		return 0, fmt.Errorf("supersede batches: %w", err)
	}
	if _, err := tx.Exec(ctx, embedsql.RegisterBatch, batchID, filepath.Base(path), sha); err != nil {
		return 0, fmt.Errorf("register batch: %w", err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"survey", "responses"},
		model.ResponseColumns(),
		db.NewRowSource(Batch(batchID, rows)),
	)
	if err != nil {
		return 0, fmt.Errorf("copy responses: %w", err)
	}

	if _, err := tx.Exec(ctx, embedsql.FinishBatch, batchID, n); err != nil {
		return 0, fmt.Errorf("finish batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit load: %w", err)
	}
	return n, nil
}
