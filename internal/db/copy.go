package db

import (
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/jackc/pgx/v5"
)

// RowSource implements pgx.CopyFromSource over an in-memory slice of LoadRows.
type RowSource struct {
	rows []model.LoadRow
	pos  int
}

// NewRowSource creates a CopyFromSource backed by rows.
func NewRowSource(rows []model.LoadRow) *RowSource {
	return &RowSource{rows: rows, pos: -1}
}

// Next advances to the next row. Returns false after the last row.
func (s *RowSource) Next() bool {
	s.pos++
	return s.pos < len(s.rows)
}

// Values returns the current row's values in COPY column order.
func (s *RowSource) Values() ([]any, error) {
	return s.rows[s.pos].CopyValues(), nil
}

// Err always returns nil; the slice cannot fail mid-iteration.
func (s *RowSource) Err() error {
	return nil
}

// Compile-time check that RowSource satisfies the interface.
var _ pgx.CopyFromSource = (*RowSource)(nil)
