package model

import "github.com/google/uuid"

// LoadRow is a Response tagged with its load batch and source position.
type LoadRow struct {
	BatchID         uuid.UUID
	SourceRowNumber int64
	Response        *Response
}

// CopyValues returns the row values in the same order as ResponseColumns(),
// suitable for pgx CopyFromSource.
func (r *LoadRow) CopyValues() []any {
	return append([]any{r.BatchID, r.SourceRowNumber}, r.Response.Values()...)
}
