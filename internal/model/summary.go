package model

import "time"

// CleanSummary captures metrics from a single clean run.
type CleanSummary struct {
	InputPath     string
	OutputPath    string
	Format        string
	RowsRead      int64
	RowsWritten   int64
	NullAges      int64
	CellsChanged  map[string]int64 // column -> cells modified by cleaning
	GenderCounts  map[string]int64
	CompanySizes  map[string]int64
	DurationRead  time.Duration
	DurationClean time.Duration
	DurationWrite time.Duration
	DurationTotal time.Duration
}

// NewCleanSummary returns a summary with its maps allocated.
func NewCleanSummary() *CleanSummary {
	return &CleanSummary{
		CellsChanged: make(map[string]int64),
		GenderCounts: make(map[string]int64),
		CompanySizes: make(map[string]int64),
	}
}

// TotalCellsChanged sums CellsChanged over all columns.
func (s *CleanSummary) TotalCellsChanged() int64 {
	var n int64
	for _, c := range s.CellsChanged {
		n += c
	}
	return n
}

// LoadSummary captures metrics from a single load run.
type LoadSummary struct {
	SourcePath    string
	SourceSHA256  string
	LoadBatchID   string
	AlreadyLoaded bool
	RowsRead      int64
	RowsLoaded    int64
	DurationRead  time.Duration
	DurationCopy  time.Duration
	DurationTotal time.Duration
}
