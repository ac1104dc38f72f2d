package model

// Record is one survey response keyed by column name. A nil value is a null cell.
type Record map[string]*string

// Get returns the cell for column, or nil when the column is null or absent.
func (r Record) Get(column string) *string {
	return r[column]
}

// Table is an ordered sequence of Records sharing Columns. Row identity is
// position in Records.
type Table struct {
	Columns []string
	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// MapColumn replaces every cell of column with fn applied to it and returns
// how many cells changed.
func (t *Table) MapColumn(column string, fn func(*string) *string) int64 {
	var changed int64
	for _, rec := range t.Records {
		before := rec[column]
		after := fn(before)
		if !sameCell(before, after) {
			changed++
		}
		rec[column] = after
	}
	return changed
}

// Str returns a pointer to s, for building records.
func Str(s string) *string {
	return &s
}

func sameCell(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
