package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyeh/surveyclean/internal/model"
)

// DefaultNullMarkers are the cell strings read as null: the empty cell plus
// the NA tokens common in exported survey data.
var DefaultNullMarkers = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Reader parses a CSV survey file into a model.Table.
type Reader struct {
	nulls map[string]struct{}
}

// NewReader returns a Reader treating nullMarkers as null cells. A nil slice
// selects DefaultNullMarkers.
func NewReader(nullMarkers []string) *Reader {
	if nullMarkers == nil {
		nullMarkers = DefaultNullMarkers
	}
	nulls := make(map[string]struct{}, len(nullMarkers))
	for _, m := range nullMarkers {
		nulls[m] = struct{}{}
	}
	return &Reader{nulls: nulls}
}

// ReadFile opens path and reads the whole table.
func (r *Reader) ReadFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()
	return r.Read(f)
}

// Read reads a header row followed by records. Short rows are padded with
// nulls; rows longer than the header are rejected.
func (r *Reader) Read(in io.Reader) (*model.Table, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &model.Table{Columns: header}
	line := 1
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		if len(fields) > len(header) {
			return nil, fmt.Errorf("read csv row %d: %d fields, header has %d", line, len(fields), len(header))
		}
		rec := make(model.Record, len(header))
		for i, col := range header {
			if _, dup := rec[col]; dup {
				continue
			}
			if i >= len(fields) {
				rec[col] = nil
				continue
			}
			rec[col] = r.cell(fields[i])
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func (r *Reader) cell(s string) *string {
	if _, ok := r.nulls[s]; ok {
		return nil
	}
	return &s
}
