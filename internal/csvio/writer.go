package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/surveyclean/internal/model"
)

// WriteFile creates path and writes rows as CSV.
func WriteFile(path string, rows []model.Response, null string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	if err := Write(f, rows, null); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write emits the RequiredColumns header followed by one line per row.
// Null integers are rendered as null.
func Write(w io.Writer, rows []model.Response, null string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.RequiredColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(rows[i].Strings(null)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
