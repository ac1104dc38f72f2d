package parquetio

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/surveyclean/internal/model"
)

// WriteFile writes rows to path as a Parquet file with the Response schema.
func WriteFile(path string, rows []model.Response) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes rows to out. The parquet writer is closed on every path.
func Write(out io.Writer, rows []model.Response) error {
	w := parquet.NewGenericWriter[model.Response](out)
	if _, err := w.Write(rows); err != nil {
		w.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}
