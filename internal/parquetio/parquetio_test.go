package parquetio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gyeh/surveyclean/internal/model"
)

func TestWriteFile_ReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	age := int64(35)
	zero := int64(0)
	rows := []model.Response{
		{Age: &age, Gender: "Male", Country: "Canada", Treatment: &zero, WorkInterfere: "Rarely", NoEmployees: "26-100", Leave: "Don't know"},
		{Gender: "Other", Country: "Unknown", WorkInterfere: "Unknown", NoEmployees: "Unknown", Leave: "Unknown"},
	}
	if err := WriteFile(path, rows); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Age == nil || *got[0].Age != 35 {
		t.Errorf("row 0 Age = %v, want 35", got[0].Age)
	}
	if got[0].Treatment == nil || *got[0].Treatment != 0 {
		t.Errorf("row 0 treatment = %v, want 0", got[0].Treatment)
	}
	if got[0].SelfEmployed != nil {
		t.Errorf("row 0 self_employed = %d, want null", *got[0].SelfEmployed)
	}
	if got[1].Age != nil {
		t.Errorf("row 1 Age = %d, want null", *got[1].Age)
	}
	if got[1].NoEmployees != "Unknown" {
		t.Errorf("row 1 no_employees = %q", got[1].NoEmployees)
	}
}

func TestReadAll_MissingFile(t *testing.T) {
	if _, err := ReadAll(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_SinkError(t *testing.T) {
	rows := []model.Response{{Gender: "Male", Country: "Canada", WorkInterfere: "Never", NoEmployees: "1-5", Leave: "Unknown"}}
	if err := Write(failingWriter{}, rows); err == nil {
		t.Fatal("expected error when the sink rejects writes")
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.parquet")
	if err := WriteFile(path, nil); err == nil {
		t.Fatal("expected error for uncreatable path")
	}
}
