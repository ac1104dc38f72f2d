package clean

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gyeh/surveyclean/internal/config"
	"github.com/gyeh/surveyclean/internal/logging"
	"github.com/gyeh/surveyclean/internal/model"
	"github.com/gyeh/surveyclean/internal/parquetio"
)

const rawSurvey = `Timestamp,Age,Gender,Country,state,self_employed,family_history,treatment,work_interfere,no_employees,remote_work,tech_company,benefits,care_options,wellness_program,seek_help,anonymity,leave,mental_health_consequence,phys_health_consequence,coworkers,supervisor,mental_health_interview,phys_health_interview,mental_vs_physical,obs_consequence,comments
2014-08-27 11:29:31,37,Female,United States,IL,NA,No,Yes,Often,6-25,No,Yes,Yes,Not sure,No,Yes,Yes,Somewhat easy,No,No,Some of them,Yes,No,Maybe,Yes,No,NA
2014-08-27 11:29:37,44,M,United States,IN,NA,No,No,Rarely,More than 1000,No,No,Don't know,No,Don't know,Don't know,Don't know,Don't know,Maybe,No,No,No,No,No,Don't know,No,NA
2014-08-27 11:29:44,150,,,,,,,,,,,,,,,,,,,,,,,,,
`

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRun_CSV(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeInput(t, dir, rawSurvey),
		OutputPath: filepath.Join(dir, "survey_final_typed.csv"),
		Format:     config.FormatCSV,
	}

	summary, err := Run(logging.Setup("text"), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsRead != 3 || summary.RowsWritten != 3 {
		t.Errorf("rows read/written = %d/%d, want 3/3", summary.RowsRead, summary.RowsWritten)
	}
	if summary.NullAges != 1 {
		t.Errorf("null ages = %d, want 1", summary.NullAges)
	}
	if summary.GenderCounts["Male"] != 1 || summary.GenderCounts["Female"] != 1 || summary.GenderCounts["Other"] != 1 {
		t.Errorf("gender counts = %v", summary.GenderCounts)
	}
	if summary.CompanySizes["Unknown"] != 1 {
		t.Errorf("company sizes = %v", summary.CompanySizes)
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	want := []string{
		strings.Join(model.RequiredColumns, ","),
		"37,Female,United States,0,0,1,Often,6-25,0,1,1,0,0,1,1,Somewhat easy,0,0,0,1,0,0,1,0",
		"44,Male,United States,0,0,0,Rarely,More than 1000,0,0,0,0,0,0,0,Unknown,0,0,0,0,0,0,0,0",
		",Other,Unknown,0,0,0,Unknown,Unknown,0,0,0,0,0,0,0,Unknown,0,0,0,0,0,0,0,0",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\n got  %s\n want %s", i, lines[i], want[i])
		}
	}
}

func TestRun_Parquet(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeInput(t, dir, rawSurvey),
		OutputPath: filepath.Join(dir, "survey_final_typed.parquet"),
		Format:     config.FormatParquet,
	}
	if _, err := Run(logging.Setup("json"), cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows, err := parquetio.ReadAll(cfg.OutputPath)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Gender != "Male" || rows[1].NoEmployees != "More than 1000" {
		t.Errorf("row 2 = %+v", rows[1])
	}
	if rows[2].Age != nil {
		t.Errorf("row 3 Age = %d, want null", *rows[2].Age)
	}
}

func TestRun_MissingColumnWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeInput(t, dir, "Age,Gender\n30,Male\n"),
		OutputPath: filepath.Join(dir, "out.csv"),
		Format:     config.FormatCSV,
	}
	_, err := Run(logging.Setup("text"), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != "project" {
		t.Fatalf("expected project PipelineError, got %v", err)
	}
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected wrapped MissingColumnError, got %v", err)
	}
	if _, err := os.Stat(cfg.OutputPath); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
}

func TestRun_ReadError(t *testing.T) {
	cfg := &config.Config{InputPath: filepath.Join(t.TempDir(), "missing.csv"), OutputPath: "out.csv"}
	_, err := Run(logging.Setup("text"), cfg)
	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != "read" {
		t.Fatalf("expected read PipelineError, got %v", err)
	}
}
