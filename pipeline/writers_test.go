package pipeline

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"hockey-stats-pipeline/models"
)

func sampleRecord(team string) *models.TeamRecord {
	return &models.TeamRecord{
		TeamName:        team,
		Year:            "1990",
		Wins:            "44",
		Losses:          "24",
		OTLosses:        "",
		WinPct:          "0.55",
		GoalsFor:        "299",
		GoalsAgainst:    "264",
		GoalsDiff:       "35",
		ScrapeTimestamp: "2026-08-30 10:00:00",
	}
}

func TestCSVWriterHeaderAndRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.csv")

	writer, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("create csv writer: %v", err)
	}

	if err := writer.Write([]*models.TeamRecord{sampleRecord("Boston Bruins")}); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close csv: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], models.Columns()) {
		t.Fatalf("header = %v, want %v", rows[0], models.Columns())
	}
	if rows[1][0] != "Boston Bruins" || rows[1][9] != "2026-08-30 10:00:00" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
}

func TestCSVWriterCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "raw", "teams.csv")

	writer, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("create csv writer under missing directory: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close csv: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat output: %v", err)
	}
}

func TestCSVWriterOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.csv")

	first, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("first writer: %v", err)
	}
	if err := first.Write([]*models.TeamRecord{sampleRecord("Boston Bruins"), sampleRecord("Buffalo Sabres")}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	second, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("second writer: %v", err)
	}
	if err := second.Write([]*models.TeamRecord{sampleRecord("Calgary Flames")}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want header + second run's single row", len(rows))
	}
	if rows[1][0] != "Calgary Flames" {
		t.Fatalf("row = %v, want only second run's data", rows[1])
	}
}

func TestJSONLWriterWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.jsonl")

	writer, err := NewJSONLWriter(path)
	if err != nil {
		t.Fatalf("create jsonl writer: %v", err)
	}
	if err := writer.Write([]*models.TeamRecord{sampleRecord("Boston Bruins")}); err != nil {
		t.Fatalf("write jsonl: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close jsonl: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open jsonl: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("jsonl file has no lines")
	}
	var decoded models.TeamRecord
	if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
		t.Fatalf("decode jsonl line: %v", err)
	}
	if decoded.TeamName != "Boston Bruins" {
		t.Fatalf("team = %q", decoded.TeamName)
	}
	if scanner.Scan() {
		t.Fatalf("expected a single line")
	}
}

func TestDualWriterWritesBoth(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "teams.csv")
	jsonlPath := filepath.Join(dir, "teams.jsonl")

	writer, err := NewDualWriter(csvPath, jsonlPath)
	if err != nil {
		t.Fatalf("create dual writer: %v", err)
	}
	if err := writer.Write([]*models.TeamRecord{sampleRecord("Boston Bruins")}); err != nil {
		t.Fatalf("write dual: %v", err)
	}
	if err := writer.Validate(); err != nil {
		t.Fatalf("validate dual: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close dual: %v", err)
	}

	for _, path := range []string{csvPath, jsonlPath} {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}
