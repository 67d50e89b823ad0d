package analysis

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func rawDataset() *Dataset {
	return &Dataset{
		Columns: []string{"team_name", "year", "wins", "losses", "ot_losses", "win_pct", "goals_for", "goals_against", "goals_diff", "scrape_timestamp"},
		Rows: [][]string{
			{"Boston Bruins", "1990", "44", "24", "", "0.55", "299", "264", "35", "2026-08-30 10:00:00"},
			{"Boston Bruins", "1991", "36", "32", "", "0.45", "270", "275", "-5", "2026-08-30 10:00:01"},
			{"Buffalo Sabres", "1990", "31", "30", "3", "0.388", "292", "278", "14", "2026-08-30 10:00:02"},
			{"Calgary Flames", "1991", "46", "26", "2", "0.575", "344", "263", "81", "2026-08-30 10:00:03"},
		},
	}
}

func TestDropColumns(t *testing.T) {
	dropped := rawDataset().Drop("scrape_timestamp", "goals_diff")

	want := []string{"team_name", "year", "wins", "losses", "ot_losses", "win_pct", "goals_for", "goals_against"}
	if !reflect.DeepEqual(dropped.Columns, want) {
		t.Fatalf("columns = %v, want %v", dropped.Columns, want)
	}
	if len(dropped.Rows) != 4 || len(dropped.Rows[0]) != len(want) {
		t.Fatalf("rows not reshaped: %v", dropped.Rows)
	}
}

func TestCleanCoercesTypes(t *testing.T) {
	seasons, err := Clean(rawDataset())
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if len(seasons) != 4 {
		t.Fatalf("seasons = %d, want 4", len(seasons))
	}

	first := seasons[0]
	if first.TeamName != "Boston Bruins" || first.Year != "1990" {
		t.Errorf("identity fields wrong: %+v", first)
	}
	if first.Wins != 44 || first.Losses != 24 {
		t.Errorf("wins/losses = %d/%d", first.Wins, first.Losses)
	}
	// missing ot_losses fills with zero
	if first.OTLosses != 0 {
		t.Errorf("ot_losses = %d, want 0 for empty cell", first.OTLosses)
	}
	if seasons[2].OTLosses != 3 {
		t.Errorf("ot_losses = %d, want 3", seasons[2].OTLosses)
	}
	if first.WinPct != 0.55 {
		t.Errorf("win_pct = %v", first.WinPct)
	}
}

func TestCleanRejectsNonNumeric(t *testing.T) {
	d := rawDataset()
	d.Rows[1][2] = "forty"

	_, err := Clean(d)
	if err == nil {
		t.Fatalf("expected coercion error")
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("error %q should name the failing row", err.Error())
	}
}

func TestTopNBottomN(t *testing.T) {
	seasons, err := Clean(rawDataset())
	if err != nil {
		t.Fatalf("clean: %v", err)
	}

	top, err := TopN(seasons, "wins", "sum", 2)
	if err != nil {
		t.Fatalf("topn: %v", err)
	}
	// Boston 44+36=80, Calgary 46, Buffalo 31
	if top[0].TeamName != "Boston Bruins" || top[0].Value != 80 {
		t.Errorf("top[0] = %+v, want Boston Bruins 80", top[0])
	}
	if top[1].TeamName != "Calgary Flames" || top[1].Value != 46 {
		t.Errorf("top[1] = %+v, want Calgary Flames 46", top[1])
	}

	bottom, err := BottomN(seasons, "wins", "mean", 1)
	if err != nil {
		t.Fatalf("bottomn: %v", err)
	}
	// means: Boston 40, Buffalo 31, Calgary 46
	if bottom[0].TeamName != "Buffalo Sabres" || bottom[0].Value != 31 {
		t.Errorf("bottom[0] = %+v, want Buffalo Sabres 31", bottom[0])
	}

	if _, err := TopN(seasons, "wins", "median", 1); err == nil {
		t.Errorf("unknown aggregation should fail")
	}
	if _, err := TopN(seasons, "stadium", "sum", 1); err == nil {
		t.Errorf("unknown column should fail")
	}
}

func TestStructure(t *testing.T) {
	s := Structure(rawDataset())
	if s.RowCount != 4 || s.ColumnCount != 10 {
		t.Fatalf("shape = %dx%d", s.RowCount, s.ColumnCount)
	}
	if s.TotalDatapoints != 40 {
		t.Errorf("datapoints = %d, want 40", s.TotalDatapoints)
	}
	// two empty ot_losses cells
	if s.NullDatapoints != 2 {
		t.Errorf("nulls = %d, want 2", s.NullDatapoints)
	}
	if s.NonNullDatapoints != 38 {
		t.Errorf("non-nulls = %d, want 38", s.NonNullDatapoints)
	}
}

func TestDescribeColumns(t *testing.T) {
	stats := DescribeColumns(rawDataset())
	byName := make(map[string]ColumnStats, len(stats))
	for _, cs := range stats {
		byName[cs.Column] = cs
	}

	team := byName["team_name"]
	if team.UniqueCount != 3 {
		t.Errorf("team unique = %d, want 3", team.UniqueCount)
	}
	// Buffalo and Calgary appear once each
	if team.DistinctCount != 2 {
		t.Errorf("team distinct = %d, want 2", team.DistinctCount)
	}
	if team.LongestLen != len("Buffalo Sabres") {
		t.Errorf("team longest = %d", team.LongestLen)
	}

	ot := byName["ot_losses"]
	if ot.NullRows != 2 || ot.NonNullRows != 2 {
		t.Errorf("ot_losses null/non-null = %d/%d, want 2/2", ot.NullRows, ot.NonNullRows)
	}
}

func TestRoundTripCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "teams.csv")

	original := rawDataset()
	if err := original.WriteCSV(path); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load csv: %v", err)
	}
	if !reflect.DeepEqual(loaded.Columns, original.Columns) {
		t.Fatalf("columns = %v", loaded.Columns)
	}
	if !reflect.DeepEqual(loaded.Rows, original.Rows) {
		t.Fatalf("rows differ after round trip")
	}
}

func TestSeasonsDataset(t *testing.T) {
	seasons, err := Clean(rawDataset())
	if err != nil {
		t.Fatalf("clean: %v", err)
	}

	d := SeasonsDataset(seasons)
	if len(d.Rows) != len(seasons) {
		t.Fatalf("rows = %d, want %d", len(d.Rows), len(seasons))
	}
	// ot_losses materialised as "0", not an empty cell
	idx, err := d.ColumnIndex("ot_losses")
	if err != nil {
		t.Fatalf("column index: %v", err)
	}
	if d.Rows[0][idx] != "0" {
		t.Fatalf("ot_losses cell = %q, want 0", d.Rows[0][idx])
	}
}

func TestWriteProfileReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "profile.html")

	if err := WriteProfileReport(rawDataset(), path, "Hockey Team Stats - Data Profile Report"); err != nil {
		t.Fatalf("write report: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	html := string(content)
	if !strings.Contains(html, "Hockey Team Stats - Data Profile Report") {
		t.Errorf("report missing title")
	}
	if !strings.Contains(html, "team_name") || !strings.Contains(html, "wins") {
		t.Errorf("report missing column sections")
	}
	// wins is fully numeric, so its section carries min/max/mean
	if !strings.Contains(html, "Mean") {
		t.Errorf("report missing numeric summary")
	}
}
