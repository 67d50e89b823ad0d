package models

import "testing"

func TestColumnsAndCSVRowStayAligned(t *testing.T) {
	record := &TeamRecord{
		TeamName:        "Boston Bruins",
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

	columns := Columns()
	row := record.CSVRow()
	if len(columns) != 10 || len(row) != 10 {
		t.Fatalf("columns=%d row=%d, want 10 each", len(columns), len(row))
	}

	want := map[string]string{
		"team_name":        "Boston Bruins",
		"year":             "1990",
		"wins":             "44",
		"losses":           "24",
		"ot_losses":        "",
		"win_pct":          "0.55",
		"goals_for":        "299",
		"goals_against":    "264",
		"goals_diff":       "35",
		"scrape_timestamp": "2026-08-30 10:00:00",
	}
	for i, column := range columns {
		if row[i] != want[column] {
			t.Errorf("column %q = %q, want %q", column, row[i], want[column])
		}
	}
}
