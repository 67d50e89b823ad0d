package analysis

import (
	"fmt"
	"strconv"
)

// TeamSeason is one cleaned team-season row: numeric fields coerced, the
// scrape timestamp and goal differential dropped, year kept as text so
// leading formatting survives.
type TeamSeason struct {
	TeamName     string
	Year         string
	Wins         int
	Losses       int
	OTLosses     int
	WinPct       float64
	GoalsFor     int
	GoalsAgainst int
}

// Clean coerces a raw scraped dataset into typed rows. A missing ot_losses
// value becomes zero; any other non-numeric value in a numeric column fails
// the row with its position.
func Clean(d *Dataset) ([]TeamSeason, error) {
	idx := make(map[string]int, len(d.Columns))
	for _, name := range []string{"team_name", "year", "wins", "losses", "ot_losses", "win_pct", "goals_for", "goals_against"} {
		i, err := d.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}

	seasons := make([]TeamSeason, 0, len(d.Rows))
	for r, row := range d.Rows {
		cell := func(name string) string {
			i := idx[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		wins, err := coerceInt(cell("wins"), false)
		if err != nil {
			return nil, fmt.Errorf("row %d wins: %w", r, err)
		}
		losses, err := coerceInt(cell("losses"), false)
		if err != nil {
			return nil, fmt.Errorf("row %d losses: %w", r, err)
		}
		otLosses, err := coerceInt(cell("ot_losses"), true)
		if err != nil {
			return nil, fmt.Errorf("row %d ot_losses: %w", r, err)
		}
		goalsFor, err := coerceInt(cell("goals_for"), false)
		if err != nil {
			return nil, fmt.Errorf("row %d goals_for: %w", r, err)
		}
		goalsAgainst, err := coerceInt(cell("goals_against"), false)
		if err != nil {
			return nil, fmt.Errorf("row %d goals_against: %w", r, err)
		}
		winPct, err := coerceFloat(cell("win_pct"))
		if err != nil {
			return nil, fmt.Errorf("row %d win_pct: %w", r, err)
		}

		seasons = append(seasons, TeamSeason{
			TeamName:     cell("team_name"),
			Year:         cell("year"),
			Wins:         wins,
			Losses:       losses,
			OTLosses:     otLosses,
			WinPct:       winPct,
			GoalsFor:     goalsFor,
			GoalsAgainst: goalsAgainst,
		})
	}

	return seasons, nil
}

// SeasonsDataset converts cleaned rows back into a writable dataset.
func SeasonsDataset(seasons []TeamSeason) *Dataset {
	columns := []string{"team_name", "year", "wins", "losses", "ot_losses", "win_pct", "goals_for", "goals_against"}
	rows := make([][]string, len(seasons))
	for i, s := range seasons {
		rows[i] = []string{
			s.TeamName,
			s.Year,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.OTLosses),
			strconv.FormatFloat(s.WinPct, 'f', -1, 64),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
		}
	}
	return &Dataset{Columns: columns, Rows: rows}
}

func coerceInt(value string, emptyAsZero bool) (int, error) {
	if value == "" {
		if emptyAsZero {
			return 0, nil
		}
		return 0, fmt.Errorf("empty numeric value")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", value, err)
	}
	return n, nil
}

func coerceFloat(value string) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", value, err)
	}
	return f, nil
}
