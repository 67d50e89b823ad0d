// Package models defines data structures shared across the scraper and the
// offline analysis stages.
package models

import "time"

// TimestampLayout is the wall-clock format stamped on every scraped row.
const TimestampLayout = "2006-01-02 15:04:05"

// TeamRecord represents one team-season row exactly as scraped. Every field
// stays raw text; numeric coercion happens only in the analysis stage.
type TeamRecord struct {
	TeamName        string `csv:"team_name" json:"team_name"`
	Year            string `csv:"year" json:"year"`
	Wins            string `csv:"wins" json:"wins"`
	Losses          string `csv:"losses" json:"losses"`
	OTLosses        string `csv:"ot_losses" json:"ot_losses"`
	WinPct          string `csv:"win_pct" json:"win_pct"`
	GoalsFor        string `csv:"goals_for" json:"goals_for"`
	GoalsAgainst    string `csv:"goals_against" json:"goals_against"`
	GoalsDiff       string `csv:"goals_diff" json:"goals_diff"`
	ScrapeTimestamp string `csv:"scrape_timestamp" json:"scrape_timestamp"`
}

// Columns returns the CSV header in the fixed field order. The sink writes
// exactly this header and CSVRow must stay aligned with it.
func Columns() []string {
	return []string{
		"team_name",
		"year",
		"wins",
		"losses",
		"ot_losses",
		"win_pct",
		"goals_for",
		"goals_against",
		"goals_diff",
		"scrape_timestamp",
	}
}

// CSVRow returns the record's values in the Columns order.
func (r *TeamRecord) CSVRow() []string {
	return []string{
		r.TeamName,
		r.Year,
		r.Wins,
		r.Losses,
		r.OTLosses,
		r.WinPct,
		r.GoalsFor,
		r.GoalsAgainst,
		r.GoalsDiff,
		r.ScrapeTimestamp,
	}
}

// ScrapeResult holds the overall outcome of a scraping run.
type ScrapeResult struct {
	StartTime    time.Time
	EndTime      time.Time
	PageCount    int
	RecordCount  int
	RequestCount int
	FailedURL    string
}

// Duration reports the elapsed wall-clock time of the run.
func (r *ScrapeResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
