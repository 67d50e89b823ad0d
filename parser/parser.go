// Package parser turns listing-page HTML into TeamRecord values. It never
// fetches anything; callers hand it the page text.
package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"hockey-stats-pipeline/models"
)

const (
	teamRowSelector  = "div#page table tbody tr.team"
	nextLinkSelector = "ul.pagination li a[aria-label=Next]"
)

// cellClasses maps each record field to the class of the table cell holding
// it, in the fixed column order.
var cellClasses = []string{"name", "year", "wins", "losses", "ot-losses", "pct", "gf", "ga", "diff"}

// MarkupError reports a page whose structure no longer matches the expected
// table layout. A missing cell is treated as fatal: it means the producer
// changed markup, so silently writing partial rows would corrupt the dataset.
type MarkupError struct {
	Selector string
	Row      int
}

func (e *MarkupError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("markup: team row %d missing cell %q", e.Row, e.Selector)
	}
	return fmt.Sprintf("markup: element %q malformed", e.Selector)
}

// Extract parses one listing page into team records. Each row must carry all
// nine data cells; values are whitespace-trimmed and kept as raw text. The
// scrape timestamp is stamped per row at extraction time.
func Extract(html string) ([]*models.TeamRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	var records []*models.TeamRecord
	var rowErr error

	doc.Find(teamRowSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := make([]string, len(cellClasses))
		for j, class := range cellClasses {
			cell := row.Find("td." + class)
			if cell.Length() == 0 {
				rowErr = &MarkupError{Selector: "td." + class, Row: i}
				return false
			}
			cells[j] = strings.TrimSpace(cell.First().Text())
		}

		records = append(records, &models.TeamRecord{
			TeamName:        cells[0],
			Year:            cells[1],
			Wins:            cells[2],
			Losses:          cells[3],
			OTLosses:        cells[4],
			WinPct:          cells[5],
			GoalsFor:        cells[6],
			GoalsAgainst:    cells[7],
			GoalsDiff:       cells[8],
			ScrapeTimestamp: time.Now().Format(models.TimestampLayout),
		})
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}
	return records, nil
}

// NextHref locates the pagination control labeled "Next" and returns its
// href. found is false when the control is absent, which is the normal
// end-of-pagination signal. A control present without an href is a
// MarkupError, not a termination signal.
func NextHref(html string) (href string, found bool, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false, fmt.Errorf("parse page html: %w", err)
	}

	link := doc.Find(nextLinkSelector).First()
	if link.Length() == 0 {
		return "", false, nil
	}

	href, ok := link.Attr("href")
	if !ok {
		return "", false, &MarkupError{Selector: nextLinkSelector, Row: -1}
	}
	return href, true, nil
}

// ValidateRecord ensures the extractor populated the required fields before a
// record reaches the sink.
func ValidateRecord(r *models.TeamRecord) error {
	if r == nil {
		return fmt.Errorf("record is nil")
	}
	if strings.TrimSpace(r.TeamName) == "" {
		return fmt.Errorf("record missing team name")
	}
	if strings.TrimSpace(r.Year) == "" {
		return fmt.Errorf("record missing year for %s", r.TeamName)
	}
	if strings.TrimSpace(r.ScrapeTimestamp) == "" {
		return fmt.Errorf("record missing scrape timestamp for %s", r.TeamName)
	}
	return nil
}
