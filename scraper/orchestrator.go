// Package scraper drives the paginated crawl: fetching listing pages,
// extracting team records, and walking the pagination chain until the last
// page or the first network failure.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hockey-stats-pipeline/config"
	"hockey-stats-pipeline/models"
	"hockey-stats-pipeline/parser"
)

// RecordSink consumes the records extracted from one page.
type RecordSink interface {
	Process(records []*models.TeamRecord) error
}

// runState tracks the crawl loop. The loop is iterative on purpose: depth is
// proportional to page count and must not grow the call stack.
type runState int

const (
	stateFetching runState = iota
	stateDone
)

// Orchestrator walks the pagination chain page by page, strictly
// sequentially, streaming extracted records to a sink.
type Orchestrator struct {
	cfg     *config.Config
	fetcher *Fetcher
	walker  *Walker
	Metrics *Metrics
}

// NewOrchestrator builds an orchestrator configured from cfg.
func NewOrchestrator(cfg *config.Config) (*Orchestrator, error) {
	metrics := NewMetrics()

	fetcher, err := NewFetcher(cfg, metrics, "content")
	if err != nil {
		return nil, fmt.Errorf("build content fetcher: %w", err)
	}

	walker, err := NewWalker(cfg, metrics)
	if err != nil {
		return nil, fmt.Errorf("build pagination walker: %w", err)
	}

	return &Orchestrator{
		cfg:     cfg,
		fetcher: fetcher,
		walker:  walker,
		Metrics: metrics,
	}, nil
}

// Run crawls from the configured start URL until the last page. Each step
// fetches the current page, extracts its records, probes the pagination link
// (a second, independent fetch of the same page), then writes the records.
// The first network failure aborts the run; rows already written stay on
// disk. No rollback, no retry, no dedup across pages.
func (o *Orchestrator) Run(ctx context.Context, sink RecordSink) (*models.ScrapeResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	result := &models.ScrapeResult{StartTime: time.Now()}
	current := o.cfg.StartURL

	for state := stateFetching; state == stateFetching; {
		pageHTML, err := o.fetcher.Fetch(ctx, current)
		if err != nil {
			return o.abort(result, current, err)
		}

		records, err := parser.Extract(pageHTML)
		if err != nil {
			o.Metrics.IncError("markup")
			return o.abort(result, current, fmt.Errorf("extract records from %s: %w", current, err))
		}

		next, err := o.walker.NextPage(ctx, current)
		if err != nil {
			return o.abort(result, current, err)
		}

		if err := sink.Process(records); err != nil {
			o.Metrics.IncError("sink")
			return o.abort(result, current, fmt.Errorf("write records from %s: %w", current, err))
		}

		result.PageCount++
		result.RecordCount += len(records)
		o.Metrics.IncPages()
		o.Metrics.AddRecords(len(records))

		slog.Debug("page processed",
			slog.String("url", current),
			slog.Int("records", len(records)),
			slog.Bool("has_next", next != ""),
		)

		if next == "" {
			state = stateDone
		} else {
			current = next
		}
	}

	result.EndTime = time.Now()
	result.RequestCount = int(o.fetcher.Requests() + o.walker.fetcher.Requests())
	return result, nil
}

func (o *Orchestrator) abort(result *models.ScrapeResult, failedURL string, err error) (*models.ScrapeResult, error) {
	result.EndTime = time.Now()
	result.FailedURL = failedURL
	result.RequestCount = int(o.fetcher.Requests() + o.walker.fetcher.Requests())
	return result, err
}
