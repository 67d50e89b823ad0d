package scraper

import (
	"context"
	"fmt"
	"net/url"

	"hockey-stats-pipeline/config"
	"hockey-stats-pipeline/parser"
)

// Walker locates the "Next" pagination control for a page. Each NextPage call
// fetches the page itself, independently of the content fetch for the same
// URL, so a full crawl issues two GETs per page.
type Walker struct {
	fetcher *Fetcher
	root    *url.URL
}

// NewWalker builds a walker resolving relative pagination links against the
// configured root origin.
func NewWalker(cfg *config.Config, metrics *Metrics) (*Walker, error) {
	root, err := url.Parse(cfg.RootURL)
	if err != nil {
		return nil, fmt.Errorf("parse root url: %w", err)
	}

	fetcher, err := NewFetcher(cfg, metrics, "pagination")
	if err != nil {
		return nil, err
	}

	return &Walker{fetcher: fetcher, root: root}, nil
}

// NextPage returns the absolute URL of the page after currentURL, or "" when
// the pagination control is absent (the last page). Transport failures
// propagate as NetworkError; a malformed control is a markup failure, not
// termination.
func (w *Walker) NextPage(ctx context.Context, currentURL string) (string, error) {
	html, err := w.fetcher.Fetch(ctx, currentURL)
	if err != nil {
		return "", err
	}

	href, found, err := parser.NextHref(html)
	if err != nil {
		return "", fmt.Errorf("locate next link on %s: %w", currentURL, err)
	}
	if !found {
		return "", nil
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse next link %q on %s: %w", href, currentURL, err)
	}
	return w.root.ResolveReference(ref).String(), nil
}
