package scraper

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gocolly/colly/v2"

	"hockey-stats-pipeline/config"
)

// Fetcher performs blocking, one-at-a-time page fetches through a synchronous
// colly collector. Every Fetch call issues exactly one network request.
type Fetcher struct {
	collector *colly.Collector
	metrics   *Metrics
	phase     string

	requestCount int64

	mu         sync.Mutex
	body       []byte
	lastStatus int
}

// NewFetcher builds a fetcher for one fetch phase ("content" or
// "pagination"), carrying the fixed headers and timeout from cfg.
func NewFetcher(cfg *config.Config, metrics *Metrics, phase string) (*Fetcher, error) {
	parsed, err := url.Parse(cfg.RootURL)
	if err != nil {
		return nil, fmt.Errorf("parse root url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("root url must include a host")
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(parsed.Host),
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	collector.SetRequestTimeout(cfg.Timeout.Std())
	// One GET per Fetch call; a robots.txt probe would break that contract.
	collector.IgnoreRobotsTxt = true
	collector.WithTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout.Std(),
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	})

	f := &Fetcher{
		collector: collector,
		metrics:   metrics,
		phase:     phase,
	}

	acceptLanguage := cfg.AcceptLanguage
	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", acceptLanguage)
		r.Ctx.Put("start", time.Now())
		atomic.AddInt64(&f.requestCount, 1)
		f.metrics.IncRequest(f.phase)
	})

	collector.OnResponse(func(r *colly.Response) {
		f.body = append(f.body[:0], r.Body...)
		f.lastStatus = r.StatusCode
		if start, ok := r.Request.Ctx.GetAny("start").(time.Time); ok {
			f.metrics.ObserveDuration(time.Since(start))
		}
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil {
			f.lastStatus = r.StatusCode
		}
	})

	return f, nil
}

// Fetch retrieves one page and returns its raw HTML. Transport failures and
// non-2xx responses come back as a NetworkError naming the URL.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &NetworkError{URL: pageURL, Err: err}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.body = nil
	f.lastStatus = 0

	if err := f.collector.Visit(pageURL); err != nil {
		classified := classifyError(err, f.lastStatus)
		f.metrics.IncError(errorTypeLabel(classified))
		return "", &NetworkError{URL: pageURL, Err: classified}
	}

	return string(f.body), nil
}

// Requests reports how many HTTP requests this fetcher has issued.
func (f *Fetcher) Requests() int64 {
	return atomic.LoadInt64(&f.requestCount)
}

// withTransport swaps the underlying round tripper; tests use it to install
// stub transports.
func (f *Fetcher) withTransport(rt http.RoundTripper) {
	f.collector.WithTransport(rt)
}
