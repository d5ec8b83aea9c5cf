// Package links verifies that the evidence links attached to entries are
// still reachable.
package links

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/util"
	"github.com/factdesk/factdesk/internal/worker"
)

// Report is the outcome of checking one evidence link.
type Report struct {
	EntryID    int    `json:"entry_id"`
	URL        string `json:"url"`
	StatusCode int    `json:"status_code"`
	Alive      bool   `json:"alive"`
	Error      string `json:"error,omitempty"`
}

// GetError satisfies the pool's result contract; dead links are not errors.
func (r Report) GetError() error { return nil }

// Checker probes evidence links concurrently on a fixed worker pool.
type Checker struct {
	httpClient *http.Client
	userAgent  string
	workers    int
}

// NewChecker creates a checker from the HTTP and concurrency configuration.
func NewChecker(httpCfg model.HTTPConfig, workers int) *Checker {
	if workers <= 0 {
		workers = 20
	}
	return &Checker{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("stopped after 5 redirects")
				}
				return nil
			},
		},
		userAgent: httpCfg.UserAgent,
		workers:   workers,
	}
}

type linkJob struct {
	checker *Checker
	entryID int
	url     string
}

func (j linkJob) Execute(ctx context.Context) worker.Result {
	return j.checker.check(ctx, j.entryID, j.url)
}

// CheckEntries probes every evidence link in the dataset and returns one
// report per link, ordered by entry then URL.
func (c *Checker) CheckEntries(ctx context.Context, entries []model.Entry) []Report {
	pool := worker.NewPool(c.workers)
	pool.Start()

	count := 0
	for _, e := range entries {
		for _, link := range e.ExternalLinks {
			if link.URL == "" {
				continue
			}
			pool.Submit(linkJob{checker: c, entryID: e.ID, url: link.URL})
			count++
		}
	}
	if count == 0 {
		pool.Shutdown()
		return []Report{}
	}

	results := pool.Wait()
	reports := make([]Report, 0, len(results))
	for _, r := range results {
		if report, ok := r.(Report); ok {
			reports = append(reports, report)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		if reports[i].EntryID != reports[j].EntryID {
			return reports[i].EntryID < reports[j].EntryID
		}
		return reports[i].URL < reports[j].URL
	})
	return reports
}

// check probes a single link. HEAD first; servers that refuse HEAD get one
// GET retry.
func (c *Checker) check(ctx context.Context, entryID int, url string) Report {
	report := Report{EntryID: entryID, URL: url}

	status, err := c.probe(ctx, http.MethodHead, url)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusForbidden) {
		status, err = c.probe(ctx, http.MethodGet, url)
	}
	if err != nil {
		status, err = c.probe(ctx, http.MethodGet, url)
	}
	if err != nil {
		report.Error = err.Error()
		zap.S().Debugf("link check failed for %s: %v", url, err)
		return report
	}

	report.StatusCode = status
	report.Alive = status >= 200 && status < 400
	return report
}

func (c *Checker) probe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode, nil
}
