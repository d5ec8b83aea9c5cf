// Package headline resolves claim-source URLs to their headline and
// subheadline by scraping the page's Open Graph metadata.
package headline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/factdesk/factdesk/internal/cache"
	"github.com/factdesk/factdesk/internal/model"
	"github.com/factdesk/factdesk/internal/util"
	"github.com/factdesk/factdesk/internal/worker"
)

// Details is a resolved headline/subheadline pair. Fields may be empty when
// the page does not expose the corresponding metadata.
type Details struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

// Fetcher scrapes claim-source pages. Lookups are cached, rate-limited per
// domain, and gated on robots.txt when configured.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	cache      cache.Cache
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
}

// NewFetcher creates a fetcher from the HTTP and cache configuration.
func NewFetcher(httpCfg model.HTTPConfig, cacheCfg model.CacheConfig) *Fetcher {
	var robots *util.RobotsChecker
	if httpCfg.RespectRobots {
		robots = util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout)
	}

	return &Fetcher{
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
		maxBytes:  httpCfg.MaxBodyBytes,
		cache:     cache.FromConfig(cacheCfg),
		robots:    robots,
		limiter:   worker.NewLimiter(httpCfg.RatePerSecond, httpCfg.RateBurst),
	}
}

// Details resolves the headline and subheadline for a claim-source URL.
// Empty and non-http URLs short-circuit to empty details with no network
// call. All failures are soft: the caller gets empty details and may let the
// curator fill the fields by hand.
func (f *Fetcher) Details(ctx context.Context, rawURL string) (Details, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" || !strings.HasPrefix(rawURL, "http") {
		return Details{}, nil
	}

	if f.cache != nil {
		if raw, found := f.cache.Get(cache.Key(rawURL)); found {
			var cached Details
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err == nil && !allowed {
			zap.S().Warnf("robots.txt disallows fetching %s", rawURL)
			return Details{}, nil
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return Details{}, err
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return Details{}, err
	}

	htmlContent, err := f.fetch(ctx, rawURL)
	if err != nil {
		zap.S().Warnf("headline fetch failed for %s: %v", rawURL, err)
		return Details{}, err
	}

	h, sub := extractDetails(htmlContent)
	details := Details{Headline: h, Subheadline: sub}
	if h == "" && sub == "" {
		zap.S().Warnf("no og:title, h1, or og:description found at %s", rawURL)
	}

	if f.cache != nil {
		if raw, err := json.Marshal(details); err == nil {
			_ = f.cache.Set(cache.Key(rawURL), raw, 0)
		}
	}
	return details, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
