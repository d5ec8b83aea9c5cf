// Package platform derives short platform labels from social-media URLs.
package platform

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// knownDomains maps hostname fragments to platform labels, checked in order.
// First match wins.
var knownDomains = []struct {
	fragments []string
	label     string
}{
	{[]string{"x.com", "twitter.com", "t.co"}, "x"},
	{[]string{"facebook.com", "fb.me", "fb.watch"}, "facebook"},
	{[]string{"instagram.com", "instagr.am"}, "instagram"},
	{[]string{"youtube.com", "youtu.be"}, "youtube"},
	{[]string{"tiktok.com"}, "tiktok"},
	{[]string{"linkedin.com"}, "linkedin"},
	{[]string{"reddit.com"}, "reddit"},
}

// genericSuffixes are second-level labels that name a registry, not a site.
// "news.bbc.co.uk" should classify as "bbc", not "co".
var genericSuffixes = map[string]bool{
	"co":  true,
	"com": true,
	"org": true,
	"net": true,
	"gov": true,
	"ac":  true,
	"edu": true,
}

// Detect returns a short platform label for a social-media URL.
// Unparseable or host-less input yields the empty string, never an error:
// classification is advisory and must not block the caller.
func Detect(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		zap.S().Warnf("could not parse URL %q for platform detection", rawURL)
		return ""
	}

	hostname := strings.ToLower(parsed.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")

	for _, entry := range knownDomains {
		for _, fragment := range entry.fragments {
			if strings.Contains(hostname, fragment) {
				return entry.label
			}
		}
	}

	parts := strings.Split(hostname, ".")
	switch {
	case len(parts) > 2 && genericSuffixes[parts[len(parts)-2]]:
		return parts[len(parts)-3]
	case len(parts) > 1:
		return parts[len(parts)-2]
	default:
		return parts[0]
	}
}
