package platform

import "testing"

func TestDetect_KnownDomains(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://x.com/user/status/1", "x"},
		{"https://twitter.com/user/status/1", "x"},
		{"https://t.co/abc", "x"},
		{"https://www.facebook.com/watch?v=1", "facebook"},
		{"https://fb.me/abc", "facebook"},
		{"https://fb.watch/xyz/", "facebook"},
		{"https://www.instagram.com/p/abc/", "instagram"},
		{"https://instagr.am/p/abc/", "instagram"},
		{"https://www.youtube.com/watch?v=abc", "youtube"},
		{"https://youtu.be/abc", "youtube"},
		{"https://www.tiktok.com/@user/video/1", "tiktok"},
		{"https://www.linkedin.com/posts/abc", "linkedin"},
		{"https://www.reddit.com/r/videos/comments/1", "reddit"},
	}

	for _, tc := range cases {
		if got := Detect(tc.url); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDetect_FallbackHeuristic(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		// Generic second-level label skipped
		{"https://news.example.co.uk/a", "example"},
		{"https://news.bbc.co.uk/article", "bbc"},
		{"https://media.example.ac.jp/x", "example"},
		// Plain two-label hosts
		{"https://example.com/page", "example"},
		{"https://www.vimeo.com/12345", "vimeo"},
		// Subdomain with non-generic second-level label
		{"https://video.dailymotion.fr/x", "dailymotion"},
		// Single-label host
		{"https://localhost/video", "localhost"},
	}

	for _, tc := range cases {
		if got := Detect(tc.url); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestDetect_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "not a url", "::::", "just-text"} {
		if got := Detect(raw); got != "" {
			t.Errorf("Detect(%q) = %q, want empty string", raw, got)
		}
	}
}
