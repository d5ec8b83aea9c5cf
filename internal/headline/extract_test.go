package headline

import "testing"

func TestExtractDetails_OpenGraph(t *testing.T) {
	page := `
	<html><head>
		<meta property="og:title" content=" Video shows a 2019 flood, not the hurricane ">
		<meta property="og:description" content="The clip circulated years before the storm.">
	</head><body><h1>Some other heading</h1></body></html>`

	headline, subheadline := extractDetails(page)
	if headline != "Video shows a 2019 flood, not the hurricane" {
		t.Errorf("unexpected headline %q", headline)
	}
	if subheadline != "The clip circulated years before the storm." {
		t.Errorf("unexpected subheadline %q", subheadline)
	}
}

func TestExtractDetails_H1Fallback(t *testing.T) {
	page := `
	<html><body>
		<h1>  No, this video is <em>not</em> from last week  </h1>
		<h1>Second heading ignored</h1>
	</body></html>`

	headline, subheadline := extractDetails(page)
	if headline != "No, this video is not from last week" {
		t.Errorf("unexpected headline %q", headline)
	}
	if subheadline != "" {
		t.Errorf("expected empty subheadline, got %q", subheadline)
	}
}

func TestExtractDetails_NothingFound(t *testing.T) {
	headline, subheadline := extractDetails(`<html><body><p>plain page</p></body></html>`)
	if headline != "" || subheadline != "" {
		t.Errorf("expected empty details, got %q / %q", headline, subheadline)
	}
}

func TestExtractDetails_EmptyMetaContentIgnored(t *testing.T) {
	page := `
	<html><head><meta property="og:title" content=""></head>
	<body><h1>Fallback wins</h1></body></html>`

	headline, _ := extractDetails(page)
	if headline != "Fallback wins" {
		t.Errorf("unexpected headline %q", headline)
	}
}
