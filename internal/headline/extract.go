package headline

import (
	"strings"

	"golang.org/x/net/html"
)

// extractDetails pulls the headline and subheadline out of a claim-source
// page. Headline prefers the og:title meta tag, falling back to the first h1;
// subheadline comes from og:description only. Either may come back empty.
func extractDetails(htmlContent string) (headline, subheadline string) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", ""
	}

	var firstH1 string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				prop, content := "", ""
				for _, attr := range n.Attr {
					switch attr.Key {
					case "property":
						prop = attr.Val
					case "content":
						content = attr.Val
					}
				}
				switch prop {
				case "og:title":
					if headline == "" && content != "" {
						headline = strings.TrimSpace(content)
					}
				case "og:description":
					if subheadline == "" && content != "" {
						subheadline = strings.TrimSpace(content)
					}
				}
			case "h1":
				if firstH1 == "" {
					firstH1 = strings.TrimSpace(nodeText(n))
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if headline == "" {
		headline = firstH1
	}
	return headline, subheadline
}

// nodeText collects the concatenated text content of a node, handling
// nested elements inside headings.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
