package retrieve

import (
	"strings"

	"golang.org/x/net/html"
)

// Clean strips markup from raw HTML and returns normalized plain text:
// script/style content removed, lines trimmed, blank lines dropped.
func Clean(rawMarkup string) string {
	if strings.TrimSpace(rawMarkup) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(rawMarkup))
	if err != nil {
		return ""
	}

	text := extractVisibleText(doc)
	return normalizeWhitespace(text)
}

// extractVisibleText extracts text nodes from HTML, skipping scripts/styles.
func extractVisibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString("\n")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// normalizeWhitespace trims each line, breaks multi-headline lines apart,
// and drops blanks.
func normalizeWhitespace(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, "\n")
}
