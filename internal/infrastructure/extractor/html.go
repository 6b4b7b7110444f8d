package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// extractHTML returns the visible text of an HTML document: markup stripped,
// script and style subtrees skipped, runs of whitespace collapsed to single
// spaces.
func extractHTML(content []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var b strings.Builder
	collectText(root, &b)
	return strings.Join(strings.Fields(b.String()), " "), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
