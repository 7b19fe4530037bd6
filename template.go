package md2site

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Page template slots. The template is plain HTML with these literal
// markers; both are replaced everywhere they occur.
const (
	titleSlot   = "%%title%%"
	contentSlot = "%%content%%"
)

// DefaultTitle is used when a document has no h1 heading.
const DefaultTitle = "Untitled"

// h1Selector matches the heading that carries the document title.
var h1Selector = cascadia.MustCompile("h1")

// fillTemplate substitutes the title and content slots of a page
// template. Unknown markers are left alone.
func fillTemplate(tmpl, title, content string) string {
	out := strings.ReplaceAll(tmpl, titleSlot, title)
	return strings.ReplaceAll(out, contentSlot, content)
}

// ExtractTitle returns the text content of the first h1 element in
// htmlContent, or DefaultTitle when there is none.
func ExtractTitle(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return DefaultTitle
	}
	h1 := h1Selector.MatchFirst(doc)
	if h1 == nil {
		return DefaultTitle
	}
	title := strings.TrimSpace(textContent(h1))
	if title == "" {
		return DefaultTitle
	}
	return title
}

// textContent concatenates all text node data under n, ignoring markup.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
