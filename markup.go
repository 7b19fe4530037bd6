package md2site

import (
	"regexp"
	"strings"

	"github.com/ptools/md2site/internal/htmltree"
)

// markupPattern matches the inline class annotation token %%c:a, b%%.
// The capture holds the comma-separated class list.
var markupPattern = regexp.MustCompile(`%%c:([^%]+)%%`)

// isVerbatimTag reports whether tag opens a verbatim region in which
// annotation tokens must not be interpreted.
func isVerbatimTag(tag string) bool {
	return strings.EqualFold(tag, "pre") || strings.EqualFold(tag, "code")
}

// extractMarkup scans the tree for %%c:...%% annotation tokens in text
// and tail content, strips the first token per string, and appends the
// listed classes to the owning element's class attribute. Tokens inside
// pre/code regions are left verbatim.
func extractMarkup(root *htmltree.Node) {
	processMarkup(root, false)
}

// processMarkup walks the tree carrying a skip flag that is inherited by
// the children of pre/code elements. A node's own text is interpreted
// under the inherited flag; its tail belongs to the parent's rendering
// context and is interpreted based on the parent's tag alone, so a node
// following a pre/code sibling still has its tail scanned.
func processMarkup(n *htmltree.Node, skip bool) {
	if !skip && strings.Contains(n.Text, "%%") {
		n.Text = consumeClassToken(n.Text, n)
	}
	childSkip := skip || isVerbatimTag(n.Tag)
	for _, c := range n.Children {
		processMarkup(c, childSkip)
	}
	if n.Parent != nil && strings.Contains(n.Tail, "%%") {
		n.Tail = consumeClassToken(n.Tail, n.Parent)
	}
}

// consumeClassToken removes the first annotation token from s and adds
// its classes to owner. Text owned by a pre/code element is returned
// unchanged. Class names are trimmed and empty entries dropped.
func consumeClassToken(s string, owner *htmltree.Node) string {
	if owner == nil || isVerbatimTag(owner.Tag) {
		return s
	}
	m := markupPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	list := s[m[2]:m[3]]
	var classes []string
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			classes = append(classes, c)
		}
	}
	owner.AppendClasses(classes)
	return s[:m[0]] + s[m[1]:]
}
