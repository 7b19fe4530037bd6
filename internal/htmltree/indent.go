package htmltree

import "strings"

// isVerbatimIndentTag reports tags whose subtrees are never re-indented:
// rewriting whitespace inside them would change rendered content
// (highlighted code emits spans whose text and tails are significant
// whitespace).
func isVerbatimIndentTag(tag string) bool {
	return strings.EqualFold(tag, "pre") || strings.EqualFold(tag, "code")
}

// Indent rewrites whitespace-only text and tail content so that every
// element's children sit on their own line, indented one unit of space
// per nesting level. Non-whitespace character data is never modified.
// Subtrees rooted at pre or code elements are left untouched.
func Indent(root *Node, space string) {
	indentChildren(root, 0, space)
}

func indentChildren(n *Node, level int, space string) {
	if len(n.Children) == 0 || isVerbatimIndentTag(n.Tag) {
		return
	}
	childIndent := "\n" + strings.Repeat(space, level+1)
	closeIndent := "\n" + strings.Repeat(space, level)

	if strings.TrimSpace(n.Text) == "" {
		n.Text = childIndent
	}
	for i, c := range n.Children {
		if strings.TrimSpace(c.Tail) == "" {
			if i == len(n.Children)-1 {
				c.Tail = closeIndent
			} else {
				c.Tail = childIndent
			}
		}
		indentChildren(c, level+1, space)
	}
}
