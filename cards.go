package md2site

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ptools/md2site/internal/htmltree"
)

// placeholderToken marks the insertion point for the generated card
// list. Exactly one occurrence is resolved per injection; any further
// occurrences are left untouched.
const placeholderToken = "%%card%%"

// cardTemplate is the fixed fragment produced per article. The title is
// escaped by the HTML serializer on output.
const cardTemplate = `<div class="card"><a href="%s">%s</a></div>`

// Card describes one article in the generated list: its display title
// and the path of its HTML file.
type Card struct {
	Title string
	Path  string
}

// renderCards builds the card fragment blob, one fragment per card,
// newline-separated, with each path relativized to baseDir.
func renderCards(cards []Card, baseDir string) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, fmt.Sprintf(cardTemplate, relativize(c.Path, baseDir), c.Title))
	}
	return strings.Join(parts, "\n")
}

// relativize computes path relative to baseDir with forward slashes for
// use in href attributes. If no relative path exists the original path
// is used as-is.
func relativize(path, baseDir string) string {
	if baseDir == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// InjectCards replaces the first %%card%% placeholder in doc with one
// generated card element per entry in cards, in order. Pre-existing card
// elements anywhere in the tree are removed first, so repeated list
// updates do not accumulate stale entries. Card hrefs are relativized to
// baseDir, normally the list document's containing directory.
//
// The tree is mutated in place. If no placeholder exists the tree is
// still purged but ErrPlaceholderNotFound is returned; callers must not
// persist the document in that case.
func InjectCards(doc *htmltree.Node, cards []Card, baseDir string) error {
	purgeCards(doc)

	frags, err := htmltree.ParseFragments(renderCards(cards, baseDir))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCardFragments, err)
	}
	// Only element fragments are spliced; the newline separators parse
	// as bare text fragments and are dropped here. The final formatting
	// pass re-establishes canonical whitespace.
	var elems []*htmltree.Node
	for _, frag := range frags {
		if frag.Node != nil && frag.Node.Type == htmltree.ElementNode {
			elems = append(elems, frag.Node)
		}
	}

	if !spliceCards(doc, elems) {
		return ErrPlaceholderNotFound
	}
	return nil
}

// purgeCards removes every element whose class attribute contains the
// whitespace-separated token "card", at any depth. Tail content of a
// removed element is discarded with it.
func purgeCards(doc *htmltree.Node) {
	var stale []*htmltree.Node
	doc.Iter(func(n *htmltree.Node) {
		if n.Parent != nil && n.HasClassToken("card") {
			stale = append(stale, n)
		}
	})
	for _, n := range stale {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// spliceCards inserts elems at the first placeholder occurrence found in
// a pre-order walk: each node's text, then its child subtrees, then its
// tail. Returns true once a splice happened; the walk stops there.
func spliceCards(n *htmltree.Node, elems []*htmltree.Node) bool {
	if strings.Contains(n.Text, placeholderToken) {
		before, after, _ := strings.Cut(n.Text, placeholderToken)
		if len(elems) == 0 {
			n.Text = before + after
			return true
		}
		n.Text = before
		for i, e := range elems {
			n.InsertChild(i, e)
		}
		if after != "" {
			last := elems[len(elems)-1]
			last.Tail = after + last.Tail
		}
		return true
	}

	for _, c := range n.Children {
		if spliceCards(c, elems) {
			return true
		}
	}

	if n.Parent != nil && strings.Contains(n.Tail, placeholderToken) {
		before, after, _ := strings.Cut(n.Tail, placeholderToken)
		if len(elems) == 0 {
			n.Tail = before + after
			return true
		}
		n.Tail = before
		idx := n.Parent.ChildIndex(n)
		for i, e := range elems {
			n.Parent.InsertChild(idx+1+i, e)
		}
		if after != "" {
			last := elems[len(elems)-1]
			last.Tail = after + last.Tail
		}
		return true
	}
	return false
}
