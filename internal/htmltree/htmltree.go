// Package htmltree provides a mutable element tree over parsed HTML.
//
// Parsing and serialization are delegated to golang.org/x/net/html; this
// package converts between that representation and a text/tail model in
// which character data before the first child belongs to the element
// (Text) and character data after an element's closing tag belongs to
// that element (Tail). The split makes offset-accurate splicing around
// element boundaries possible without juggling sibling text nodes.
package htmltree

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Sentinel errors for tree construction.
var (
	ErrEmptyDocument = errors.New("htmltree: document is empty")
	ErrNoRootElement = errors.New("htmltree: no root element found")
)

// NodeType distinguishes element nodes from comment nodes.
type NodeType int

const (
	// ElementNode is a regular HTML element.
	ElementNode NodeType = iota
	// CommentNode carries comment data; it has no tag, text, or children.
	CommentNode
)

// Node is one element (or comment) in the tree.
//
// Invariant: Text and Tail partition all character data. Text is the
// content between the opening tag and the first child; Tail is the
// content between this node's closing tag and the next sibling (or the
// parent's closing tag). Empty string means no character data.
type Node struct {
	Type     NodeType
	Tag      string           // element name; empty for comments
	Data     string           // comment content; empty for elements
	Attrs    []html.Attribute // insertion order preserved
	Text     string
	Tail     string
	Children []*Node
	Parent   *Node // nil for the root
}

// AttrVal returns the value of the named attribute and whether it is set.
func (n *Node) AttrVal(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value in place
// so attribute order is stable.
func (n *Node) SetAttr(key, val string) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Val = val
			return
		}
	}
	n.Attrs = append(n.Attrs, html.Attribute{Key: key, Val: val})
}

// AppendClasses appends classes to the class attribute, space-separated,
// after any existing classes.
func (n *Node) AppendClasses(classes []string) {
	if len(classes) == 0 {
		return
	}
	joined := strings.Join(classes, " ")
	if existing, ok := n.AttrVal("class"); ok && existing != "" {
		n.SetAttr("class", existing+" "+joined)
		return
	}
	n.SetAttr("class", joined)
}

// HasClassToken reports whether the class attribute contains the given
// whitespace-separated token.
func (n *Node) HasClassToken(token string) bool {
	val, ok := n.AttrVal("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(val) {
		if c == token {
			return true
		}
	}
	return false
}

// ChildIndex returns the index of child in n's children, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// InsertChild inserts child at index i, reparenting it to n.
// Indexes past the end append.
func (n *Node) InsertChild(i int, child *Node) {
	child.Parent = n
	if i >= len(n.Children) {
		n.Children = append(n.Children, child)
		return
	}
	if i < 0 {
		i = 0
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = child
}

// RemoveChild removes child from n's children. The child's tail content
// is removed with it. No-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	i := n.ChildIndex(child)
	if i < 0 {
		return
	}
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	child.Parent = nil
}

// Iter visits n and every descendant in pre-order document order.
func (n *Node) Iter(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Iter(visit)
	}
}

// TextContent returns the concatenation of all text inside n, ignoring
// markup, in document order. Tail content of n itself is excluded.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, c := range n.Children {
		c.collectText(b)
		b.WriteString(c.Tail)
	}
}

// Fragment is one top-level piece of a fragment parse: either a bare
// text run (Node is nil) or an element/comment subtree.
type Fragment struct {
	Text string
	Node *Node
}

// Parse parses raw as a complete document and returns the root element.
// The parser auto-completes missing html/head/body wrappers. Whitespace-
// only input yields ErrEmptyDocument.
func Parse(raw string) (*Node, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyDocument
	}
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return fromHTML(c), nil
		}
	}
	return nil, ErrNoRootElement
}

// ParseFragments parses raw as a sequence of top-level fragments in body
// context. Bare text between elements is returned as text fragments in
// original order; nothing is wrapped in a root element.
func ParseFragments(raw string) ([]Fragment, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), ctx)
	if err != nil {
		return nil, err
	}
	var frags []Fragment
	for _, hn := range nodes {
		switch hn.Type {
		case html.TextNode:
			if len(frags) > 0 && frags[len(frags)-1].Node == nil {
				frags[len(frags)-1].Text += hn.Data
				continue
			}
			frags = append(frags, Fragment{Text: hn.Data})
		case html.ElementNode, html.CommentNode:
			frags = append(frags, Fragment{Node: fromHTML(hn)})
		}
	}
	return frags, nil
}

// fromHTML converts an x/net/html element or comment subtree into the
// text/tail model. Doctype and error nodes are dropped.
func fromHTML(hn *html.Node) *Node {
	if hn.Type == html.CommentNode {
		return &Node{Type: CommentNode, Data: hn.Data}
	}
	n := &Node{
		Type:  ElementNode,
		Tag:   hn.Data,
		Attrs: append([]html.Attribute(nil), hn.Attr...),
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if len(n.Children) == 0 {
				n.Text += c.Data
			} else {
				n.Children[len(n.Children)-1].Tail += c.Data
			}
		case html.ElementNode, html.CommentNode:
			child := fromHTML(c)
			child.Parent = n
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// toHTML converts a Node subtree back into x/net/html form. Tail content
// is not included; it belongs to the caller's context.
func toHTML(n *Node) *html.Node {
	if n.Type == CommentNode {
		return &html.Node{Type: html.CommentNode, Data: n.Data}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     append([]html.Attribute(nil), n.Attrs...),
	}
	if n.Text != "" {
		hn.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		hn.AppendChild(toHTML(c))
		if c.Tail != "" {
			hn.AppendChild(&html.Node{Type: html.TextNode, Data: c.Tail})
		}
	}
	return hn
}

// Render serializes n using HTML serialization rules (void elements
// closed with "/>", entity escaping). The node's own tail is not
// rendered.
func Render(n *Node) string {
	var b strings.Builder
	// Render on a strings.Builder cannot fail.
	_ = html.Render(&b, toHTML(n))
	return b.String()
}
