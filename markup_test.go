package md2site

import (
	"testing"

	"github.com/ptools/md2site/internal/htmltree"
)

// mustParseBody parses a document and returns its body element.
func mustParseBody(t *testing.T, doc string) *htmltree.Node {
	t.Helper()
	root, err := htmltree.Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, c := range root.Children {
		if c.Tag == "body" {
			return c
		}
	}
	t.Fatal("no body element")
	return nil
}

func TestExtractMarkupText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantText  string
		wantClass string
	}{
		{
			name:      "single token",
			doc:       "<html><body><p>Hello%%c:big, bold%%world</p></body></html>",
			wantText:  "Helloworld",
			wantClass: "big bold",
		},
		{
			name:      "classes trimmed and empties dropped",
			doc:       "<html><body><p>%%c: a ,, b %%x</p></body></html>",
			wantText:  "x",
			wantClass: "a b",
		},
		{
			name:      "appends after existing classes",
			doc:       `<html><body><p class="old">%%c:new%%x</p></body></html>`,
			wantText:  "x",
			wantClass: "old new",
		},
		{
			name:      "only first token consumed",
			doc:       "<html><body><p>%%c:a%%mid%%c:b%%end</p></body></html>",
			wantText:  "mid%%c:b%%end",
			wantClass: "a",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := mustParseBody(t, tt.doc)
			extractMarkup(body.Parent)

			p := body.Children[0]
			if p.Text != tt.wantText {
				t.Errorf("text = %q, want %q", p.Text, tt.wantText)
			}
			class, _ := p.AttrVal("class")
			if class != tt.wantClass {
				t.Errorf("class = %q, want %q", class, tt.wantClass)
			}
		})
	}
}

func TestExtractMarkupSkipsVerbatimRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		// path from body to the node whose text must stay untouched
		path []int
		want string
	}{
		{
			name: "pre text",
			doc:  "<html><body><pre>%%c:x%%keep</pre></body></html>",
			path: []int{0},
			want: "%%c:x%%keep",
		},
		{
			name: "code text",
			doc:  "<html><body><code>%%c:x%%keep</code></body></html>",
			path: []int{0},
			want: "%%c:x%%keep",
		},
		{
			name: "element nested inside pre",
			doc:  "<html><body><pre><span>%%c:x%%keep</span></pre></body></html>",
			path: []int{0, 0},
			want: "%%c:x%%keep",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := mustParseBody(t, tt.doc)
			extractMarkup(body.Parent)

			n := body
			for _, i := range tt.path {
				n = n.Children[i]
			}
			if n.Text != tt.want {
				t.Errorf("text = %q, want untouched %q", n.Text, tt.want)
			}
			if _, ok := n.AttrVal("class"); ok {
				t.Error("class attribute set inside verbatim region")
			}
		})
	}
}

func TestExtractMarkupTailOwnership(t *testing.T) {
	t.Parallel()

	// A tail belongs to the parent's rendering context: a token in the
	// tail of a span inside <pre> is verbatim, but the tail of the
	// <pre> element itself belongs to body and is interpreted.
	body := mustParseBody(t, "<html><body><pre><span>x</span>%%c:a%%tail</pre>%%c:b%%after</body></html>")
	extractMarkup(body.Parent)

	pre := body.Children[0]
	span := pre.Children[0]
	if span.Tail != "%%c:a%%tail" {
		t.Errorf("span tail = %q, want untouched", span.Tail)
	}
	if pre.Tail != "after" {
		t.Errorf("pre tail = %q, want %q", pre.Tail, "after")
	}
	class, _ := body.AttrVal("class")
	if class != "b" {
		t.Errorf("body class = %q, want %q (tail classes apply to the parent)", class, "b")
	}
}

func TestExtractMarkupTailAfterVerbatimSibling(t *testing.T) {
	t.Parallel()

	// A node following a pre sibling still has its own tail scanned;
	// the skip state of the sibling does not leak sideways.
	body := mustParseBody(t, "<html><body><pre>code</pre><p>x</p>%%c:a%%t</body></html>")
	extractMarkup(body.Parent)

	p := body.Children[1]
	if p.Tail != "t" {
		t.Errorf("p tail = %q, want %q", p.Tail, "t")
	}
	class, _ := body.AttrVal("class")
	if class != "a" {
		t.Errorf("body class = %q, want %q", class, "a")
	}
}

func TestExtractMarkupNoToken(t *testing.T) {
	t.Parallel()

	// A stray %% without the token form is left alone.
	body := mustParseBody(t, "<html><body><p>100%% done</p></body></html>")
	extractMarkup(body.Parent)

	p := body.Children[0]
	if p.Text != "100%% done" {
		t.Errorf("text = %q, want untouched", p.Text)
	}
}
