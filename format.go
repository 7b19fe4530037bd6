package md2site

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ptools/md2site/internal/htmltree"
)

// indentUnit is one level of canonical indentation.
const indentUnit = "    "

// doctypePattern locates a leading DOCTYPE declaration, case-insensitive.
var doctypePattern = regexp.MustCompile(`(?i)(<!DOCTYPE[^>]*>)`)

// FormatState reports which formatting path produced the output.
type FormatState int

const (
	// Unformatted means both parse paths failed; the input was returned
	// unmodified.
	Unformatted FormatState = iota
	// DegradedFormatted means the full-document parse failed and the
	// output was assembled fragment by fragment.
	DegradedFormatted
	// Formatted means the full-document path succeeded.
	Formatted
)

// String returns a stable name for logging.
func (s FormatState) String() string {
	switch s {
	case Formatted:
		return "formatted"
	case DegradedFormatted:
		return "degraded"
	default:
		return "unformatted"
	}
}

// FormatResult is the outcome of a Format call. HTML is always usable;
// State tells the caller how much normalization was applied.
type FormatResult struct {
	HTML  string
	State FormatState
}

// Formatter normalizes HTML documents: canonical 4-space indentation,
// pre/code same-line opening tags, and %%c:...%% annotation extraction.
// Formatting is best-effort and never destructive; a Formatter does not
// return errors, it degrades.
type Formatter struct {
	log *slog.Logger
}

// NewFormatter creates a Formatter reporting through log. A nil logger
// discards all output.
func NewFormatter(log *slog.Logger) *Formatter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Formatter{log: log}
}

// Format re-serializes rawHTML with canonical indentation. A leading
// DOCTYPE and any content preceding it (stray comments) are preserved
// verbatim and re-prefixed. If the document cannot be parsed whole, each
// top-level fragment is formatted independently; if even that fails the
// input is returned unchanged.
func (f *Formatter) Format(rawHTML string) FormatResult {
	before, doctype, after := splitDoctype(rawHTML)

	if out, ok := f.formatDocument(after); ok {
		return FormatResult{HTML: before + doctype + "\n" + out, State: Formatted}
	}

	// Degraded path runs over the original input, doctype included, so
	// no content is lost when the document is not well-formed enough
	// for a full parse.
	if out, ok := f.formatFragments(rawHTML); ok {
		return FormatResult{HTML: out, State: DegradedFormatted}
	}

	f.log.Error("formatting failed, returning input unmodified")
	return FormatResult{HTML: rawHTML, State: Unformatted}
}

// splitDoctype splits input into content before the DOCTYPE, the literal
// declaration, and the remainder. Without a DOCTYPE, before and doctype
// are empty and after is the whole input.
func splitDoctype(input string) (before, doctype, after string) {
	loc := doctypePattern.FindStringIndex(input)
	if loc == nil {
		return "", "", input
	}
	return input[:loc[0]], input[loc[0]:loc[1]], input[loc[1]:]
}

// formatDocument runs the primary path: full-document parse, indent,
// pre/code adjustment, markup extraction, serialize.
func (f *Formatter) formatDocument(raw string) (string, bool) {
	root, err := htmltree.Parse(raw)
	if err != nil {
		f.log.Warn("full document parse failed, trying fragment mode", "error", err)
		return "", false
	}
	f.formatTree(root)
	return htmltree.Render(root), true
}

// formatFragments runs the degraded path: parse the input as a sequence
// of top-level fragments and format each element independently. Bare
// text fragments pass through verbatim. A fragment that cannot be
// formatted is serialized as-is rather than aborting its siblings.
func (f *Formatter) formatFragments(raw string) (string, bool) {
	frags, err := htmltree.ParseFragments(raw)
	if err != nil {
		f.log.Error("fragment parse failed", "error", err)
		return "", false
	}
	var b strings.Builder
	for _, frag := range frags {
		if frag.Node == nil {
			b.WriteString(frag.Text)
			continue
		}
		f.formatTree(frag.Node)
		b.WriteString(htmltree.Render(frag.Node))
	}
	return b.String(), true
}

// formatTree applies the in-place formatting passes shared by both
// paths: indentation, the pre/code same-line rule, markup extraction.
func (f *Formatter) formatTree(root *htmltree.Node) {
	htmltree.Indent(root, indentUnit)
	fixPreCode(root)
	extractMarkup(root)
}

// fixPreCode clears indentation between <pre> and a leading <code> child
// and forces a newline after </code>, so syntax-highlighted blocks open
// as <pre><code> on one line.
func fixPreCode(root *htmltree.Node) {
	root.Iter(func(n *htmltree.Node) {
		if !strings.EqualFold(n.Tag, "pre") || len(n.Children) == 0 {
			return
		}
		first := n.Children[0]
		if first.Type == htmltree.ElementNode && strings.EqualFold(first.Tag, "code") {
			n.Text = ""
			first.Tail = "\n"
		}
	})
}
