// Package md2site converts Markdown documents into a formatted static
// HTML site with a generated article index.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2site.New()
//	result, err := svc.Convert(ctx, md2site.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Format:   true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", []byte(result.HTML), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending and blank line normalization)
//  2. Markdown to HTML conversion via Goldmark (GFM, typographer,
//     syntax highlighting)
//  3. Page template fill (%%title%% and %%content%% slots)
//  4. HTML formatting: canonical 4-space indentation, <pre><code>
//     same-line opening tags, %%c:...%% class annotation extraction
//
// Formatting is best-effort: documents that cannot be parsed whole are
// formatted fragment by fragment, and input that defeats even that is
// returned unchanged. FormatResult.State reports which path ran.
//
// # Article Lists
//
// A site's index document carries a %%card%% placeholder. CollectArticles
// gathers title/path pairs from a directory of converted documents and
// UpdateList splices one card link per article into the placeholder,
// replacing any cards from earlier runs:
//
//	cards, err := svc.CollectArticles("site/articles")
//	res, err := svc.UpdateList(ctx, listHTML, cards, "site")
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to bound concurrency. Each
// service owns its parser state, so no cross-call synchronization is
// needed:
//
//	pool := md2site.NewServicePool(4)
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Convert(ctx, input)
package md2site
