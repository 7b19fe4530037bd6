package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2site "github.com/ptools/md2site"
	"github.com/ptools/md2site/internal/config"
)

func testEnv() (*Environment, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &Environment{
		Stdout: &stdout,
		Stderr: &bytes.Buffer{},
		Logger: discardLogger(),
		Config: config.DefaultConfig(),
	}, &stdout
}

func TestUpdateArticleList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	posts := filepath.Join(dir, "posts")
	writeFile(t, filepath.Join(posts, "alpha.html"), "<html><body><h1>Alpha</h1></body></html>")
	writeFile(t, filepath.Join(posts, "beta.html"), "<html><body><h1>Beta</h1></body></html>")

	listPath := filepath.Join(dir, "index.html")
	writeFile(t, listPath, `<!DOCTYPE html>
<html>
<head><title>Articles</title></head>
<body>
<main>
%%card%%
<div class="card"><a href="stale.html">Stale</a></div>
</main>
</body>
</html>`)

	env, stdout := testEnv()
	params := &conversionParams{listPath: listPath, articleDir: posts}
	pool := md2site.NewServicePool(1)
	if err := updateArticleList(context.Background(), pool, params, env); err != nil {
		t.Fatalf("updateArticleList() error = %v", err)
	}

	written, err := os.ReadFile(listPath)
	if err != nil {
		t.Fatalf("reading list: %v", err)
	}
	got := string(written)

	if strings.Contains(got, "stale.html") {
		t.Errorf("stale card survived:\n%s", got)
	}
	// Hrefs are relative to the list document's directory.
	for _, want := range []string{`<a href="posts/alpha.html">Alpha</a>`, `<a href="posts/beta.html">Beta</a>`} {
		if !strings.Contains(got, want) {
			t.Errorf("list missing %q:\n%s", want, got)
		}
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Errorf("doctype not preserved:\n%s", got)
	}
	if !strings.Contains(stdout.String(), "2 card(s)") {
		t.Errorf("stdout = %q, want card count message", stdout.String())
	}
}

func TestUpdateArticleListRejectsNonHTMLPath(t *testing.T) {
	t.Parallel()

	env, _ := testEnv()
	params := &conversionParams{listPath: "list.txt"}
	err := updateArticleList(context.Background(), md2site.NewServicePool(1), params, env)
	if !errors.Is(err, ErrListNotHTML) {
		t.Fatalf("updateArticleList() error = %v, want ErrListNotHTML", err)
	}
}

func TestUpdateArticleListKeepsFileOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "alpha.html"), "<html><body><h1>Alpha</h1></body></html>")

	listPath := filepath.Join(dir, "index.html")
	original := "<html><body><p>no placeholder here</p></body></html>"
	writeFile(t, listPath, original)

	env, _ := testEnv()
	params := &conversionParams{listPath: listPath, articleDir: dir}
	err := updateArticleList(context.Background(), md2site.NewServicePool(1), params, env)
	if !errors.Is(err, md2site.ErrPlaceholderNotFound) {
		t.Fatalf("updateArticleList() error = %v, want ErrPlaceholderNotFound", err)
	}

	written, readErr := os.ReadFile(listPath)
	if readErr != nil {
		t.Fatalf("reading list: %v", readErr)
	}
	if string(written) != original {
		t.Errorf("list file changed on failed update:\n%s", written)
	}
}
