package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2site "github.com/ptools/md2site"
)

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	writeFile(t, filepath.Join(dir, "a.md"), "# Alpha\n\nfirst")
	writeFile(t, filepath.Join(dir, "b.md"), "# Beta\n\nsecond")

	files := []FileToConvert{
		{InputPath: filepath.Join(dir, "a.md"), OutputPath: filepath.Join(out, "a.html")},
		{InputPath: filepath.Join(dir, "b.md"), OutputPath: filepath.Join(out, "b.html")},
		{InputPath: filepath.Join(dir, "missing.md"), OutputPath: filepath.Join(out, "missing.html")},
	}

	pool := md2site.NewServicePool(2)
	results := convertBatch(context.Background(), pool, files, &conversionParams{format: true})
	if len(results) != len(files) {
		t.Fatalf("got %d results, want %d", len(results), len(files))
	}

	if results[0].Err != nil || results[1].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", results[0].Err, results[1].Err)
	}
	if results[0].Title != "Alpha" || results[1].Title != "Beta" {
		t.Errorf("titles = %q, %q", results[0].Title, results[1].Title)
	}
	if !errors.Is(results[2].Err, ErrReadMarkdown) {
		t.Errorf("results[2].Err = %v, want ErrReadMarkdown", results[2].Err)
	}

	written, err := os.ReadFile(filepath.Join(out, "a.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(written), ">Alpha</h1>") {
		t.Errorf("output missing heading:\n%s", written)
	}
}

func TestConvertBatchAppliesTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "page.md")
	writeFile(t, in, "# Home\n\nwelcome")
	outPath := filepath.Join(dir, "page.html")

	params := &conversionParams{
		template: "<!DOCTYPE html>\n<html><head><title>%%title%%</title></head><body>%%content%%</body></html>",
		format:   true,
	}
	pool := md2site.NewServicePool(1)
	results := convertBatch(context.Background(), pool,
		[]FileToConvert{{InputPath: in, OutputPath: outPath}}, params)

	if results[0].Err != nil {
		t.Fatalf("convert error = %v", results[0].Err)
	}
	if results[0].State != md2site.Formatted {
		t.Errorf("State = %v, want Formatted", results[0].State)
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(written), "<title>Home</title>") {
		t.Errorf("template not applied:\n%s", written)
	}
}

func TestConvertBatchCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "a.md")
	writeFile(t, in, "# A")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := md2site.NewServicePool(1)
	results := convertBatch(ctx, pool,
		[]FileToConvert{{InputPath: in, OutputPath: filepath.Join(dir, "a.html")}},
		&conversionParams{})

	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", results[0].Err)
	}
}
