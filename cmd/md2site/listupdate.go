package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ptools/md2site/internal/fileutil"
)

// Sentinel errors for list update operations.
var (
	ErrReadList    = errors.New("failed to read article list file")
	ErrWriteList   = errors.New("failed to write article list file")
	ErrListNotHTML = errors.New("article list file must have .html or .htm extension")
)

// updateArticleList rebuilds the card list inside the article list
// document. Injection failures abort before the write, so the on-disk
// document is never left half-updated.
func updateArticleList(ctx context.Context, pool Pool, params *conversionParams, env *Environment) error {
	listPath := params.listPath
	if !isHTMLPath(listPath) {
		return fmt.Errorf("%w: %s", ErrListNotHTML, listPath)
	}

	articleDir := params.articleDir
	if articleDir == "" {
		articleDir = params.outputDir
	}

	svc := pool.Acquire()
	defer pool.Release(svc)

	cards, err := svc.CollectArticles(articleDir)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(listPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadList, err)
	}

	res, err := svc.UpdateList(ctx, string(content), cards, filepath.Dir(listPath))
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(listPath, []byte(res.HTML), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteList, err)
	}

	env.Logger.Info("article list updated", "path", listPath, "cards", len(cards))
	fmt.Fprintf(env.Stdout, "Updated %s with %d card(s)\n", listPath, len(cards))

	if params.open {
		openViewer(listPath, env.Logger)
	}
	return nil
}

// isHTMLPath reports whether path has an .html or .htm extension.
func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
