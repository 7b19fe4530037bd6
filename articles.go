package md2site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectArticles scans dir (non-recursively) for .html/.htm files and
// returns one Card per article, titled by its first h1 heading and
// sorted by title. Files that cannot be read are logged and skipped;
// a directory with zero readable articles yields ErrNoArticles.
func (s *Service) CollectArticles(dir string) ([]Card, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading article directory: %w", err)
	}

	var cards []Card
	for _, entry := range entries {
		if entry.IsDir() || !isHTMLFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path) // #nosec G304 -- path from directory listing
		if err != nil {
			s.log.Warn("skipping unreadable article", "path", path, "error", err)
			continue
		}
		cards = append(cards, Card{Title: ExtractTitle(string(content)), Path: path})
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoArticles, dir)
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Title < cards[j].Title })
	return cards, nil
}

// isHTMLFile reports whether name has an .html or .htm extension.
func isHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
