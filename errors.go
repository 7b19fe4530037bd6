package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Article list errors.
	ErrNoArticles          = errors.New("no valid articles found")
	ErrListParse           = errors.New("failed to parse article list document")
	ErrPlaceholderNotFound = errors.New("placeholder %%card%% not found in list document")
	ErrCardFragments       = errors.New("failed to parse card fragments")
)
