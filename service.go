package md2site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ptools/md2site/internal/htmltree"
)

// Service orchestrates the markdown-to-HTML pipeline: preprocessing,
// rendering, page template fill, and formatting. A Service owns no
// shared mutable state beyond its logger, so independent services may
// run on independent workers without synchronization.
type Service struct {
	preprocessor markdownPreprocessor
	converter    htmlConverter
	formatter    *Formatter
	log          *slog.Logger
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		preprocessor: &commonMarkPreprocessor{},
		converter:    newGoldmarkConverter(),
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.formatter = NewFormatter(s.log)
	return s
}

// Formatter returns the service's document formatter for standalone use.
func (s *Service) Formatter() *Formatter {
	return s.formatter
}

// Convert runs the conversion pipeline for one document and returns the
// produced HTML. The context is used for cancellation; an in-flight
// tree transform always runs to completion.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	content := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	body, err := s.converter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := ExtractTitle(body)
	page := body
	if input.Template != "" {
		page = fillTemplate(input.Template, title, body)
	}

	res := &ConvertResult{HTML: page, Title: title, State: Unformatted}
	if input.Format {
		fr := s.formatter.Format(page)
		res.HTML = fr.HTML
		res.State = fr.State
	}
	return res, nil
}

// UpdateList injects cards into the article list document listHTML and
// returns the re-formatted result. Card hrefs are relativized to
// baseDir, the directory that will contain the written list document.
// On error the caller must leave the on-disk document untouched.
func (s *Service) UpdateList(ctx context.Context, listHTML string, cards []Card, baseDir string) (*FormatResult, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	root, err := htmltree.Parse(listHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListParse, err)
	}

	if err := InjectCards(root, cards, baseDir); err != nil {
		return nil, err
	}

	res := s.formatter.Format(htmltree.Render(root))
	s.log.Debug("article list updated", "cards", len(cards), "state", res.State.String())
	return &res, nil
}
