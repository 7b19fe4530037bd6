package md2site

import "log/slog"

// Input contains conversion parameters for a single document.
type Input struct {
	Markdown string // Markdown content (required)
	Template string // Page template with %%title%%/%%content%% slots (optional)
	Format   bool   // Re-indent the produced HTML
}

// ConvertResult is the outcome of converting one document.
type ConvertResult struct {
	HTML  string      // Final HTML, formatted when requested
	Title string      // First h1 text, or DefaultTitle
	State FormatState // Unformatted when Input.Format was false
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used by the service and its formatter.
// The default discards all output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}
