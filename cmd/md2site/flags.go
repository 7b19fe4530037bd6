package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	config   string
	output   string
	template string
	workers  int
	noFormat bool

	list       string
	articleDir string
	open       bool

	quiet   bool
	verbose bool
	version bool

	inputs []string // positional: markdown files or directories
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory for converted HTML")
	fs.StringVarP(&f.template, "template", "t", "", "HTML page template with %%title%%/%%content%% slots")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noFormat, "no-format", false, "skip HTML formatting of converted files")

	fs.StringVarP(&f.list, "list", "l", "", "article list HTML document to update")
	fs.StringVar(&f.articleDir, "articles", "", "directory scanned for articles (default: output directory)")
	fs.BoolVar(&f.open, "open", false, "open the updated article list when done")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	f.inputs = fs.Args()
	return f, nil
}

// printUsage prints the usage message to the flag set's output.
func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: md2site [flags] <input>...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Convert markdown files to formatted HTML and maintain an article list.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Arguments:")
	fmt.Fprintln(out, "  input    Markdown files or directories (optional if config has input.defaultDir)")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, fs.FlagUsages())
}
