package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	md2site "github.com/ptools/md2site"
	"github.com/ptools/md2site/internal/config"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no valid input files")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrReadTemplate     = errors.New("failed to read template file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrConversionFailed = errors.New("conversion finished with failures")
)

// conversionParams is the merged flag/config view driving one run.
type conversionParams struct {
	outputDir    string
	templatePath string
	template     string // template file content, read once
	format       bool
	listPath     string
	articleDir   string
	open         bool
	workers      int
}

// mergeParams merges flags over config values. Flags win.
func mergeParams(flags *cliFlags, cfg *config.Config) *conversionParams {
	p := &conversionParams{
		outputDir:    cfg.Output.DefaultDir,
		templatePath: cfg.Template.Path,
		format:       cfg.Format.Enabled,
		listPath:     cfg.List.Path,
		articleDir:   cfg.List.ArticleDir,
		open:         cfg.List.Open,
		workers:      cfg.Workers,
	}
	if flags.output != "" {
		p.outputDir = flags.output
	}
	if flags.template != "" {
		p.templatePath = flags.template
	}
	if flags.noFormat {
		p.format = false
	}
	if flags.list != "" {
		p.listPath = flags.list
	}
	if flags.articleDir != "" {
		p.articleDir = flags.articleDir
	}
	if flags.open {
		p.open = true
	}
	if flags.workers > 0 {
		p.workers = flags.workers
	}
	return p
}

// run executes one full invocation: batch conversion followed by the
// optional article list update.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	if flags.config != "" {
		cfg, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		env.Config = cfg
	}
	params := mergeParams(flags, env.Config)

	inputs := flags.inputs
	if len(inputs) == 0 && env.Config.Input.DefaultDir != "" {
		inputs = []string{env.Config.Input.DefaultDir}
	}
	// A list-only run needs no markdown inputs.
	if len(inputs) == 0 && params.listPath == "" {
		return ErrNoInput
	}

	var files []FileToConvert
	if len(inputs) > 0 {
		var err error
		files, err = discoverFiles(inputs, params.outputDir, env.Logger)
		if err != nil {
			return err
		}
	}

	if params.templatePath != "" {
		content, err := os.ReadFile(params.templatePath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		params.template = string(content)
	}

	poolSize := md2site.ResolvePoolSize(params.workers)
	env.Logger.Debug("starting conversion", "files", len(files), "workers", poolSize)
	pool := md2site.NewServicePool(poolSize, md2site.WithLogger(env.Logger))

	var succeeded, failed int
	if len(files) > 0 {
		results := convertBatch(ctx, pool, files, params)
		for _, r := range results {
			if r.Err != nil {
				failed++
				env.Logger.Error("conversion failed", "input", r.InputPath, "error", r.Err)
				continue
			}
			succeeded++
			env.Logger.Info("converted", "input", r.InputPath, "output", r.OutputPath,
				"state", r.State.String(), "duration", r.Duration)
		}
		fmt.Fprintf(env.Stdout, "Converted %d file(s), %d failed\n", succeeded, failed)
	}

	if params.listPath != "" {
		if err := updateArticleList(ctx, pool, params, env); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrConversionFailed, failed, succeeded+failed)
	}
	return nil
}
