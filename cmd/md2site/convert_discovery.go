package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidExtension reports a non-markdown input file.
var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the given inputs (files or directories) into the
// list of markdown files to convert. Inputs that do not exist or are not
// markdown are logged and skipped; zero usable files is an error.
func discoverFiles(inputs []string, outputDir string, log *slog.Logger) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			log.Warn("skipping input", "path", input, "error", err)
			continue
		}
		if !info.IsDir() {
			if !isMarkdownFile(input) {
				log.Warn("skipping non-markdown input", "path", input)
				continue
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, outputDir, ""),
			})
			continue
		}
		dirFiles, err := discoverDir(input, outputDir)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}

	if len(files) == 0 {
		return nil, ErrNoInput
	}
	return files, nil
}

// discoverDir walks dir collecting markdown files, preserving the
// relative layout under outputDir.
func discoverDir(dir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, dir),
		})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".html")
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// isMarkdownFile reports whether path has a markdown extension.
func isMarkdownFile(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".markdown":
		return true
	}
	return false
}
