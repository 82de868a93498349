// Package convert orchestrates the markdown to pptx pipeline: discover
// sources, parse, assemble and write decks.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/starford/sowilo/internal/apperr"
	"github.com/starford/sowilo/internal/markdown"
	"github.com/starford/sowilo/internal/pptx"
	"github.com/starford/sowilo/internal/storage"
)

// separateWorkers bounds the per-file goroutines in Separate.
const separateWorkers = 4

// Converter runs conversions against a template resolver.
type Converter struct {
	resolver *pptx.Resolver
}

// New creates a converter.
func New(resolver *pptx.Resolver) *Converter {
	return &Converter{resolver: resolver}
}

// File converts a single markdown file into a deck at outputPath.
func (c *Converter) File(_ context.Context, inputPath, outputPath, template string) error {
	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", apperr.ErrFileNotFound, inputPath)
		}
		return fmt.Errorf("convert: stat %s: %w", inputPath, err)
	}
	if err := storage.ValidateExtension(inputPath, "md", "markdown"); err != nil {
		return err
	}
	data, err := storage.ReadFile(inputPath)
	if err != nil {
		return err
	}
	doc, err := markdown.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", apperr.ErrConversion, inputPath, err)
	}
	deck, err := pptx.FromDocument(doc, c.resolver.Resolve(template)).Build()
	if err != nil {
		return err
	}
	if err := storage.WriteFile(outputPath, deck); err != nil {
		return err
	}
	slog.Debug("converted file",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.Int("slides", len(doc.Slides)))
	return nil
}

// Directory combines every markdown file in inputDir into one deck. Files
// merge in sorted path order.
func (c *Converter) Directory(_ context.Context, inputDir, outputPath, template string, recursive bool) error {
	files, err := storage.FindMarkdownFiles(inputDir, recursive)
	if err != nil {
		return err
	}
	doc, err := c.combine(files, inputDir)
	if err != nil {
		return err
	}
	deck, err := pptx.FromDocument(doc, c.resolver.Resolve(template)).Build()
	if err != nil {
		return err
	}
	if err := storage.WriteFile(outputPath, deck); err != nil {
		return err
	}
	slog.Info("converted directory",
		slog.String("input", inputDir),
		slog.String("output", outputPath),
		slog.Int("files", len(files)),
		slog.Int("slides", len(doc.Slides)))
	return nil
}

// Separate converts every markdown file in inputDir into its own deck under
// outputDir, named after the source file stem. Files convert concurrently;
// a failing file is logged and skipped, it does not stop the batch. The
// return value is the number of decks written.
func (c *Converter) Separate(ctx context.Context, inputDir, outputDir, template string, recursive bool) (int, error) {
	files, err := storage.FindMarkdownFiles(inputDir, recursive)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(separateWorkers)
	var converted atomic.Int64
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(outputDir, fileStem(file)+".pptx")
			if err := c.File(ctx, file, out, template); err != nil {
				slog.Error("failed to convert file",
					slog.String("path", file),
					slog.String("error", err.Error()))
				return nil
			}
			converted.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return int(converted.Load()), err
	}

	n := int(converted.Load())
	if n == 0 {
		return 0, fmt.Errorf("%w: no files were successfully processed", apperr.ErrConversion)
	}
	slog.Info("converted files", slog.Int("converted", n), slog.Int("total", len(files)))
	return n, nil
}

// combine parses each file and merges the slides into one document.
// Untitled slides with content take their source file's stem as title so
// merged decks stay navigable. The first file that carries metadata wins;
// without any, the title falls back to the input directory's name.
func (c *Converter) combine(files []string, inputDir string) (*markdown.Document, error) {
	var slides []markdown.Slide
	var meta *markdown.DocumentMetadata
	for _, path := range files {
		data, err := storage.ReadFile(path)
		if err != nil {
			return nil, err
		}
		doc, err := markdown.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", apperr.ErrConversion, path, err)
		}
		if meta == nil && (doc.Metadata.Title != "" || doc.Metadata.Author != "") {
			m := doc.Metadata
			meta = &m
		}
		stem := fileStem(path)
		for _, slide := range doc.Slides {
			if slide.Title == "" && len(slide.Content) > 0 {
				slide.Title = stem
			}
			slides = append(slides, slide)
		}
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("%w: no slides found in any markdown files", apperr.ErrConversion)
	}

	combined := &markdown.Document{Slides: slides}
	if meta != nil {
		combined.Metadata = *meta
	} else {
		combined.Metadata = markdown.DocumentMetadata{Title: fallbackTitle(inputDir)}
	}
	return combined, nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func fallbackTitle(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "Markdown Presentation"
	}
	return name + " Presentation"
}
