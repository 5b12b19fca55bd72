// Package app wires the adapters together and runs a single search.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/WhimsicallyDandy/minigrep/internal/adapters/output"
	"github.com/WhimsicallyDandy/minigrep/internal/adapters/search"
	"github.com/WhimsicallyDandy/minigrep/internal/adapters/source"
	"github.com/WhimsicallyDandy/minigrep/internal/config"
	"github.com/WhimsicallyDandy/minigrep/internal/core/ports"
)

// App represents a single search invocation. Source, Stdout and Logger are
// exported so tests can substitute an in-memory filesystem, a buffer and a
// nop logger.
type App struct {
	Config config.Config
	Source ports.ContentSource
	Stdout io.Writer
	Logger *zap.Logger
}

// New creates an App with production defaults
func New(cfg config.Config) *App {
	return &App{
		Config: cfg,
		Source: source.NewFileSource(),
		Stdout: os.Stdout,
		Logger: zap.NewNop(),
	}
}

// Run reads the target file, searches it and prints every matching line in
// order. The run is fully synchronous: the read completes before any output
// is produced, and any failure aborts with zero further output.
func (a *App) Run() error {
	start := time.Now()
	cfg := a.Config

	a.Logger.Debug("resolved configuration",
		zap.String("query", cfg.Query),
		zap.String("filename", cfg.Filename),
		zap.Bool("caseSensitive", cfg.CaseSensitive))

	contents, err := a.Source.ReadAll(cfg.Filename)
	if err != nil {
		return err
	}
	a.Logger.Debug("file loaded", zap.Int("bytes", len(contents)))

	searcher := search.NewSearcher(cfg.Query, cfg.CaseSensitive)
	matches := searcher.Search(contents)

	writers := []ports.ResultWriter{output.NewLineWriter(a.Stdout)}
	if cfg.OutputFile != "" {
		jsonWriter, err := output.NewJSONWriter(cfg.OutputFile, cfg.Query, cfg.Filename, cfg.CaseSensitive)
		if err != nil {
			return err
		}
		writers = append(writers, jsonWriter)
	}

	for _, line := range matches {
		for _, w := range writers {
			if err := w.WriteLine(line); err != nil {
				// release the report file handle even on a failed run
				for _, w := range writers {
					_ = w.Close()
				}
				return err
			}
		}
	}

	for _, w := range writers {
		if err := w.Close(); err != nil {
			return fmt.Errorf("finalizing output: %w", err)
		}
	}

	a.Logger.Debug("search finished",
		zap.Int("matches", len(matches)),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}
