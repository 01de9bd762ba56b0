// Package app encapsulates the application's dependencies, configuration
// and lifecycle: it builds the isolated logger, loads the pipeline
// document through the reader, and drives the executor.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/taskpipego/internal/pipeline"
	"github.com/vk/taskpipego/internal/reader"
)

// App is one configured application instance.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	document *pipeline.Document
}

// NewApp constructs an App: logger first, then the document. A document
// that fails validation is a fatal startup error and nothing runs.
func NewApp(outW io.Writer, cfg *Config, deps reader.Collaborators) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	doc, err := reader.NewDocumentReader(deps).ReadFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	logger.Debug("Document loaded and validated.", "file", cfg.FilePath, "groups", len(doc.Groups()))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		document: doc,
	}, nil
}

// Document returns the loaded pipeline document. This is primarily for
// testing.
func (a *App) Document() *pipeline.Document {
	return a.document
}
