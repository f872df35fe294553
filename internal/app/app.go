// Package app implements the application layer for flakegen.
package app

import (
	"context"
	"io"
	"os"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"github.com/category-lecture-notes/typst-tikz/internal/engine/generator"
	"go.trai.ch/zerr"
)

// StdoutPath is the output path that streams the document to stdout instead
// of writing a file.
const StdoutPath = "-"

// RunOptions carries the per-invocation knobs from the CLI layer.
type RunOptions struct {
	// ConfigPath locates the blueprint file; a missing file means defaults.
	ConfigPath string
	// Format selects the output renderer, e.g. "nix" or "json".
	Format string
	// OutPath is the destination file, or StdoutPath for streaming.
	OutPath string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	generator    *generator.Generator
	renderers    map[string]ports.Renderer
	emitter      ports.Emitter
	telemetry    ports.Telemetry
	logger       ports.Logger
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	gen *generator.Generator,
	renderers map[string]ports.Renderer,
	emitter ports.Emitter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		generator:    gen,
		renderers:    renderers,
		emitter:      emitter,
		telemetry:    telemetry,
		logger:       logger,
		stdout:       os.Stdout,
	}
}

// WithStdout redirects streamed documents to w. Used by tests.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// Run evaluates the blueprint into the platform registry and writes it in the
// requested format. A file destination is only rewritten when its content
// actually changed; StdoutPath streams unconditionally.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	renderer, ok := a.renderers[opts.Format]
	if !ok {
		return zerr.With(domain.ErrUnknownFormat, "format", opts.Format)
	}

	bp, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load blueprint")
	}

	registry, err := a.generator.Generate(ctx, bp)
	if err != nil {
		return zerr.Wrap(err, "failed to generate registry")
	}

	data, err := renderer.Render(registry)
	if err != nil {
		return zerr.Wrap(err, "failed to render registry")
	}

	return a.emit(ctx, opts, data)
}

func (a *App) emit(ctx context.Context, opts RunOptions, data []byte) error {
	_, vertex := a.telemetry.Record(ctx, "emit "+opts.Format+" document")

	if opts.OutPath == StdoutPath {
		_, err := a.stdout.Write(data)
		vertex.Complete(err)
		if err != nil {
			return zerr.Wrap(err, "failed to stream document")
		}
		return nil
	}

	changed, err := a.emitter.Emit(opts.OutPath, data)
	if err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to write document")
	}

	if changed {
		a.logger.Info("wrote " + opts.OutPath)
	} else {
		vertex.Cached()
		a.logger.Info(opts.OutPath + " is already up to date")
	}
	vertex.Complete(nil)
	return nil
}
