// Package config provides the blueprint loader for flakegen.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the blueprint file looked up when no explicit path is
// given on the command line.
const DefaultFilename = "flakegen.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the blueprint at path and applies it over the defaults.
// A missing file is not an error: the defaults are the whole plan.
func (l *Loader) Load(path string) (*domain.Blueprint, error) {
	bp := domain.DefaultBlueprint()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no blueprint file found, using defaults")
			return bp, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read blueprint"), "path", path)
	}

	var file blueprintFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse blueprint"), "path", path)
	}

	apply(bp, &file)

	// Compose once at load time so an unknown scheme surfaces here, not deep
	// inside generation.
	if _, err := domain.ComposeToolchain(bp.Toolchain.Scheme, bp.Toolchain.Modules); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return bp, nil
}

// apply overlays the file's fields onto the blueprint. Only fields the file
// actually sets override the defaults; empty lists replace, absent lists keep.
func apply(bp *domain.Blueprint, file *blueprintFile) {
	if file.Manifest != "" {
		bp.ManifestPath = file.Manifest
	}
	if file.Lock != "" {
		bp.LockPath = file.Lock
	}
	if file.Fallback != "" {
		bp.FallbackRevision = file.Fallback
	}

	if file.Toolchain != nil {
		if file.Toolchain.Scheme != "" {
			bp.Toolchain.Scheme = file.Toolchain.Scheme
		}
		if file.Toolchain.Modules != nil {
			bp.Toolchain.Modules = file.Toolchain.Modules
		}
	}

	if file.Package != nil {
		if file.Package.NativeBuildTools != nil {
			bp.Package.NativeBuildTools = file.Package.NativeBuildTools
		}
		if file.Package.PropagatedTools != nil {
			bp.Package.PropagatedTools = file.Package.PropagatedTools
		}
		if file.Package.Environment != nil {
			bp.Package.ExtraEnv = file.Package.Environment
		}
	}

	if file.DevShell != nil {
		if file.DevShell.Tools != nil {
			bp.DevShell.Tools = file.DevShell.Tools
		}
		if file.DevShell.Environment != nil {
			bp.DevShell.ExtraEnv = file.DevShell.Environment
		}
	}

	if file.Overlay != nil && file.Overlay.Name != "" {
		bp.Overlay.Name = file.Overlay.Name
	}
	if file.Formatter != "" {
		bp.FormatterTool = file.Formatter
	}
}
