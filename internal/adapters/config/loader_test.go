package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/config"
	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writeBlueprint(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any())

	loader := config.NewLoader(mockLogger)
	bp, err := loader.Load(filepath.Join(t.TempDir(), config.DefaultFilename))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBlueprint(), bp)
}

func TestLoader_Load_FullOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeBlueprint(t, `
manifest: tools/typst-tikz/Cargo.toml
lock: tools/typst-tikz/Cargo.lock
fallbackRevision: deadbeef
toolchain:
  scheme: complete
  modules: []
package:
  nativeBuildTools: [installShellFiles, pkg-config]
  propagatedTools: [pdf2svg, lualatex]
  environment:
    RUST_BACKTRACE: "1"
devshell:
  tools: [rust-analyzer]
  environment:
    CARGO_TERM_COLOR: always
overlay:
  name: typst-staging
formatter: alejandra
`)

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	bp, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tools/typst-tikz/Cargo.toml", bp.ManifestPath)
	assert.Equal(t, "tools/typst-tikz/Cargo.lock", bp.LockPath)
	assert.Equal(t, "deadbeef", bp.FallbackRevision)
	assert.Equal(t, domain.SchemeComplete, bp.Toolchain.Scheme)
	assert.Empty(t, bp.Toolchain.Modules)
	assert.Equal(t, []string{"installShellFiles", "pkg-config"}, bp.Package.NativeBuildTools)
	assert.Equal(t, []string{"pdf2svg", "lualatex"}, bp.Package.PropagatedTools)
	assert.Equal(t, map[string]string{"RUST_BACKTRACE": "1"}, bp.Package.ExtraEnv)
	assert.Equal(t, []string{"rust-analyzer"}, bp.DevShell.Tools)
	assert.Equal(t, map[string]string{"CARGO_TERM_COLOR": "always"}, bp.DevShell.ExtraEnv)
	assert.Equal(t, "typst-staging", bp.Overlay.Name)
	assert.Equal(t, "alejandra", bp.FormatterTool)
}

func TestLoader_Load_PartialOverrideKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeBlueprint(t, `
toolchain:
  scheme: default
`)

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	bp, err := loader.Load(path)
	require.NoError(t, err)

	// The overridden field changes, everything else stays at the default.
	assert.Equal(t, domain.SchemeDefault, bp.Toolchain.Scheme)
	assert.Equal(t, []string{"rust-src"}, bp.Toolchain.Modules)
	assert.Equal(t, "Cargo.toml", bp.ManifestPath)
	assert.Equal(t, "typst-dev", bp.Overlay.Name)
	assert.Equal(t, "00000000", bp.FallbackRevision)
}

func TestLoader_Load_BrokenYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeBlueprint(t, "toolchain: [scheme\n")

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	_, err := loader.Load(path)

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to parse blueprint")
}

func TestLoader_Load_UnknownScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	path := writeBlueprint(t, `
toolchain:
  scheme: nightly
`)

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	_, err := loader.Load(path)

	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownScheme.Error())
}
