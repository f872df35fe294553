package domain_test

import (
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeToolchain(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	assert.Equal(t, domain.SchemeMinimal, tc.Scheme())
	assert.Equal(t, []string{"rust-src"}, tc.Modules())
	assert.Equal(t, []string{"rustc", "cargo", "rust-std", "rust-src"}, tc.Components())
	assert.True(t, tc.Has("rust-src"))
	assert.False(t, tc.Has("miri"))
}

func TestComposeToolchain_DedupModules(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src", "rust-src", "miri"})
	require.NoError(t, err)

	assert.Equal(t, []string{"rust-src", "miri"}, tc.Modules())
	assert.Equal(t, []string{"rustc", "cargo", "rust-std", "rust-src", "miri"}, tc.Components())
}

func TestComposeToolchain_ModuleCoveredByScheme(t *testing.T) {
	// clippy is already a built-in of the default scheme.
	tc, err := domain.ComposeToolchain(domain.SchemeDefault, []string{"clippy", "rust-src"})
	require.NoError(t, err)

	assert.Equal(t, []string{"rust-src"}, tc.Modules())
	assert.Equal(t,
		[]string{"rustc", "cargo", "rust-std", "clippy", "rustfmt", "rust-src"},
		tc.Components(),
	)
}

func TestComposeToolchain_UnknownScheme(t *testing.T) {
	_, err := domain.ComposeToolchain("nightly", nil)
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrUnknownScheme.Error())
}

func TestComposeToolchain_NoModules(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeComplete, nil)
	require.NoError(t, err)

	assert.Empty(t, tc.Modules())
	assert.Equal(t, "toolchain:complete", tc.Ref())
	assert.True(t, tc.Has("miri"))
	assert.True(t, tc.Has("rust-analyzer"))
}

func TestToolchain_Ref(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	assert.Equal(t, "toolchain:minimal+rust-src", tc.Ref())
}

func TestToolchain_SharedAcrossConsumers(t *testing.T) {
	// Package build and dev shell compose from the same plan; they must end
	// up addressing one bundle, not two drifting copies.
	forPackage, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)
	forShell, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	assert.Equal(t, forPackage, forShell)
	assert.Equal(t, forPackage.Ref(), forShell.Ref())
	assert.Equal(t, forPackage.ComponentSet(), forShell.ComponentSet())
}

func TestToolchain_ComponentSet(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	want := map[string]struct{}{
		"rustc": {}, "cargo": {}, "rust-std": {}, "rust-src": {},
	}
	assert.Equal(t, want, tc.ComponentSet())
}

func TestToolchain_LibSourcePath(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	assert.Equal(t,
		"${toolchain:minimal+rust-src}/lib/rustlib/src/rust/library",
		tc.LibSourcePath(),
	)
}

func TestToolchain_AccessorsReturnCopies(t *testing.T) {
	tc, err := domain.ComposeToolchain(domain.SchemeMinimal, []string{"rust-src"})
	require.NoError(t, err)

	components := tc.Components()
	components[0] = "mutated"

	assert.Equal(t, []string{"rustc", "cargo", "rust-std", "rust-src"}, tc.Components())
}
