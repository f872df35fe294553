package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestFixture = `[package]
name = "typst-tikz"
version = "0.1.0"
edition = "2021"

[dependencies]
clap = "4"
`

const lockFixture = `# This file is automatically @generated by Cargo.
version = 3

[[package]]
name = "typst-tikz"
version = "0.1.0"
`

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"), []byte(manifestFixture), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Cargo.lock"), []byte(lockFixture), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "main.rs"), []byte("fn main() {}\n"), 0o600))

	originalWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"flakegen", "emit", "--out", "build.gen.nix"}

	exitCode := run()
	assert.Equal(t, 0, exitCode)

	data, err := os.ReadFile("build.gen.nix")
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "# Code generated by flakegen."), "missing header:\n%s", doc)
	// The temp dir is not a git checkout, so the fallback revision applies.
	assert.Contains(t, doc, `revision = "00000000";`)
	assert.Contains(t, doc, `"0.1.0 (00000000)"`)
	assert.Contains(t, doc, "toolchain:minimal+rust-src")

	// A second run must leave the unchanged file alone and still succeed.
	info, err := os.Stat("build.gen.nix")
	require.NoError(t, err)

	exitCode = run()
	assert.Equal(t, 0, exitCode)

	after, err := os.Stat("build.gen.nix")
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), after.ModTime())
}

func TestRun_MissingManifest(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()

	originalWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"flakegen", "emit", "--out", "build.gen.nix"}

	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
