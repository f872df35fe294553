package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Base toolchain schemes. Each scheme names a fixed set of built-in
// components; add-on modules extend a scheme without redefining it.
const (
	SchemeMinimal  = "minimal"
	SchemeDefault  = "default"
	SchemeComplete = "complete"
)

// schemeComponents maps each base scheme to its built-in components, in
// bundle order.
var schemeComponents = map[string][]string{
	SchemeMinimal: {"rustc", "cargo", "rust-std"},
	SchemeDefault: {"rustc", "cargo", "rust-std", "clippy", "rustfmt"},
	SchemeComplete: {
		"rustc", "cargo", "rust-std", "clippy", "rustfmt",
		"rust-src", "rust-analyzer", "rust-docs", "miri",
	},
}

// Toolchain is a composed compiler bundle: a base scheme extended with add-on
// modules. Values are immutable once composed; the zero value is not a valid
// bundle, use ComposeToolchain.
type Toolchain struct {
	scheme     string
	modules    []string
	components []string
}

// ComposeToolchain derives a single toolchain bundle from a base scheme and a
// list of add-on modules. Modules already covered by the scheme's built-ins
// are dropped, as are repeated modules; the first occurrence wins, so the
// resulting component list is duplicate-free and order-stable.
func ComposeToolchain(scheme string, modules []string) (Toolchain, error) {
	builtins, ok := schemeComponents[scheme]
	if !ok {
		return Toolchain{}, zerr.With(ErrUnknownScheme, "scheme", scheme)
	}

	seen := make(map[string]struct{}, len(builtins)+len(modules))
	for _, c := range builtins {
		seen[c] = struct{}{}
	}

	var added []string
	for _, m := range modules {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		added = append(added, m)
	}

	components := slices.Clone(builtins)
	components = append(components, added...)

	return Toolchain{scheme: scheme, modules: added, components: components}, nil
}

// Scheme returns the base scheme the bundle was composed from.
func (t Toolchain) Scheme() string {
	return t.scheme
}

// Modules returns the add-on modules that extended the base scheme, in
// composition order.
func (t Toolchain) Modules() []string {
	return slices.Clone(t.modules)
}

// Components returns every component of the bundle: the scheme's built-ins
// followed by the add-on modules.
func (t Toolchain) Components() []string {
	return slices.Clone(t.components)
}

// Has reports whether the bundle contains the named component.
func (t Toolchain) Has(component string) bool {
	return slices.Contains(t.components, component)
}

// ComponentSet returns the bundle's effective capability set. Two consumers
// handed the same bundle always observe equal sets; divergence means one of
// them composed its own copy.
func (t Toolchain) ComponentSet() map[string]struct{} {
	set := make(map[string]struct{}, len(t.components))
	for _, c := range t.components {
		set[c] = struct{}{}
	}
	return set
}

// Ref returns the stable reference under which consumers address the bundle,
// e.g. "toolchain:minimal+rust-src". Two bundles composed from the same
// inputs always share a Ref, which is what lets the package build and the dev
// shell point at one toolchain instead of two drifting copies.
func (t Toolchain) Ref() string {
	var b strings.Builder
	b.WriteString("toolchain:")
	b.WriteString(t.scheme)
	for _, m := range t.modules {
		b.WriteString("+")
		b.WriteString(m)
	}
	return b.String()
}

// LibSourcePath returns the path to the standard-library sources inside the
// bundle, as consumed by analysis tooling via the source-path environment
// variable. Only meaningful when the bundle contains "rust-src".
func (t Toolchain) LibSourcePath() string {
	return "${" + t.Ref() + "}/lib/rustlib/src/rust/library"
}
