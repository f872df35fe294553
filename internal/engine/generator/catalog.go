package generator

import "github.com/category-lecture-notes/typst-tikz/internal/core/domain"

// Catalog maps each supported platform to its conditional link inputs. The
// tables are data, not logic: builders look their platform up instead of
// branching on platform names.
type Catalog struct {
	// BuildInputs are link-time inputs for the package build.
	BuildInputs map[domain.Platform][]string
	// DevShellInputs are link-time inputs for the interactive shell.
	DevShellInputs map[domain.Platform][]string
}

// DefaultCatalog returns the capability catalog for the supported matrix.
// Darwin builds link against the CoreServices framework; the shell
// additionally needs libiconv for tooling built outside the packaged
// derivation. Linux needs nothing beyond the toolchain.
func DefaultCatalog() Catalog {
	return Catalog{
		BuildInputs: map[domain.Platform][]string{
			domain.AArch64Darwin: {"darwin.apple_sdk.frameworks.CoreServices"},
			domain.AArch64Linux:  {},
			domain.X8664Darwin:   {"darwin.apple_sdk.frameworks.CoreServices"},
			domain.X8664Linux:    {},
		},
		DevShellInputs: map[domain.Platform][]string{
			domain.AArch64Darwin: {"darwin.apple_sdk.frameworks.CoreServices", "libiconv"},
			domain.AArch64Linux:  {},
			domain.X8664Darwin:   {"darwin.apple_sdk.frameworks.CoreServices", "libiconv"},
			domain.X8664Linux:    {},
		},
	}
}
