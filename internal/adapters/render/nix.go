// Package render serializes evaluated registries into output documents.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*NixRenderer)(nil)

// Header marks rendered documents as machine-written.
const Header = "# Code generated by flakegen. DO NOT EDIT."

// NixRenderer renders the registry as a recursive Nix attribute set. The
// document is pure data except for the overlay, which is emitted as a real
// overlay function so consumers can feed it to an existing package collection
// unchanged.
type NixRenderer struct{}

// NewNixRenderer creates a new NixRenderer.
func NewNixRenderer() *NixRenderer {
	return &NixRenderer{}
}

// Format implements ports.Renderer.
func (r *NixRenderer) Format() string {
	return "nix"
}

// Render implements ports.Renderer. Platforms appear in matrix order and
// attribute keys are emitted sorted, so identical registries render to
// identical bytes.
func (r *NixRenderer) Render(registry *domain.Registry) ([]byte, error) {
	if registry == nil {
		return nil, zerr.New("cannot render nil registry")
	}

	var b strings.Builder
	b.WriteString(Header + "\n")
	b.WriteString("rec {\n")

	fmt.Fprintf(&b, "  revision = %s;\n", nixStr(registry.Revision))

	writeStrList(&b, 1, "systems", platformStrings(registry.Platforms()))

	r.writeToolchain(&b, registry.Overlay.Package.Toolchain)
	r.writePackages(&b, registry)
	r.writeDevShells(&b, registry)
	r.writeFormatter(&b, registry)
	r.writeOverlay(&b, registry.Overlay)

	b.WriteString("}\n")
	return []byte(b.String()), nil
}

func (r *NixRenderer) writeToolchain(b *strings.Builder, tc domain.Toolchain) {
	b.WriteString("  toolchain = {\n")
	fmt.Fprintf(b, "    scheme = %s;\n", nixStr(tc.Scheme()))
	writeStrList(b, 2, "modules", tc.Modules())
	fmt.Fprintf(b, "    ref = %s;\n", nixStr(tc.Ref()))
	writeStrList(b, 2, "components", tc.Components())
	b.WriteString("  };\n")
}

func (r *NixRenderer) writePackages(b *strings.Builder, registry *domain.Registry) {
	b.WriteString("  packages = {\n")
	for _, p := range registry.Platforms() {
		pkg := registry.Packages[p]
		fmt.Fprintf(b, "    %s = {\n", p)
		fmt.Fprintf(b, "      pname = %s;\n", nixStr(pkg.Name))
		fmt.Fprintf(b, "      version = %s;\n", nixStr(pkg.Version))
		b.WriteString("      src = {\n")
		fmt.Fprintf(b, "        path = %s;\n", nixStr(pkg.Source.Path))
		fmt.Fprintf(b, "        digest = %s;\n", nixStr(pkg.Source.Digest))
		b.WriteString("      };\n")
		b.WriteString("      cargoLock = {\n")
		fmt.Fprintf(b, "        lockFile = %s;\n", nixStr(pkg.Lock.Path))
		fmt.Fprintf(b, "        digest = %s;\n", nixStr(pkg.Lock.Digest))
		b.WriteString("      };\n")
		writeStrList(b, 3, "nativeBuildInputs", pkg.NativeBuildTools)
		writeStrList(b, 3, "buildInputs", pkg.BuildInputs)
		writeStrList(b, 3, "propagatedBuildInputs", pkg.RuntimeDeps())
		writeEnv(b, 3, pkg.Env)
		b.WriteString("    };\n")
	}
	b.WriteString("  };\n")
}

func (r *NixRenderer) writeDevShells(b *strings.Builder, registry *domain.Registry) {
	b.WriteString("  devShells = {\n")
	for _, p := range registry.Platforms() {
		shell, ok := registry.DevShells[p]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "    %s = {\n", p)
		writeStrList(b, 3, "packages", shell.ToolList())
		writeStrList(b, 3, "buildInputs", shell.BuildInputs)
		writeEnv(b, 3, shell.Env)
		b.WriteString("    };\n")
	}
	b.WriteString("  };\n")
}

func (r *NixRenderer) writeFormatter(b *strings.Builder, registry *domain.Registry) {
	b.WriteString("  formatter = {\n")
	for _, p := range registry.Platforms() {
		binding, ok := registry.Formatters[p]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "    %s = %s;\n", p, nixStr(binding.Tool))
	}
	b.WriteString("  };\n")
}

// writeOverlay emits the overlay as a function. Applying it to an existing
// collection only ever adds the named attribute; every other attribute of
// the collection passes through untouched.
func (r *NixRenderer) writeOverlay(b *strings.Builder, overlay domain.Overlay) {
	b.WriteString("  overlays = {\n")
	b.WriteString("    default = final: _: {\n")
	fmt.Fprintf(b, "      %s = packages.${final.system};\n", overlay.Name)
	b.WriteString("    };\n")
	b.WriteString("  };\n")
}

// writeStrList emits name = [ ... ]; with one element per line, or an inline
// empty list.
func writeStrList(b *strings.Builder, depth int, name string, items []string) {
	indent := strings.Repeat("  ", depth)
	if len(items) == 0 {
		fmt.Fprintf(b, "%s%s = [ ];\n", indent, name)
		return
	}
	fmt.Fprintf(b, "%s%s = [\n", indent, name)
	for _, item := range items {
		fmt.Fprintf(b, "%s  %s\n", indent, nixStr(item))
	}
	fmt.Fprintf(b, "%s];\n", indent)
}

// writeEnv emits env = { ... }; with keys sorted for determinism.
func writeEnv(b *strings.Builder, depth int, env map[string]string) {
	indent := strings.Repeat("  ", depth)
	if len(env) == 0 {
		fmt.Fprintf(b, "%senv = { };\n", indent)
		return
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(b, "%senv = {\n", indent)
	for _, k := range keys {
		fmt.Fprintf(b, "%s  %s = %s;\n", indent, nixStr(k), nixStr(env[k]))
	}
	fmt.Fprintf(b, "%s};\n", indent)
}

// nixStr quotes s as a Nix string literal. Backslashes, quotes, and the
// interpolation opener are escaped so values like toolchain references
// survive verbatim.
func nixStr(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\':
			b.WriteString(`\\`)
		case s[i] == '"':
			b.WriteString(`\"`)
		case s[i] == '\n':
			b.WriteString(`\n`)
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '{':
			b.WriteString(`\${`)
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
