package render

import (
	"encoding/json"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*JSONRenderer)(nil)

// JSONRenderer renders the registry as an indented JSON document for
// consumers that want the tables without a Nix evaluator. The overlay is
// represented as data (its name plus the package name it binds); JSON cannot
// carry the function form the Nix document uses.
type JSONRenderer struct{}

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Format implements ports.Renderer.
func (r *JSONRenderer) Format() string {
	return "json"
}

// Render implements ports.Renderer. Map keys marshal sorted, so identical
// registries render to identical bytes.
func (r *JSONRenderer) Render(registry *domain.Registry) ([]byte, error) {
	if registry == nil {
		return nil, zerr.New("cannot render nil registry")
	}

	doc := document{
		Revision:  registry.Revision,
		Systems:   platformStrings(registry.Platforms()),
		Toolchain: newToolchainDoc(registry.Overlay.Package.Toolchain),
		Packages:  make(map[string]packageDoc, len(registry.Packages)),
		DevShells: make(map[string]devShellDoc, len(registry.DevShells)),
		Formatter: make(map[string]string, len(registry.Formatters)),
		Overlay: overlayDoc{
			Name:    registry.Overlay.Name,
			Package: registry.Overlay.Package.Name,
		},
	}

	for p, pkg := range registry.Packages {
		doc.Packages[string(p)] = packageDoc{
			Name:             pkg.Name,
			Version:          pkg.Version,
			Source:           sourceDoc{Path: pkg.Source.Path, Digest: pkg.Source.Digest},
			Lock:             sourceDoc{Path: pkg.Lock.Path, Digest: pkg.Lock.Digest},
			NativeBuildTools: emptyNotNil(pkg.NativeBuildTools),
			BuildInputs:      emptyNotNil(pkg.BuildInputs),
			RuntimeDeps:      pkg.RuntimeDeps(),
			Env:              pkg.Env,
		}
	}
	for p, shell := range registry.DevShells {
		doc.DevShells[string(p)] = devShellDoc{
			Tools:       shell.ToolList(),
			BuildInputs: emptyNotNil(shell.BuildInputs),
			Env:         shell.Env,
		}
	}
	for p, binding := range registry.Formatters {
		doc.Formatter[string(p)] = binding.Tool
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal registry")
	}
	return append(data, '\n'), nil
}

type document struct {
	Revision  string                 `json:"revision"`
	Systems   []string               `json:"systems"`
	Toolchain toolchainDoc           `json:"toolchain"`
	Packages  map[string]packageDoc  `json:"packages"`
	DevShells map[string]devShellDoc `json:"devShells"`
	Formatter map[string]string      `json:"formatter"`
	Overlay   overlayDoc             `json:"overlay"`
}

type toolchainDoc struct {
	Scheme     string   `json:"scheme"`
	Modules    []string `json:"modules"`
	Ref        string   `json:"ref"`
	Components []string `json:"components"`
}

func newToolchainDoc(tc domain.Toolchain) toolchainDoc {
	return toolchainDoc{
		Scheme:     tc.Scheme(),
		Modules:    emptyNotNil(tc.Modules()),
		Ref:        tc.Ref(),
		Components: tc.Components(),
	}
}

type packageDoc struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Source           sourceDoc         `json:"source"`
	Lock             sourceDoc         `json:"lock"`
	NativeBuildTools []string          `json:"nativeBuildTools"`
	BuildInputs      []string          `json:"buildInputs"`
	RuntimeDeps      []string          `json:"runtimeDeps"`
	Env              map[string]string `json:"env,omitempty"`
}

type sourceDoc struct {
	Path   string `json:"path"`
	Digest string `json:"digest"`
}

type devShellDoc struct {
	Tools       []string          `json:"tools"`
	BuildInputs []string          `json:"buildInputs"`
	Env         map[string]string `json:"env,omitempty"`
}

type overlayDoc struct {
	Name    string `json:"name"`
	Package string `json:"package"`
}

// platformStrings converts platforms to their wire spelling.
func platformStrings(platforms []domain.Platform) []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}

// emptyNotNil keeps empty lists rendering as [] instead of null.
func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
