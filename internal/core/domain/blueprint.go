package domain

// Defaults for the typst-tikz crate. A blueprint file overrides them
// selectively; an absent file means the defaults are the whole plan.
const (
	// DefaultFallbackRevision stands in for the commit hash when the
	// checkout has none.
	DefaultFallbackRevision = "00000000"

	// DefaultOverlayName is the key the package is published under when
	// extending an existing package collection.
	DefaultOverlayName = "typst-dev"

	// DefaultArtifactDirVar and DefaultArtifactDir direct the built binary's
	// generated-artifact output.
	DefaultArtifactDirVar = "GEN_ARTIFACTS_DIR"
	DefaultArtifactDir    = "artifacts"

	// DefaultVersionVar carries the composed version string into the build.
	DefaultVersionVar = "TYPST_VERSION"

	// DefaultSourcePathVar points analysis tooling at the toolchain's
	// standard-library sources inside the dev shell.
	DefaultSourcePathVar = "RUST_SRC_PATH"

	// DefaultFormatterTool is the tree formatter bound on every platform.
	DefaultFormatterTool = "nixfmt-rfc-style"
)

// Blueprint is the declarative generation plan: everything about the emitted
// descriptors that is configuration rather than manifest or checkout state.
type Blueprint struct {
	// ManifestPath locates the crate manifest. LockPath locates the pinned
	// lock file; empty means the manifest's sibling "Cargo.lock".
	ManifestPath string
	LockPath     string

	// FallbackRevision replaces the commit hash for dirty or untracked trees.
	FallbackRevision string

	Toolchain ToolchainSpec
	Package   PackageSpec
	DevShell  DevShellSpec
	Overlay   OverlaySpec

	// FormatterTool is bound to every platform's formatter slot.
	FormatterTool string
}

// ToolchainSpec selects the shared toolchain bundle.
type ToolchainSpec struct {
	Scheme  string
	Modules []string
}

// PackageSpec carries the package-build half of the plan.
type PackageSpec struct {
	NativeBuildTools []string
	PropagatedTools  []string
	ExtraEnv         map[string]string
}

// DevShellSpec carries the dev-shell half of the plan.
type DevShellSpec struct {
	Tools    []string
	ExtraEnv map[string]string
}

// OverlaySpec names the overlay entry.
type OverlaySpec struct {
	Name string
}

// DefaultBlueprint returns the plan for the typst-tikz crate as shipped:
// minimal toolchain extended with rust-src, shell-completion installer and
// the pdf2svg converter wired into the package, editor tooling in the shell.
func DefaultBlueprint() *Blueprint {
	return &Blueprint{
		ManifestPath:     "Cargo.toml",
		FallbackRevision: DefaultFallbackRevision,
		Toolchain: ToolchainSpec{
			Scheme:  SchemeMinimal,
			Modules: []string{"rust-src"},
		},
		Package: PackageSpec{
			NativeBuildTools: []string{"installShellFiles"},
			PropagatedTools:  []string{"pdf2svg"},
		},
		DevShell: DevShellSpec{
			Tools: []string{"rust-analyzer", "clippy", "rustfmt"},
		},
		Overlay: OverlaySpec{
			Name: DefaultOverlayName,
		},
		FormatterTool: DefaultFormatterTool,
	}
}
