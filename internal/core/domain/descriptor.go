package domain

// PackageDescriptor is the complete build recipe for the crate on one
// platform. It names inputs and tools symbolically; resolving those names to
// store paths is the executor's job, not ours.
type PackageDescriptor struct {
	Name    string
	Version string
	Source  SourceRef
	Lock    LockRef

	// NativeBuildTools are build-time helpers that run on the build host.
	NativeBuildTools []string
	// BuildInputs are link-time libraries and frameworks, platform-dependent.
	BuildInputs []string
	// PropagatedTools are runtime dependencies the installed binary shells
	// out to; the executor keeps them on PATH for consumers.
	PropagatedTools []string

	Toolchain Toolchain
	Env       map[string]string
}

// RuntimeDeps returns the ordered propagated dependency list the executor
// consumes: the fixed runtime tools first, the toolchain bundle last. The
// bundle appears exactly once regardless of how many components it holds.
func (d PackageDescriptor) RuntimeDeps() []string {
	deps := make([]string, 0, len(d.PropagatedTools)+1)
	deps = append(deps, d.PropagatedTools...)
	return append(deps, d.Toolchain.Ref())
}

// DevEnvironment is the interactive shell recipe for the crate on one
// platform: editor tooling plus whatever the package build itself links
// against, so the shell can always reproduce the package build.
type DevEnvironment struct {
	Tools       []string
	BuildInputs []string
	Toolchain   Toolchain
	Env         map[string]string
}

// ToolList returns the ordered tool list for the shell: the standalone tools
// first, the toolchain bundle last.
func (e DevEnvironment) ToolList() []string {
	tools := make([]string, 0, len(e.Tools)+1)
	tools = append(tools, e.Tools...)
	return append(tools, e.Toolchain.Ref())
}

// FormatterBinding ties a platform to the tree-formatter tool the repository
// delegates formatting to.
type FormatterBinding struct {
	Platform Platform
	Tool     string
}

// CloneEnv returns a copy of env, so descriptor consumers can annotate their
// copy without aliasing the original. A nil map stays nil.
func CloneEnv(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	out := make(map[string]string, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}
