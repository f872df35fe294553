package domain

// Registry is the complete evaluated output of one generation run: every
// per-platform descriptor plus the cross-platform overlay, keyed the way
// consumers look them up.
type Registry struct {
	// Revision is the short revision the run resolved, fallback included.
	Revision string

	Packages   map[Platform]PackageDescriptor
	DevShells  map[Platform]DevEnvironment
	Formatters map[Platform]FormatterBinding

	Overlay Overlay
}

// NewRegistry returns a registry with all platform tables allocated.
func NewRegistry(revision string) *Registry {
	return &Registry{
		Revision:   revision,
		Packages:   make(map[Platform]PackageDescriptor, len(platformMatrix)),
		DevShells:  make(map[Platform]DevEnvironment, len(platformMatrix)),
		Formatters: make(map[Platform]FormatterBinding, len(platformMatrix)),
	}
}

// Platforms returns the platforms the registry holds packages for, in the
// stable emission order. Platforms outside the supported matrix never appear.
func (r *Registry) Platforms() []Platform {
	out := make([]Platform, 0, len(r.Packages))
	for _, p := range platformMatrix {
		if _, ok := r.Packages[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Complete reports whether every supported platform has a package, a dev
// shell, and a formatter binding.
func (r *Registry) Complete() bool {
	for _, p := range platformMatrix {
		if _, ok := r.Packages[p]; !ok {
			return false
		}
		if _, ok := r.DevShells[p]; !ok {
			return false
		}
		if _, ok := r.Formatters[p]; !ok {
			return false
		}
	}
	return true
}
