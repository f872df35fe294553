package domain

// Overlay publishes the package descriptor into an existing package
// collection under a well-known name, so downstream consumers can address it
// without knowing this repository's layout.
type Overlay struct {
	Name    string
	Package PackageDescriptor
}

// Extend returns a copy of base with the overlay entry added. The base
// collection is never modified: every existing key survives into the copy,
// and only a key equal to the overlay name is shadowed there.
func (o Overlay) Extend(base map[string]PackageDescriptor) map[string]PackageDescriptor {
	out := make(map[string]PackageDescriptor, len(base)+1)
	for k, v := range base {
		out[k] = v
	}
	out[o.Name] = o.Package
	return out
}
