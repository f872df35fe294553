package domain

import (
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Manifest is the static description of the packaged crate, read from its
// Cargo manifest. Version is the bare semver string, without a leading "v".
type Manifest struct {
	Name    string
	Version string
	Source  SourceRef
	Lock    LockRef
}

// SourceRef points at the crate's source tree. Digest is the content
// fingerprint of the tree, or empty when none was computed.
type SourceRef struct {
	Path   string
	Digest string
}

// LockRef points at the pinned-dependency lock file.
type LockRef struct {
	Path   string
	Digest string
}

// Validate checks the manifest carries everything descriptor generation
// needs. The version must be present and well-formed semver; packaging embeds
// it verbatim into every emitted descriptor.
func (m Manifest) Validate() error {
	if m.Name == "" {
		return zerr.With(ErrManifestInvalid, "field", "name")
	}
	if m.Version == "" {
		return zerr.With(ErrManifestVersionMissing, "name", m.Name)
	}
	if !semver.IsValid("v" + m.Version) {
		err := zerr.With(ErrVersionNotSemver, "version", m.Version)
		return zerr.With(err, "name", m.Name)
	}
	return nil
}
