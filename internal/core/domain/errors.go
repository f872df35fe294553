package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestInvalid is returned when the crate manifest is missing a required field.
	ErrManifestInvalid = zerr.New("manifest invalid")

	// ErrManifestVersionMissing is returned when the crate manifest carries no package version.
	ErrManifestVersionMissing = zerr.New("manifest version missing")

	// ErrVersionNotSemver is returned when the manifest version does not parse as semantic versioning.
	ErrVersionNotSemver = zerr.New("version not semver")

	// ErrRevisionTooShort is returned when a commit hash is shorter than the short-revision length.
	ErrRevisionTooShort = zerr.New("revision too short")

	// ErrRevisionMalformed is returned when a commit hash contains non-hexadecimal characters.
	ErrRevisionMalformed = zerr.New("revision malformed")

	// ErrUnknownScheme is returned when a toolchain references a base scheme that doesn't exist.
	ErrUnknownScheme = zerr.New("unknown toolchain scheme")

	// ErrUnsupportedPlatform is returned when a platform string is outside the supported matrix.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrUnknownFormat is returned when no renderer matches the requested output format.
	ErrUnknownFormat = zerr.New("unknown output format")
)
