package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ShortRevisionLength is the number of leading hash characters embedded in
// version strings and descriptor metadata.
const ShortRevisionLength = 8

// VCSState captures what is known about the source checkout at generation
// time. Revision holds the full commit hash, or is empty when the tree is
// not under version control or has uncommitted changes.
type VCSState struct {
	Revision string
}

// HasRevision reports whether a commit hash is available.
func (s VCSState) HasRevision() bool {
	return s.Revision != ""
}

// ResolveRevision derives the short revision identifier for a checkout.
// When no commit hash is available the fallback literal is returned verbatim,
// so the generation pipeline keeps producing descriptors for dirty or
// untracked trees. A hash that is present but too short or non-hexadecimal is
// a caller error and rejected.
func ResolveRevision(state VCSState, fallback string) (string, error) {
	if !state.HasRevision() {
		return fallback, nil
	}
	if len(state.Revision) < ShortRevisionLength {
		return "", zerr.With(ErrRevisionTooShort, "revision", state.Revision)
	}
	short := strings.ToLower(state.Revision[:ShortRevisionLength])
	for _, r := range short {
		if !isHexDigit(r) {
			return "", zerr.With(ErrRevisionMalformed, "revision", state.Revision)
		}
	}
	return short, nil
}

// FormatVersion composes the human-facing version string "<semver> (<rev>)"
// that descriptors carry alongside the plain manifest version.
func FormatVersion(version, revision string) string {
	return version + " (" + revision + ")"
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	default:
		return false
	}
}
