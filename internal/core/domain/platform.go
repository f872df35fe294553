package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies a target system as an "<arch>-<os>" pair, using the
// spelling the descriptor consumers expect (e.g. "aarch64-darwin").
type Platform string

const (
	// AArch64Darwin is 64-bit ARM macOS.
	AArch64Darwin Platform = "aarch64-darwin"
	// AArch64Linux is 64-bit ARM Linux.
	AArch64Linux Platform = "aarch64-linux"
	// X8664Darwin is 64-bit Intel macOS.
	X8664Darwin Platform = "x86_64-darwin"
	// X8664Linux is 64-bit Intel Linux.
	X8664Linux Platform = "x86_64-linux"
)

// platformMatrix is the closed set of supported platforms, in emission order.
var platformMatrix = [...]Platform{
	AArch64Darwin,
	AArch64Linux,
	X8664Darwin,
	X8664Linux,
}

// Platforms returns the supported platforms in their stable emission order.
// The returned slice is a copy and safe to mutate.
func Platforms() []Platform {
	out := make([]Platform, len(platformMatrix))
	copy(out, platformMatrix[:])
	return out
}

// ParsePlatform validates s against the supported matrix.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range platformMatrix {
		if Platform(s) == p {
			return p, nil
		}
	}
	return "", zerr.With(ErrUnsupportedPlatform, "platform", s)
}

// Arch returns the architecture half of the platform pair, e.g. "aarch64".
func (p Platform) Arch() string {
	arch, _, _ := strings.Cut(string(p), "-")
	return arch
}

// OS returns the operating system half of the platform pair, e.g. "darwin".
func (p Platform) OS() string {
	_, os, _ := strings.Cut(string(p), "-")
	return os
}

// IsDarwin reports whether the platform targets macOS.
func (p Platform) IsDarwin() bool {
	return p.OS() == "darwin"
}

// String returns the platform pair as written by consumers.
func (p Platform) String() string {
	return string(p)
}
