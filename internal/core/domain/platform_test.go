package domain_test

import (
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestPlatforms_MatrixOrder(t *testing.T) {
	got := domain.Platforms()

	want := []domain.Platform{
		domain.AArch64Darwin,
		domain.AArch64Linux,
		domain.X8664Darwin,
		domain.X8664Linux,
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("platform %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestPlatforms_ReturnsCopy(t *testing.T) {
	first := domain.Platforms()
	first[0] = "mutated"

	second := domain.Platforms()
	if second[0] != domain.AArch64Darwin {
		t.Errorf("mutating the returned slice leaked into the matrix: %s", second[0])
	}
}

func TestParsePlatform(t *testing.T) {
	for _, p := range domain.Platforms() {
		got, err := domain.ParsePlatform(string(p))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", p, err)
		}
		if got != p {
			t.Errorf("expected %s, got %s", p, got)
		}
	}
}

func TestParsePlatform_Unsupported(t *testing.T) {
	_, err := domain.ParsePlatform("riscv64-linux")
	if err == nil {
		t.Fatal("expected error for unsupported platform, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if platform, ok := meta["platform"].(string); !ok || platform != "riscv64-linux" {
		t.Errorf("expected metadata platform=riscv64-linux, got %v", meta["platform"])
	}
}

func TestPlatform_Parts(t *testing.T) {
	tests := []struct {
		platform domain.Platform
		arch     string
		os       string
		darwin   bool
	}{
		{domain.AArch64Darwin, "aarch64", "darwin", true},
		{domain.AArch64Linux, "aarch64", "linux", false},
		{domain.X8664Darwin, "x86_64", "darwin", true},
		{domain.X8664Linux, "x86_64", "linux", false},
	}

	for _, tt := range tests {
		if got := tt.platform.Arch(); got != tt.arch {
			t.Errorf("%s: expected arch %s, got %s", tt.platform, tt.arch, got)
		}
		if got := tt.platform.OS(); got != tt.os {
			t.Errorf("%s: expected os %s, got %s", tt.platform, tt.os, got)
		}
		if got := tt.platform.IsDarwin(); got != tt.darwin {
			t.Errorf("%s: expected darwin=%v, got %v", tt.platform, tt.darwin, got)
		}
	}
}
