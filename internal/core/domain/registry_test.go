package domain_test

import (
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
)

func TestRegistry_Platforms_EmissionOrder(t *testing.T) {
	r := domain.NewRegistry("abcdef01")

	// Insert out of order; lookup order must not depend on insertion order.
	r.Packages[domain.X8664Linux] = domain.PackageDescriptor{Name: "typst-tikz"}
	r.Packages[domain.AArch64Darwin] = domain.PackageDescriptor{Name: "typst-tikz"}

	got := r.Platforms()
	want := []domain.Platform{domain.AArch64Darwin, domain.X8664Linux}

	if len(got) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("platform %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRegistry_Complete(t *testing.T) {
	r := domain.NewRegistry("abcdef01")
	if r.Complete() {
		t.Error("empty registry reported complete")
	}

	for _, p := range domain.Platforms() {
		r.Packages[p] = domain.PackageDescriptor{Name: "typst-tikz"}
		r.DevShells[p] = domain.DevEnvironment{}
		r.Formatters[p] = domain.FormatterBinding{Platform: p, Tool: "nixfmt-rfc-style"}
	}

	if !r.Complete() {
		t.Error("fully populated registry reported incomplete")
	}
}
