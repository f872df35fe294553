package domain_test

import (
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestResolveRevision(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.VCSState
		fallback string
		want     string
	}{
		{
			name:     "long hash truncated to prefix",
			state:    domain.VCSState{Revision: "abcdef0123456789abcdef0123456789abcdef01"},
			fallback: "00000000",
			want:     "abcdef01",
		},
		{
			name:     "exact length kept whole",
			state:    domain.VCSState{Revision: "deadbeef"},
			fallback: "00000000",
			want:     "deadbeef",
		},
		{
			name:     "uppercase hash lowered",
			state:    domain.VCSState{Revision: "ABCDEF0123456789"},
			fallback: "00000000",
			want:     "abcdef01",
		},
		{
			name:     "no revision yields fallback",
			state:    domain.VCSState{},
			fallback: "00000000",
			want:     "00000000",
		},
		{
			name:     "fallback returned verbatim",
			state:    domain.VCSState{},
			fallback: "dirty-tree",
			want:     "dirty-tree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveRevision(tt.state, tt.fallback)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveRevision_TooShort(t *testing.T) {
	_, err := domain.ResolveRevision(domain.VCSState{Revision: "abc123"}, "00000000")
	if err == nil {
		t.Fatal("expected error for short revision, got nil")
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if rev, ok := meta["revision"].(string); !ok || rev != "abc123" {
		t.Errorf("expected metadata revision=abc123, got %v", meta["revision"])
	}
}

func TestResolveRevision_Malformed(t *testing.T) {
	_, err := domain.ResolveRevision(domain.VCSState{Revision: "zzzzzzzz1234"}, "00000000")
	if err == nil {
		t.Fatal("expected error for non-hex revision, got nil")
	}
}

func TestResolveRevision_Deterministic(t *testing.T) {
	state := domain.VCSState{Revision: "0123456789abcdef0123456789abcdef01234567"}

	first, err := domain.ResolveRevision(state, "00000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := domain.ResolveRevision(state, "00000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("same state resolved differently: %q vs %q", first, second)
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		version  string
		revision string
		want     string
	}{
		{"0.1.0", "abcdef01", "0.1.0 (abcdef01)"},
		{"1.2.3", "00000000", "1.2.3 (00000000)"},
	}

	for _, tt := range tests {
		if got := domain.FormatVersion(tt.version, tt.revision); got != tt.want {
			t.Errorf("FormatVersion(%q, %q): expected %q, got %q", tt.version, tt.revision, tt.want, got)
		}
	}
}
