package progrock_test

import (
	"context"
	"testing"

	"github.com/category-lecture-notes/typst-tikz/internal/adapters/telemetry/progrock"
	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	vctx, vertex := recorder.Record(ctx, "expand aarch64-linux")

	if got, ok := ports.VertexFromContext(vctx); !ok || got != vertex {
		t.Error("expected the recorded vertex to be attached to the returned context")
	}

	if _, err := vertex.Stdout().Write([]byte("composed toolchain:minimal+rust-src\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	vertex.Log(domain.LogLevelDebug, "resolved revision abcdef01")
	vertex.Log(domain.LogLevelWarn, "working tree dirty, using fallback revision")
	vertex.Complete(nil)

	_, hit := recorder.Record(ctx, "render nix document")
	hit.Cached()

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
