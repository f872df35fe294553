package ports

import (
	"context"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
)

// RevisionSource defines the interface for probing the version-control state
// of the source checkout.
//
//go:generate go run go.uber.org/mock/mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionSource interface {
	// Current reports the checkout state. A tree with uncommitted changes
	// or no version control at all yields a state without a revision, not
	// an error.
	Current(ctx context.Context) (domain.VCSState, error)
}
