// Package git probes the version-control state of the source checkout.
package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/category-lecture-notes/typst-tikz/internal/core/domain"
	"github.com/category-lecture-notes/typst-tikz/internal/core/ports"
)

// runner executes a git subcommand in dir and returns its stdout. Tests swap
// this out to simulate checkouts without a real repository.
type runner func(ctx context.Context, dir string, args ...string) (string, error)

// Source implements ports.RevisionSource by shelling out to git.
type Source struct {
	dir    string
	logger ports.Logger
	run    runner
}

// NewSource creates a revision source probing the checkout at dir.
func NewSource(dir string, logger ports.Logger) *Source {
	return &Source{
		dir:    dir,
		logger: logger,
		run:    runGit,
	}
}

// Current reports the checkout's commit hash. The hash is withheld when the
// working tree has uncommitted changes, matching snapshot-based consumers
// that only ever see committed content. Git being unavailable, the directory
// not being a repository, or a repository without commits all degrade to an
// empty state rather than an error, so generation keeps going.
func (s *Source) Current(ctx context.Context) (domain.VCSState, error) {
	head, err := s.run(ctx, s.dir, "rev-parse", "HEAD")
	if err != nil {
		if ctx.Err() != nil {
			return domain.VCSState{}, ctx.Err()
		}
		s.logger.Warn("no commit hash available: " + err.Error())
		return domain.VCSState{}, nil
	}

	status, err := s.run(ctx, s.dir, "status", "--porcelain")
	if err != nil {
		if ctx.Err() != nil {
			return domain.VCSState{}, ctx.Err()
		}
		s.logger.Warn("failed to check working tree state: " + err.Error())
		return domain.VCSState{}, nil
	}
	if strings.TrimSpace(status) != "" {
		s.logger.Warn("working tree has uncommitted changes, revision withheld")
		return domain.VCSState{}, nil
	}

	return domain.VCSState{Revision: strings.TrimSpace(head)}, nil
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
