// Package tags resolves release tags in a local clone to the commit-date
// window a retrieval run covers.
package tags

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// Resolver turns tag names into commit timestamps
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a new tag resolver
func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// DateRange resolves fromTag and toTag in the repository at repoPath to the
// commit times they point at. Both annotated and lightweight tags work.
func (r *Resolver) DateRange(repoPath, fromTag, toTag string) (time.Time, time.Time, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}

	from, err := r.tagTime(repo, fromTag)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := r.tagTime(repo, toTag)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	r.logger.Info("resolved tag range",
		zap.String("from_tag", fromTag),
		zap.Time("from", from),
		zap.String("to_tag", toTag),
		zap.Time("to", to),
	)

	return from, to, nil
}

// tagTime returns the commit time a tag points at.
func (r *Resolver) tagTime(repo *git.Repository, name string) (time.Time, error) {
	ref, err := repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}

	// Annotated tags point at a tag object, lightweight tags at the commit.
	if tag, err := repo.TagObject(ref.Hash()); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to resolve commit for tag %q: %w", name, err)
		}
		return commit.Committer.When, nil
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to resolve commit for tag %q: %w", name, err)
	}
	return commit.Committer.When, nil
}
