// Package gitlog reads commit messages from an existing repository so the
// linter can check history ranges, and exposes the [sectionlint] gitconfig
// overrides.
package gitlog

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const configSection = "sectionlint"

// ErrNoRepository indicates the working directory is not inside a git
// repository.
var ErrNoRepository = errors.New("gitlog: not a git repository")

// Entry is one commit taken from history.
type Entry struct {
	Hash    string
	Message string
}

// Open opens the repository containing dir, walking up to find .git the way
// git itself does.
func Open(dir string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNoRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

// Root returns the worktree root directory, or "" for bare repositories.
func Root(repo *git.Repository) string {
	wt, err := repo.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

// ConfigValue reads a key from the [sectionlint] section of the repository
// configuration. It returns "" when the section or key is absent.
func ConfigValue(repo *git.Repository, key string) string {
	cfg, err := repo.Config()
	if err != nil {
		return ""
	}
	for _, s := range cfg.Raw.Sections {
		if s.Name == configSection {
			return s.Options.Get(key)
		}
	}
	return ""
}

// Messages walks history newest-first starting at the "to" revision
// (HEAD when empty) and collects commits until the "from" revision
// (exclusive) or until max entries (0 means unlimited).
func Messages(ctx context.Context, repo *git.Repository, from, to string, max int) ([]Entry, error) {
	start := to
	if start == "" {
		start = "HEAD"
	}
	startHash, err := repo.ResolveRevision(plumbing.Revision(start))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", start, err)
	}

	var stopHash plumbing.Hash
	if from != "" {
		h, err := repo.ResolveRevision(plumbing.Revision(from))
		if err != nil {
			return nil, fmt.Errorf("resolve revision %q: %w", from, err)
		}
		stopHash = *h
	}

	iter, err := repo.Log(&git.LogOptions{From: *startHash})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if from != "" && c.Hash == stopHash {
			return storer.ErrStop
		}
		entries = append(entries, Entry{Hash: c.Hash.String(), Message: c.Message})
		if max > 0 && len(entries) >= max {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk log: %w", err)
	}
	return entries, nil
}
