package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/marks/internal/adapter"
	m "github.com/mouse-blink/marks/internal/model"
)

// StatusAggregator computes marked/total line counts for files and trees.
type StatusAggregator interface {
	// FileStatus counts the lines of one file and how many of them are marked.
	FileStatus(ctx context.Context, path m.Path) (m.FileStatus, error)
	// DirectoryStatus sums FileStatus over every file below path.
	DirectoryStatus(ctx context.Context, path m.Path) (m.FileStatus, error)
	// Status reports each argument, dispatching on whether it is a directory.
	Status(ctx context.Context, paths ...m.Path) ([]m.FileStatus, error)
}

// StatusOption configures a StatusAggregator.
type StatusOption func(*statusAggregator)

// WithGitignore skips entries matched by the .gitignore at each directory argument.
func WithGitignore() StatusOption {
	return func(a *statusAggregator) {
		a.respectGitignore = true
	}
}

type statusAggregator struct {
	specs            *specRepository
	fsAdapter        adapter.SourceFSAdapter
	respectGitignore bool
}

// NewStatusAggregator creates a StatusAggregator over the given adapters.
func NewStatusAggregator(store adapter.SpecStore, fsAdapter adapter.SourceFSAdapter, opts ...StatusOption) StatusAggregator {
	a := &statusAggregator{
		specs:     newSpecRepository(store),
		fsAdapter: fsAdapter,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *statusAggregator) FileStatus(_ context.Context, path m.Path) (m.FileStatus, error) {
	spec, err := a.specs.Load(path)
	if err != nil {
		return m.FileStatus{}, err
	}

	status := m.FileStatus{Path: path}

	err = a.fsAdapter.ScanLines(path, func(index int, _ string) error {
		if index > int(m.MaxLineOffset) {
			return m.ErrTooManyLines
		}

		status.Total++
		if spec.Matches(m.LineOffset(index)) {
			status.Marked++
		}

		return nil
	})
	if err != nil {
		return m.FileStatus{}, fmt.Errorf("%s: %w", path, err)
	}

	return status, nil
}

func (a *statusAggregator) DirectoryStatus(ctx context.Context, path m.Path) (m.FileStatus, error) {
	var ignore adapter.IgnoreMatcher

	if a.respectGitignore {
		matcher, err := a.fsAdapter.LoadIgnore(path)
		if err != nil {
			return m.FileStatus{}, err
		}

		ignore = matcher
	}

	return a.walk(ctx, path, path, ignore)
}

func (a *statusAggregator) walk(ctx context.Context, root, dir m.Path, ignore adapter.IgnoreMatcher) (m.FileStatus, error) {
	total := m.FileStatus{Path: dir}

	entries, err := a.fsAdapter.ReadDir(dir)
	if err != nil {
		return m.FileStatus{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return m.FileStatus{}, err
		}

		info, err := a.fsAdapter.FileInfo(entry)
		if err != nil {
			return m.FileStatus{}, fmt.Errorf("stat %s: %w", entry, err)
		}

		if a.respectGitignore && ignored(a.fsAdapter, root, entry, info.IsDir(), ignore) {
			continue
		}

		var status m.FileStatus
		if info.IsDir() {
			status, err = a.walk(ctx, root, entry, ignore)
		} else {
			status, err = a.FileStatus(ctx, entry)
		}

		if err != nil {
			return m.FileStatus{}, err
		}

		total = total.Add(status)
	}

	return total, nil
}

func ignored(fsAdapter adapter.SourceFSAdapter, root, entry m.Path, isDir bool, ignore adapter.IgnoreMatcher) bool {
	rel, err := fsAdapter.RelPath(root, entry)
	if err != nil {
		return false
	}

	if rel == ".git" {
		return true
	}

	if ignore == nil {
		return false
	}

	if isDir {
		return ignore.MatchesPath(string(rel) + "/")
	}

	return ignore.MatchesPath(string(rel))
}

func (a *statusAggregator) Status(ctx context.Context, paths ...m.Path) ([]m.FileStatus, error) {
	statuses := make([]m.FileStatus, 0, len(paths))

	for _, path := range paths {
		info, err := a.fsAdapter.FileInfo(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		var status m.FileStatus
		if info.IsDir() {
			status, err = a.DirectoryStatus(ctx, path)
		} else {
			status, err = a.FileStatus(ctx, path)
		}

		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}
