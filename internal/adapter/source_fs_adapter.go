// Package adapter contains filesystem and process adapters for the marks CLI.
package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	m "github.com/mouse-blink/marks/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading reviewed sources. It hides direct `os` access so the
// workflow logic can be tested against fixtures.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ScanLines calls fn for every line of the file, newline stripped.
	// The last line counts even without a trailing newline.
	ScanLines(path m.Path, fn LineFunc) error

	// ReadLines loads every line of the file.
	ReadLines(path m.Path) ([]string, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadDir returns the entries of a directory as full paths, sorted by name.
	ReadDir(path m.Path) ([]m.Path, error)

	// LoadIgnore compiles root/.gitignore. A missing file yields a nil matcher.
	LoadIgnore(root m.Path) (IgnoreMatcher, error)

	// CreateTemp writes content to a new temporary file and returns its path.
	CreateTemp(pattern string, content []byte) (m.Path, error)

	// Remove deletes a single file.
	Remove(path m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// LineFunc receives the zero-based index and text of one line.
type LineFunc func(index int, text string) error

// IgnoreMatcher decides whether a path relative to its root is ignored.
type IgnoreMatcher interface {
	MatchesPath(path string) bool
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ScanLines streams the file line by line.
func (a *LocalSourceFSAdapter) ScanLines(path m.Path, fn LineFunc) error {
	f, err := os.Open(string(path))
	if err != nil {
		return err
	}

	defer func() {
		_ = f.Close()
	}()

	reader := bufio.NewReader(f)

	for index := 0; ; index++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if fnErr := fn(index, text); fnErr != nil {
				return fnErr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// ReadLines loads all lines of the file.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	var lines []string

	err := a.ScanLines(path, func(_ int, text string) error {
		lines = append(lines, text)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadDir lists a directory; os.ReadDir already sorts by file name.
func (a *LocalSourceFSAdapter) ReadDir(path m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, m.Path(filepath.Join(string(path), entry.Name())))
	}

	return paths, nil
}

// LoadIgnore compiles the .gitignore at root, if there is one.
func (a *LocalSourceFSAdapter) LoadIgnore(root m.Path) (IgnoreMatcher, error) {
	gitignorePath := filepath.Join(string(root), ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	ignore, err := gitignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", gitignorePath, err)
	}

	return ignore, nil
}

// CreateTemp writes content to a fresh file in the system temp directory.
func (a *LocalSourceFSAdapter) CreateTemp(pattern string, content []byte) (m.Path, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())

		return "", err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}

	return m.Path(f.Name()), nil
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
