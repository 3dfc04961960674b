package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mouse-blink/marks/internal/log"
	m "github.com/mouse-blink/marks/internal/model"
)

// SpecStore maps source files to their spec files and persists spec text.
type SpecStore interface {
	// Locate returns the spec file path for a source file. The source path is
	// canonicalized first, so every spelling of one file shares a spec.
	Locate(source m.Path) (m.Path, error)

	// Read returns the raw spec text, creating an empty spec file if absent.
	Read(specPath m.Path) ([]byte, error)

	// Write replaces the spec file. Readers see either the old or the new
	// content, never a partial write.
	Write(specPath m.Path, data []byte) error
}

// LocalSpecStore keeps spec files in one flat directory, named by the hex
// SHA-256 of the canonical source path.
type LocalSpecStore struct {
	dir    string
	logger *log.Logger
}

// NewSpecStore constructs a SpecStore rooted at dir.
func NewSpecStore(dir string, logger *log.Logger) *LocalSpecStore {
	return &LocalSpecStore{dir: dir, logger: logger}
}

// Dir returns the storage directory.
func (s *LocalSpecStore) Dir() string {
	return s.dir
}

// Locate canonicalizes source and hashes it into a spec file name.
func (s *LocalSpecStore) Locate(source m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(source))
	if err != nil {
		return "", err
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", source, err)
	}

	sum := sha256.Sum256([]byte(canonical))

	return m.Path(filepath.Join(s.dir, fmt.Sprintf("%x", sum))), nil
}

// Read touches the spec file and returns its content.
func (s *LocalSpecStore) Read(specPath m.Path) ([]byte, error) {
	if err := touchFile(string(specPath)); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(specPath))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("spec loaded", "spec", specPath, "bytes", len(data))

	return data, nil
}

// Write stores data in a temporary file next to specPath and renames it into place.
func (s *LocalSpecStore) Write(specPath m.Path, data []byte) error {
	target := string(specPath)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}

	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()

		return err
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		cleanup()
		return err
	}

	s.logger.Debug("spec saved", "spec", specPath, "bytes", len(data))

	return nil
}

func touchFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	// #nosec G304 - path is derived from the spec directory and a hex digest
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return err
	}

	return f.Close()
}
