package adapter

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mouse-blink/marks/internal/config"
	m "github.com/mouse-blink/marks/internal/model"
)

// EditorAdapter launches the user's editor on a file and waits for it to exit.
type EditorAdapter interface {
	// Available reports whether an editor command is configured.
	Available() error
	// Edit opens path in the editor and blocks until the editor exits.
	Edit(path m.Path) error
}

// LocalEditorAdapter runs the configured editor attached to the terminal.
type LocalEditorAdapter struct {
	cfg    config.EnvConfig
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLocalEditorAdapter constructs an editor adapter bound to the process stdio.
func NewLocalEditorAdapter(cfg config.EnvConfig) *LocalEditorAdapter {
	return &LocalEditorAdapter{
		cfg:    cfg,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Available checks the editor configuration without touching any file.
func (a *LocalEditorAdapter) Available() error {
	_, err := a.cfg.EditorCommand()
	return err
}

// Edit runs the editor with path appended to its arguments.
func (a *LocalEditorAdapter) Edit(path m.Path) error {
	command, err := a.cfg.EditorCommand()
	if err != nil {
		return err
	}

	args := append(command[1:len(command):len(command)], string(path))

	// #nosec G204 - the editor command comes from the user's own environment
	cmd := exec.Command(command[0], args...)
	cmd.Stdin = a.stdin
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", command[0], err)
	}

	return nil
}
