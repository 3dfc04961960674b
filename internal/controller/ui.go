// Package controller provides the output and interaction layer of the marks CLI.
package controller

import (
	"errors"

	m "github.com/mouse-blink/marks/internal/model"
)

// ErrNotInteractive is returned when a review session needs a terminal and none is attached.
var ErrNotInteractive = errors.New("interactive review requires a terminal")

// ReviewSession is the input of an interactive marking session.
type ReviewSession struct {
	Path  m.Path
	Lines []string
	Spec  m.MarkSpec
}

// ReviewResult is what a finished session hands back.
type ReviewResult struct {
	Spec m.MarkSpec
	// Save is false when the user quit without saving.
	Save bool
}

// UI defines how the marks use cases present results and collect marks.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplaySource prints a file with its marked lines highlighted.
	DisplaySource(path m.Path, lines []m.SourceLine) error
	// DisplayStatus prints one row per status plus a total.
	DisplayStatus(statuses []m.FileStatus) error
	// DisplaySpecPath prints where the spec of a source file lives.
	DisplaySpecPath(source, specPath m.Path) error
	// Review runs an interactive marking session.
	Review(session ReviewSession) (ReviewResult, error)
}
