package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/marks/internal/model"
	"golang.org/x/term"
)

// TUI implements UI for terminals: colored output and Bubble Tea review sessions.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplaySource prints the file with marked lines highlighted.
func (t *TUI) DisplaySource(path m.Path, lines []m.SourceLine) error {
	_, _ = fmt.Fprintln(t.output, headerStyle.Render(string(path)))

	for _, line := range lines {
		_, _ = fmt.Fprintln(t.output, formatSourceLine(line))
	}

	return nil
}

// DisplayStatus prints the status table.
func (t *TUI) DisplayStatus(statuses []m.FileStatus) error {
	_, _ = fmt.Fprintf(t.output, "\n%s", renderStatusTable(statuses))
	return nil
}

// DisplaySpecPath prints the spec file location.
func (t *TUI) DisplaySpecPath(_, specPath m.Path) error {
	_, _ = fmt.Fprintln(t.output, specPath)
	return nil
}

// Review runs a full-screen marking session and returns the edited spec.
func (t *TUI) Review(session ReviewSession) (ReviewResult, error) {
	in, ok := t.input.(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return ReviewResult{}, ErrNotInteractive
	}

	model := newReviewModel(session)

	if out, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(out.Fd())); err == nil {
			model = model.handleWindowSize(tea.WindowSizeMsg{Width: width, Height: height})
		}
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)

	final, err := program.Run()
	if err != nil {
		return ReviewResult{}, fmt.Errorf("review session: %w", err)
	}

	reviewed, ok := final.(reviewModel)
	if !ok {
		return ReviewResult{}, fmt.Errorf("review session: unexpected model %T", final)
	}

	return reviewed.result(), nil
}
