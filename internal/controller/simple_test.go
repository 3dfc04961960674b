package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	m "github.com/mouse-blink/marks/internal/model"
	"github.com/spf13/cobra"
)

func disableColor(t *testing.T) {
	t.Helper()

	previous := color.NoColor
	color.NoColor = true

	t.Cleanup(func() { color.NoColor = previous })
}

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplaySource(t *testing.T) {
	disableColor(t)

	ui, buf := newTestSimpleUI()

	lines := []m.SourceLine{
		{Offset: 0, Text: "package main"},
		{Offset: 1, Text: "func main() {}", Marked: true},
	}

	if err := ui.DisplaySource("main.go", lines); err != nil {
		t.Fatalf("DisplaySource() error = %v", err)
	}

	want := "main.go\n   1|package main\n   2+func main() {}\n"
	if got := buf.String(); got != want {
		t.Fatalf("DisplaySource() output = %q, want %q", got, want)
	}
}

func TestSimpleUI_DisplayStatus_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	statuses := []m.FileStatus{
		{Path: "path/a.go", Marked: 3, Total: 4},
		{Path: "path/dir", Marked: 1, Total: 4},
	}

	if err := ui.DisplayStatus(statuses); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	output := buf.String()

	// The Total column header plus the footer's path cell.
	if got := strings.Count(output, "TOTAL"); got != 2 {
		t.Fatalf("TOTAL appears %d times, want 2\noutput:\n%s", got, output)
	}

	for _, want := range []string{
		"PATH",
		"path/a.go",
		"path/dir",
		"75.0%",
		"25.0%",
		"50.0%",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayStatus_SingleRowHasNoFooter(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplayStatus([]m.FileStatus{{Path: "a.go", Marked: 0, Total: 0}}); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	output := buf.String()
	// Only the Total column header; no footer row.
	if got := strings.Count(output, "TOTAL"); got != 1 {
		t.Fatalf("TOTAL appears %d times, want 1\noutput:\n%s", got, output)
	}

	if !strings.Contains(output, "0.0%") {
		t.Fatalf("empty file should report 0.0%%\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplaySpecPath(t *testing.T) {
	ui, buf := newTestSimpleUI()

	if err := ui.DisplaySpecPath("main.go", "/data/marks/abc"); err != nil {
		t.Fatalf("DisplaySpecPath() error = %v", err)
	}

	if got := buf.String(); got != "/data/marks/abc\n" {
		t.Fatalf("DisplaySpecPath() output = %q", got)
	}
}

func TestSimpleUI_Review_NotInteractive(t *testing.T) {
	ui, _ := newTestSimpleUI()

	_, err := ui.Review(ReviewSession{Path: "main.go"})
	if !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("Review() error = %v, want ErrNotInteractive", err)
	}
}
