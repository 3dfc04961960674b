package controller

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	m "github.com/mouse-blink/marks/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySource prints every line prefixed with its one-based number.
// Marked lines use a '+' separator and are green when colors are on.
func (s *SimpleUI) DisplaySource(path m.Path, lines []m.SourceLine) error {
	s.printf("%s\n", color.YellowString("%s", path))

	for _, line := range lines {
		s.printf("%s\n", formatSourceLine(line))
	}

	return nil
}

// DisplayStatus prints the status rows as a table with a total footer.
func (s *SimpleUI) DisplayStatus(statuses []m.FileStatus) error {
	s.printf("\n%s", renderStatusTable(statuses))
	return nil
}

// DisplaySpecPath prints the spec file location.
func (s *SimpleUI) DisplaySpecPath(_, specPath m.Path) error {
	s.printf("%s\n", specPath)
	return nil
}

// Review is not available without a terminal.
func (s *SimpleUI) Review(ReviewSession) (ReviewResult, error) {
	return ReviewResult{}, ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatSourceLine(line m.SourceLine) string {
	number := color.CyanString("%4d", int(line.Offset)+1)

	if line.Marked {
		return number + "+" + color.GreenString("%s", line.Text)
	}

	return number + "|" + line.Text
}

func renderStatusTable(statuses []m.FileStatus) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Marked", "Total", "Ratio"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	total := m.FileStatus{Path: "total"}

	for _, status := range statuses {
		table.Append(statusRow(status))
		total = total.Add(status)
	}

	if len(statuses) > 1 {
		table.SetFooter(statusRow(total))
	}

	table.Render()

	return tableBuffer.String()
}

func statusRow(status m.FileStatus) []string {
	return []string{
		string(status.Path),
		fmt.Sprintf("%d", status.Marked),
		fmt.Sprintf("%d", status.Total),
		fmt.Sprintf("%.1f%%", status.Ratio()),
	}
}
