package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/marks/internal/domain"
	m "github.com/mouse-blink/marks/internal/model"
)

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit the marks of a file in $EDITOR",
		Long: `Open a copy of the file's spec in $EDITOR.

Each line of the spec is a 1-based line number "N" or a range "N-M".
Blank lines and lines starting with '#' are ignored, and a line containing
"-*- all -*-" marks the whole file. The edited spec is canonicalized and
saved when the editor exits. If it does not parse, nothing is saved and the
edited copy is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Edit(domain.EditArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}
