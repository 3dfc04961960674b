package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/marks/internal/domain"
	m "github.com/mouse-blink/marks/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

const viewLongDescription = `Open a full-screen session to mark reviewed lines.

Keys:
  j/k, up/down        move
  ctrl+d/ctrl+u       page down/up
  g/G                 top/bottom
  space               toggle the current line
  m/u                 mark/unmark and move down
  /                   search, n/N repeat forward/backward
  q                   save and quit
  Q, ctrl+c           quit without saving`

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Mark lines interactively",
		Long:  viewLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
