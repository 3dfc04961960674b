package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/marks/internal/domain"
	m "github.com/mouse-blink/marks/internal/model"
)

// pathCmd represents the path command.
var pathCmd = newPathCmd()

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Print the location of a file's spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.SpecPath(domain.SpecPathArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
