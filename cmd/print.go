package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/marks/internal/domain"
	m "github.com/mouse-blink/marks/internal/model"
)

// printCmd represents the print command.
var printCmd = newPrintCmd()

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print a file with its marked lines highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Print(domain.PrintArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(printCmd)
}
