package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/marks/internal/domain"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()
var statusGitignoreFlag bool

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <path>...",
		Short: "Report marked and total line counts",
		Long:  "Report marked and total line counts for each file or directory argument. Directories are summed recursively.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Status(cmd.Context(), domain.StatusArgs{
				Paths:            parsePaths(args),
				RespectGitignore: statusGitignoreFlag,
			})
		},
	}
	cmd.Flags().BoolVar(&statusGitignoreFlag, "gitignore", false, "skip entries matched by .gitignore in each directory argument")

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
