// Package cmd provides the root command and CLI setup for marks.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mouse-blink/marks/internal/adapter"
	"github.com/mouse-blink/marks/internal/config"
	"github.com/mouse-blink/marks/internal/controller"
	"github.com/mouse-blink/marks/internal/domain"
	"github.com/mouse-blink/marks/internal/log"
	m "github.com/mouse-blink/marks/internal/model"
)

// workflow is built on first use; tests replace it with a mock.
var workflow domain.Workflow

var colorFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marks",
		Short: "Track which lines of a source file have been reviewed",
		Long: `Marks records reviewed lines per source file and reports review coverage.

Marks are stored outside the source tree, one spec file per source file,
in $MARKS_DIR or $XDG_DATA_HOME/marks (default ~/.local/share/marks).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize output: auto, always or never")

	return cmd
}

// setup loads the configuration before any file is touched and wires the workflow.
func setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	if err := configureColor(colorFlag, cmd.OutOrStdout()); err != nil {
		return err
	}

	if workflow != nil {
		return nil
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg)
	store := adapter.NewSpecStore(cfg.SpecDir(), logger)
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	workflow = domain.NewWorkflow(
		store,
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalEditorAdapter(cfg),
		ui,
		logger,
	)

	logger.Debug("workflow ready", "spec_dir", store.Dir())

	return nil
}

// configureColor applies the --color mode to both color libraries in use.
func configureColor(mode string, out io.Writer) error {
	var enabled bool

	switch mode {
	case "always":
		enabled = true
	case "never":
		enabled = false
	case "auto":
		enabled = isTerminal(out) && os.Getenv("NO_COLOR") == ""
	default:
		return fmt.Errorf("invalid --color value %q: want auto, always or never", mode)
	}

	color.NoColor = !enabled

	if enabled {
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
