package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/marks/internal/domain"
	domainmocks "github.com/mouse-blink/marks/internal/domain/mocks"
)

// useWorkflow swaps the package workflow for the duration of a test.
func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = wf

	t.Cleanup(func() { workflow = original })
}

func setTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MARKS_DIR", filepath.Join(home, "specs"))
	t.Setenv("NO_COLOR", "1")

	return home
}

func newTestRootCmd(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, &out
}

func TestRootCmd_RequiresHome(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))
	t.Setenv("HOME", "")
	require.NoError(t, os.Unsetenv("HOME"))

	cmd, _ := newTestRootCmd(newPathCmd())
	cmd.SetArgs([]string{"path", "main.go"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOME")
}

func TestRootCmd_InvalidColor(t *testing.T) {
	setTestEnv(t)
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _ := newTestRootCmd(newPathCmd())
	cmd.SetArgs([]string{"--color", "sometimes", "path", "main.go"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --color value")
}

func TestConfigureColor(t *testing.T) {
	previous := color.NoColor
	t.Cleanup(func() { color.NoColor = previous })

	require.NoError(t, configureColor("always", &bytes.Buffer{}))
	assert.False(t, color.NoColor)

	require.NoError(t, configureColor("never", &bytes.Buffer{}))
	assert.True(t, color.NoColor)

	require.NoError(t, configureColor("auto", &bytes.Buffer{}))
	assert.True(t, color.NoColor, "a buffer is never a terminal")
}

func TestRootCmd_EndToEnd(t *testing.T) {
	setTestEnv(t)
	useWorkflow(t, nil)

	root := t.TempDir()
	source := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(source, []byte("package main\n\nfunc main() {}\n"), 0o644))

	cmd, out := newTestRootCmd(newPrintCmd(), newStatusCmd(), newPathCmd())

	cmd.SetArgs([]string{"path", source})
	require.NoError(t, cmd.Execute())

	specPath := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(specPath, os.Getenv("MARKS_DIR")), "spec path %q outside MARKS_DIR", specPath)

	require.NoError(t, os.MkdirAll(filepath.Dir(specPath), 0o755))
	require.NoError(t, os.WriteFile(specPath, []byte("1\n3\n"), 0o644))

	out.Reset()
	cmd.SetArgs([]string{"print", source})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "   1+package main")
	assert.Contains(t, out.String(), "   2|")

	out.Reset()
	cmd.SetArgs([]string{"status", root})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "66.7%")
}
