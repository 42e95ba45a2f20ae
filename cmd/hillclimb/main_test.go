package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/hillclimb/internal/config"
)

const sampleMap = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// setup resets the package globals and writes body to a temp map file.
func setup(t *testing.T, body string) string {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, fn func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	err := fn(cmd, args)
	return out.String(), err
}

func TestRunDistance(t *testing.T) {
	path := setup(t, sampleMap)
	out, err := run(t, runDistance, path)
	require.NoError(t, err)
	require.Equal(t, "31\n", out)
}

func TestRunAny(t *testing.T) {
	path := setup(t, sampleMap)
	for _, st := range []string{"independent", "reverse"} {
		cfg.Strategy = st
		out, err := run(t, runAny, path)
		require.NoError(t, err, st)
		require.Equal(t, "29\n", out, st)
	}
}

func TestRunDistance_NoPath(t *testing.T) {
	path := setup(t, "Sab\nddd\naaE\n")
	out, err := run(t, runDistance, path)
	require.NoError(t, err)
	require.Equal(t, "no path\n", out)

	out, err = run(t, runAny, path)
	require.NoError(t, err)
	require.Equal(t, "no path\n", out)
}

func TestRunDistance_Errors(t *testing.T) {
	path := setup(t, "Sa?\nabE\n")
	_, err := run(t, runDistance, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid character")

	_, err = run(t, runDistance, filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open map")
}

func TestRunDistance_Render(t *testing.T) {
	path := setup(t, sampleMap)
	cfg.Render = true
	out, err := run(t, runDistance, path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "31", lines[0])
	require.Len(t, lines, 6)
	for _, l := range lines[1:] {
		require.Equal(t, 8, lipgloss.Width(l))
	}
}

func TestRootCommand(t *testing.T) {
	path := setup(t, sampleMap)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"any", path, "--strategy", "reverse", "--workers", "2"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "29\n", out.String())
	require.Equal(t, "reverse", cfg.Strategy)
	require.Equal(t, 2, cfg.Workers)
}
