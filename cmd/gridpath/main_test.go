package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/pathgrid"
)

// writeMap stores a JSON maze in a temp dir and returns its path.
func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "absent.env")))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const detour = `[[1,1,1],[0,0,1],[1,1,1]]`

func TestSearchCmd(t *testing.T) {
	out, _, err := execute(t, "search", "--map", writeMap(t, detour), "--from", "0,0", "--to", "2,0", "--check")
	require.NoError(t, err)
	assert.Equal(t, "S**\n##*\nG**\nsteps: 6\ncost: 6.0000\ncheck: ok\n", out)
}

func TestSearchCmd_NoPathWritesMetrics(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "gridpath.prom")
	out, _, err := execute(t, "search",
		"--map", writeMap(t, `[[1,0],[0,1]]`),
		"--to", "1,1",
		"--check",
		"--metrics-file", metricsPath,
	)
	require.NoError(t, err)
	assert.Equal(t, "no path from (0,0) to (1,1)\ncheck: ok\n", out)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gridpath_search_total{outcome="no_path"} 1`)
	assert.Contains(t, string(data), `gridpath_rebuild_total 1`)
}

func TestSearchCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "search", "--to", "1,1")
	assert.ErrorIs(t, err, errNoMap)

	_, _, err = execute(t, "search", "--map", writeMap(t, detour), "--to", "one,two")
	assert.ErrorIs(t, err, errBadCoord)

	_, _, err = execute(t, "search", "--map", writeMap(t, detour), "--to", "5,5")
	assert.ErrorIs(t, err, pathgrid.ErrOutOfBounds)

	_, _, err = execute(t, "search", "--map", writeMap(t, `[[1,1]]`), "--to", "0,1")
	assert.ErrorIs(t, err, pathgrid.ErrMalformedInput)
}

func TestComponentsCmd(t *testing.T) {
	out, _, err := execute(t, "components", "--map", writeMap(t, `[[1,0,1],[1,0,1],[1,0,0]]`))
	require.NoError(t, err)
	assert.Equal(t, "regions: 2\n  #1: 3 cells from (0,0)\n  #2: 2 cells from (0,2)\n", out)
}

func TestComponentsCmd_Bridge(t *testing.T) {
	out, _, err := execute(t, "components", "--map", writeMap(t, `[[1,0,1],[1,0,1],[1,0,1]]`), "--from", "0,0", "--to", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "regions: 2\n")
	assert.Contains(t, out, "bridge (0,0) to (0,2): open 1 [(0,1)]\n")
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Setenv("GRIDPATH_MAP", writeMap(t, detour))
	t.Setenv("GRIDPATH_LOG_LEVEL", "debug")

	out, logs, err := execute(t, "components")
	require.NoError(t, err)
	assert.Contains(t, out, "regions: 1")
	assert.Contains(t, logs, "map loaded")
}

func TestConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gridpath.yaml")
	body := "map: " + writeMap(t, detour) + "\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	out, logs, err := execute(t, "search", "--config", cfgPath, "--to", "0,2", "-q")
	require.NoError(t, err)
	assert.Equal(t, "steps: 2\ncost: 2.0000\n", out)
	assert.Empty(t, logs, "info records are below the configured level")
}

func TestConfig_FromDotenv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("GRIDPATH_MAP="+writeMap(t, detour)+"\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GRIDPATH_MAP") })

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"components", "--env-file", envPath})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "regions: 1")
}

func TestConfig_BadThreshold(t *testing.T) {
	_, _, err := execute(t, "components", "--map", writeMap(t, detour), "--threshold", "300")
	assert.ErrorContains(t, err, "threshold 300")
}

func TestParseCoord(t *testing.T) {
	cases := []struct {
		in      string
		want    pathgrid.Coord
		wantErr bool
	}{
		{"2,3", pathgrid.Coord{Row: 2, Col: 3}, false},
		{" 10 , 0 ", pathgrid.Coord{Row: 10, Col: 0}, false},
		{"-1,4", pathgrid.Coord{Row: -1, Col: 4}, false},
		{"2;3", pathgrid.Coord{}, true},
		{"a,1", pathgrid.Coord{}, true},
		{"1,", pathgrid.Coord{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseCoord(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, errBadCoord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
