package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"anatorient/pkg/config"
	"anatorient/pkg/header"
	"anatorient/pkg/orientation"
)

const headers = `datasets:
  - name: epi
    dims: [64, 64, 32]
    delta: [3.75, 3.75, 4]
    origin: [-118.125, -118.125, -62]
    orient: RAI
  - name: broken
    dims: [64, 64, 32]
    delta: [1, 1, 1]
    origin: [0, 0, 0]
    orient: RLS
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, zap.NewNop())
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeHeaders(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "headers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(headers), 0644))
	return path
}

func TestCodeCommand(t *testing.T) {
	out, err := run(t, "code", "R", "s", "Q", "AP")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "R\tR2L\t0\tR/L", lines[0])
	assert.Equal(t, "s\tIllegal\t7\tnone", lines[1])
	assert.Equal(t, "Q\tIllegal\t7\tnone", lines[2])
	assert.Equal(t, "AP\tIllegal\t7\tnone", lines[3])
}

func TestCodeCommandFoldCase(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("parsing:\n  foldCase: true\n"), 0644))

	out, err := run(t, "--config", cfgPath, "code", "s")
	require.NoError(t, err)
	assert.Equal(t, "s\tS2I\t5\tI/S\n", out)
}

func TestFrameCommand(t *testing.T) {
	out, err := run(t, "frame", "RAI")
	require.NoError(t, err)
	assert.Contains(t, out, "right-handed")
	assert.Contains(t, out, "axis 1:     sagittal slices")
	assert.Contains(t, out, "axis 3:     axial slices")

	out, err = run(t, "frame", "RAR")
	assert.ErrorIs(t, err, orientation.ErrInvalidFrame)
	// main prints the error once; cobra must not print it as well.
	assert.NotContains(t, out, "Error:")
}

func TestLabelCommand(t *testing.T) {
	out, err := run(t, "label", "--", "-3.2", "0", "7")
	require.NoError(t, err)
	assert.Equal(t, "-3.200 [R]  0.000 [Z]  7.000 [S]\n", out)

	_, err = run(t, "label", "1", "two", "3")
	assert.Error(t, err)

	// Without -- a leading negative coordinate is read as a flag.
	out, err = run(t, "label", "-3.2", "0", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label -- -3.2 0 7")
	assert.NotContains(t, out, "Error:")
}

func TestCheckCommand(t *testing.T) {
	path := writeHeaders(t)

	out, err := run(t, "check", path)
	assert.ErrorIs(t, err, errDatasetsNotOK)
	assert.Contains(t, out, "epi")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "pair used twice")

	_, err = run(t, "--strict", "check", path)
	assert.ErrorIs(t, err, header.ErrFatal)
}

func TestLocateCommand(t *testing.T) {
	path := writeHeaders(t)

	out, err := run(t, "locate", path, "epi", "0", "63", "31")
	require.NoError(t, err)
	assert.Equal(t, "-118.125 [R]  118.125 [P]  62.000 [S]\n", out)

	_, err = run(t, "locate", path, "missing", "0", "0", "0")
	assert.Error(t, err)

	_, err = run(t, "locate", path, "epi", "64", "0", "0")
	assert.Error(t, err)
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anatorient.yaml")
	_, err := run(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
