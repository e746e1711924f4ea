package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/internal/eventlog"
)

func TestConvertCommandStdout(t *testing.T) {
	logPath := writeTempLog(t, "a,b,c\na,d:2\n")

	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "xes.version")
	assert.Contains(t, output, "concept:name")

	// The generated document must parse back to the same traces, with
	// the ":2" suffix expanded.
	parsed, err := eventlog.ParseXES(output)
	require.NoError(t, err)
	assert.Len(t, parsed.Traces, 3)
}

func TestConvertCommandOutputFile(t *testing.T) {
	logPath := writeTempLog(t, "a,b\n")
	outPath := filepath.Join(t.TempDir(), "out.xes")

	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath, "-o", outPath})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "concept:name")
}

func TestConvertCommandMissingInput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/log.txt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvertCommandEmptyInput(t *testing.T) {
	logPath := writeTempLog(t, "\n")

	buf := &bytes.Buffer{}
	cmd := NewConvertCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
