package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropyCommand(t *testing.T) {
	logPath := writeTempLog(t, "a,b,c\na,b,c\na,d\n")

	buf := &bytes.Buffer{}
	cmd := NewEntropyCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "#states: 5")
	assert.Contains(t, output, "#transitions: 4")
	assert.Contains(t, output, "#partitions: 2")
	assert.Contains(t, output, "partition 1: 3 state(s)")
	assert.Contains(t, output, "partition 2: 1 state(s)")
	assert.Contains(t, output, "variant entropy: 0.9769")
	assert.Contains(t, output, "normalized variant entropy: 0.4056")
}

func TestEntropyCommandSingleVariant(t *testing.T) {
	logPath := writeTempLog(t, "a,b,c\na,b,c\n")

	buf := &bytes.Buffer{}
	cmd := NewEntropyCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "variant entropy: 0.0000")
}

func TestEntropyCommandJSON(t *testing.T) {
	logPath := writeTempLog(t, "a,b\na,c\n")

	buf := &bytes.Buffer{}
	cmd := NewEntropyCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{logPath})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string        `json:"status"`
		Data   EntropyResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 4, resp.Data.States)
	assert.Equal(t, 2, resp.Data.Partitions)
}

func TestEntropyCommandMissingLog(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewEntropyCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"/nonexistent/log.txt"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
