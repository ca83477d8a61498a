package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPath(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{"workflows/demo.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "workflows/demo.hcl", cfg.WorkflowPath)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_FlagTakesPriorityOverPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-workflow", "a.hcl", "b.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "a.hcl", cfg.WorkflowPath)
}

func TestParse_ShorthandFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-w", "short.hcl"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "short.hcl", cfg.WorkflowPath)
}

func TestParse_NoPathPrintsUsageAndExits(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogSettings(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-log-format", "xml", "w.hcl"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	_, _, err = Parse([]string{"-log-level", "loud", "w.hcl"}, &out)
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_DiagramFlag(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-diagram", "w.hcl"}, &out)
	require.NoError(t, err)
	assert.True(t, cfg.ShowDiagram)
}
