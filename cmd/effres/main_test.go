package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalLine = "The effective resistance between nodes 1 and 5 is approximately: 0.7273 ohms."

func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, nil))

	text := out.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, canonicalLine, lines[len(lines)-1])
	// A (15 rows) + B (15) + V (15), each followed by a blank line, then the summary.
	assert.Len(t, lines, 15*3+3+1)
	assert.Equal(t, "[1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]", lines[0])
	assert.Equal(t, "[-1, 3, -1, 0, 0, 0, 0, 0, 0, 0, -1, 0, 0, 0, 0]", lines[1])
}

func TestRun_Quiet(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"-quiet"}))
	assert.Equal(t, canonicalLine+"\n", out.String())
}

func TestRun_IncidentTaps(t *testing.T) {
	for name, args := range map[string][]string{
		"forward": {"-quiet", "-taps="},
		"flags":   {"-quiet", "-taps=", "-ref", "5", "-src", "1"},
		"swap":    {"-quiet", "-taps=", "-swap"},
	} {
		var out bytes.Buffer
		require.NoError(t, run(&out, args), name)
		assert.Contains(t, out.String(), "approximately: 0.8565 ohms.", name)
	}

	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"-quiet", "-swap", "-taps="}))
	assert.True(t, strings.HasPrefix(out.String(), "The effective resistance between nodes 5 and 1 "))
}

func TestRun_ExplicitTaps(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"-quiet", "-taps", "3, 4,9"}))
	assert.Equal(t, canonicalLine+"\n", out.String())
}

func TestParseTaps(t *testing.T) {
	taps, err := parseTaps("")
	require.NoError(t, err)
	assert.Nil(t, taps)

	taps, err = parseTaps("2,9 ,10")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 9, 10}, []int(taps))

	_, err = parseTaps("3,x")
	assert.Error(t, err)
}

func TestColorable(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, colorable(f))
}

func TestRun_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"bad-terminal": {"-src", "99"},
		"same-nodes":   {"-ref", "5"},
		"bad-tol":      {"-tol", "0"},
		"extra-args":   {"foo"},
		"bad-flag":     {"-nope"},
		"bad-taps":     {"-taps", "3,four"},
		"tap-range":    {"-taps", "3,99"},
	} {
		var out bytes.Buffer
		assert.Error(t, run(&out, args), name)
	}
}
