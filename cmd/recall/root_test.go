package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestQuitRandomGame(t *testing.T) {
	out, err := execute(t, "status\nquit\ny\n", "--mode", "random", "--seed", "5", "--clear-screen=false")
	require.NoError(t, err)

	assert.Contains(t, out, "random game, round 1")
	assert.Contains(t, out, "Final results")
}

func TestRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "", "--mode", "chess")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestRejectsUnknownStrategy(t *testing.T) {
	_, err := execute(t, "", "--strategy", "vibes")
	assert.ErrorContains(t, err, "unknown scoring strategy")
}

func TestRejectsBadLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}
