package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	flags := pflag.NewFlagSet("routecalc", pflag.ContinueOnError)
	flags.SetOutput(&stderr)
	code := run(args, flags, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunTextSummary(t *testing.T) {
	code, out, _ := runCLI(t, "-s", "K48.11:5")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "Time:    60 min")
	assert.Contains(t, out, "Orders:  5")
	assert.Contains(t, out, "Average: 12 min/order")
	assert.Contains(t, out, "CENTRO → K48.11 → CENTRO")
}

func TestRunJSONSummary(t *testing.T) {
	code, out, _ := runCLI(t, "--stop", "K48.11:2", "--stop", "K48.12:3", "--json")
	require.Equal(t, 0, code)

	var got summaryJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, summaryJSON{
		TotalMinutes:   70,
		TotalOrders:    5,
		AverageMinutes: 14,
		Path:           []string{"CENTRO", "K48.11", "K48.12", "CENTRO"},
	}, got)
}

func TestRunValidationErrors(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "add at least one position")

	code, _, errOut = runCLI(t, "-s", "K48.11")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "enter at least one order")

	code, _, errOut = runCLI(t, "-s", "K00:1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unknown stop "K00"`)
}

func TestRunPositions(t *testing.T) {
	code, out, _ := runCLI(t, "--positions")
	require.Equal(t, 0, code)

	assert.Contains(t, out, "15.20.4")
	assert.Contains(t, out, "140m")
}

func TestRunBadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "--nope")
	assert.Equal(t, 2, code)
}
