package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/montecarlo"
)

func TestParseArgs(t *testing.T) {
	opts, err := parseArgs([]string{"-seed", "7", "-confidence", "0.99", "20", "100"})
	require.NoError(t, err)
	assert.Equal(t, options{n: 20, trials: 100, seed: 7, seeded: true, confidence: 0.99}, opts)

	opts, err = parseArgs([]string{"5", "3"})
	require.NoError(t, err)
	assert.False(t, opts.seeded)
	assert.Equal(t, 0.95, opts.confidence)

	for _, args := range [][]string{
		{},
		{"5"},
		{"5", "x"},
		{"a", "3"},
		{"-confidence", "1.5", "5", "3"},
		{"-bogus", "5", "3"},
	} {
		_, err = parseArgs(args)
		assert.ErrorIs(t, err, errUsage, "args=%v", args)
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var out bytes.Buffer

	err := run(&out, options{n: 1, trials: 5, seed: 1, seeded: true, confidence: 0.95}, logger)
	require.NoError(t, err)
	assert.Equal(t,
		"mean                    = 1.0000000000\n"+
			"stddev                  = 0.0000000000\n"+
			"95% confidence interval = 1.0000000000, 1.0000000000\n",
		out.String())

	err = run(&out, options{n: 0, trials: 5, confidence: 0.95}, logger)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidArgument)
}
