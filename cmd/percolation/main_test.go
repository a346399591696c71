package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"Column", "3\n1 1\n2 1\n3 1\n", true},
		{"Diagonal", "2\n1 1\n2 2\n", false},
		{"NoPairs", "4\n", false},
		{"SingleSite", "1 1 1", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(strings.NewReader(tc.input), discard())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := run(strings.NewReader(""), discard())
	assert.Error(t, err)

	_, err = run(strings.NewReader("0"), discard())
	assert.ErrorIs(t, err, percolation.ErrInvalidArgument)

	_, err = run(strings.NewReader("2 3 1"), discard())
	assert.ErrorIs(t, err, percolation.ErrOutOfRange)

	_, err = run(strings.NewReader("2 1"), discard())
	assert.ErrorIs(t, err, io.EOF)

	_, err = run(strings.NewReader("2 x 1"), discard())
	assert.Error(t, err)
}
