//go:build linux

package main

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(nil)
	require.NoError(t, err)
	assert.False(t, opts.Verbose)
	assert.False(t, opts.ShowProcNames)
	assert.False(t, opts.ShowThreadNames)
	assert.Zero(t, opts.Depth)
	assert.Empty(t, opts.StartPath)
	assert.False(t, opts.ExplicitStart)
}

func TestParseOptionsFlags(t *testing.T) {
	opts, err := parseOptions([]string{"-v", "-p", "-t", "-d2"})
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.ShowProcNames)
	assert.True(t, opts.ShowThreadNames)
	assert.Equal(t, 2, opts.Depth)
}

func TestParseOptionsDepthAttachedDigits(t *testing.T) {
	opts, err := parseOptions([]string{"-d3"})
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Depth)
}

func TestParseOptionsPositionalPath(t *testing.T) {
	opts, err := parseOptions([]string{"-v", "/sys/fs/cgroup/user.slice/"})
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.Equal(t, "/sys/fs/cgroup/user.slice", opts.StartPath)
	assert.True(t, opts.ExplicitStart)
}

func TestParseOptionsPathMustBeLast(t *testing.T) {
	// A flag after the positional argument is a usage error.
	_, err := parseOptions([]string{"/sys/fs/cgroup", "-v"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "last argument")
}

func TestParseOptionsUnknownFlag(t *testing.T) {
	_, err := parseOptions([]string{"-x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, pflag.ErrHelp)
}

func TestParseOptionsHelp(t *testing.T) {
	_, err := parseOptions([]string{"-h"})
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestParseOptionsNegativeDepth(t *testing.T) {
	_, err := parseOptions([]string{"-d", "-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}
