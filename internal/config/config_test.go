package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Positionals(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "duct", "poem.txt"}, false)
	require.NoError(t, err)

	assert.Equal(t, "duct", cfg.Query)
	assert.Equal(t, "poem.txt", cfg.Filename)
	assert.True(t, cfg.CaseSensitive)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.OutputFile)
}

func TestResolve_NotEnoughArguments(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{},
		{"minigrep"},
		{"minigrep", "duct"},
	} {
		_, err := Resolve(args, false)
		assert.ErrorIs(t, err, ErrNotEnoughArguments)
	}
}

func TestResolve_CaseSensitivity(t *testing.T) {
	t.Run("defaults to sensitive when env unset", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f"}, false)
		require.NoError(t, err)
		assert.True(t, cfg.CaseSensitive)
	})

	t.Run("env set means insensitive", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f"}, true)
		require.NoError(t, err)
		assert.False(t, cfg.CaseSensitive)
	})

	t.Run("-S forces insensitive", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f", "-S"}, false)
		require.NoError(t, err)
		assert.False(t, cfg.CaseSensitive)
	})

	t.Run("-s overrides env", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f", "-s"}, true)
		require.NoError(t, err)
		assert.True(t, cfg.CaseSensitive)
	})

	t.Run("-s and -S conflict", func(t *testing.T) {
		_, err := Resolve([]string{"minigrep", "q", "f", "-s", "-S"}, false)
		assert.ErrorIs(t, err, ErrConflictingCaseFlags)
	})

	t.Run("a query of -S is not a flag", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "-S", "f"}, false)
		require.NoError(t, err)
		assert.Equal(t, "-S", cfg.Query)
		assert.True(t, cfg.CaseSensitive)
	})
}

func TestResolve_OutputFlag(t *testing.T) {
	t.Run("separate value", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f", "--output", "report.json"}, false)
		require.NoError(t, err)
		assert.Equal(t, "report.json", cfg.OutputFile)
	})

	t.Run("equals form", func(t *testing.T) {
		cfg, err := Resolve([]string{"minigrep", "q", "f", "--output=report.json"}, false)
		require.NoError(t, err)
		assert.Equal(t, "report.json", cfg.OutputFile)
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := Resolve([]string{"minigrep", "q", "f", "--output"}, false)
		assert.ErrorIs(t, err, ErrMissingOutputPath)
	})
}

func TestResolve_VerboseAndUnknownFlags(t *testing.T) {
	cfg, err := Resolve([]string{"minigrep", "q", "f", "--verbose", "--frobnicate"}, false)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.CaseSensitive)
}

func TestIsParseError(t *testing.T) {
	assert.True(t, IsParseError(ErrNotEnoughArguments))
	assert.True(t, IsParseError(ErrConflictingCaseFlags))
	assert.True(t, IsParseError(ErrMissingOutputPath))
	assert.False(t, IsParseError(assert.AnError))
	assert.False(t, IsParseError(nil))
}
