package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", err.Error())

	var exitErr *ExitError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &exitErr))
	assert.Equal(t, 3, exitErr.Code)
}

func TestFlagErrorf(t *testing.T) {
	err := FlagErrorf("unknown flag: %s", "--bogus")
	assert.Equal(t, "unknown flag: --bogus", err.Error())

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, "unknown flag: --bogus", flagErr.Error())
}

func TestFlagErrorWrap(t *testing.T) {
	inner := fmt.Errorf("output path must not be empty")
	err := FlagErrorWrap(inner)
	assert.Equal(t, "output path must not be empty", err.Error())

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.True(t, errors.Is(err, inner))
}

func TestFlagError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("wrapped")
	err := FlagErrorWrap(inner)

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, inner, flagErr.Unwrap())
}

func TestSilentError(t *testing.T) {
	err := fmt.Errorf("something failed: %w", SilentError)
	assert.True(t, errors.Is(err, SilentError))
}

func TestSilentError_Direct(t *testing.T) {
	assert.Equal(t, "SilentError", SilentError.Error())
}
