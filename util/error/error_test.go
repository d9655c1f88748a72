package error_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	uerror "bravectl/util/error"
)

func TestWithExitCode(t *testing.T) {
	base := errors.New("boom")
	err := uerror.WithExitCode(3, base)

	code, ok := uerror.GetExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, uint(3), code)
	assert.Equal(t, "boom", err.Error())
}

func TestGetExitCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", uerror.WithExitCode(7, errors.New("inner")))

	code, ok := uerror.GetExitCode(err)
	assert.True(t, ok)
	assert.Equal(t, uint(7), code)
}

func TestGetExitCodeAbsent(t *testing.T) {
	_, ok := uerror.GetExitCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestWithStackTraceNil(t *testing.T) {
	assert.NoError(t, uerror.WithStackTrace(nil))
}

func TestWithStackTraceIdempotent(t *testing.T) {
	once := uerror.WithStackTrace(errors.New("boom"))
	twice := uerror.WithStackTrace(once)
	assert.Equal(t, once, twice)
}

func TestStackTracefPreservesWrapping(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := uerror.StackTracef("context: %w", sentinel)
	assert.ErrorIs(t, err, sentinel)
}
