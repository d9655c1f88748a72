package error

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorWithExitCode carries the process exit code the wrapped error
// should terminate with.
type ErrorWithExitCode struct {
	ExitCode uint
	Wrapped  error
}

func (e ErrorWithExitCode) Error() string {
	return e.Wrapped.Error()
}

func (e ErrorWithExitCode) Unwrap() error {
	return e.Wrapped
}

// WithExitCode attaches an exit code to the error unless it already
// carries that code.
func WithExitCode(exitCode uint, err error) error {
	var coded ErrorWithExitCode
	if errors.As(err, &coded) && coded.ExitCode == exitCode {
		return err
	}
	return ErrorWithExitCode{
		ExitCode: exitCode,
		Wrapped:  err,
	}
}

// GetExitCode extracts an exit code attached anywhere in the error
// chain.
func GetExitCode(err error) (exitCode uint, hasExitCode bool) {
	var coded ErrorWithExitCode
	if errors.As(err, &coded) {
		return coded.ExitCode, true
	}
	return 0, false
}

// ErrorWithStackTrace is an error that attaches a stack trace to its
// message.
type ErrorWithStackTrace struct {
	StackTrace string
	Wrapped    error
}

// Error returns this error's message.
func (s ErrorWithStackTrace) Error() string {
	return fmt.Sprintf("%v\n\n%s\nEND OF StackTraceError", s.Wrapped, s.StackTrace)
}

// Unwrap returns the underlying error of this error.
func (s ErrorWithStackTrace) Unwrap() error {
	return s.Wrapped
}

// WithStackTrace attaches a stack trace to the error, if it does not
// already contain one.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}
	var traced ErrorWithStackTrace
	if errors.As(err, &traced) {
		return err
	}
	st := make([]byte, 1<<16)
	n := runtime.Stack(st, false)
	return ErrorWithStackTrace{
		Wrapped:    err,
		StackTrace: string(st[:n]),
	}
}

// StackTracef is fmt.Errorf with a stack trace attached.
func StackTracef(format string, a ...interface{}) error {
	return WithStackTrace(fmt.Errorf(format, a...))
}
