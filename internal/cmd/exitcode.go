package cmd

import (
	"context"
	"errors"

	"github.com/bjaus/pround"
	"github.com/bjaus/pround/internal/config"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps an error returned by [App.Execute] to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ve *config.ValidationError
	if errors.As(err, &ve) {
		return ExitUser
	}
	for _, target := range []error{
		pround.ErrShape,
		pround.ErrInvalidUncertainty,
		pround.ErrUnsupportedFormat,
		pround.ErrTypeMismatch,
		errUsage,
	} {
		if errors.Is(err, target) {
			return ExitUser
		}
	}
	return ExitSystem
}
