package main

import (
	"errors"
	"os"

	"onboardpdf"
)

// Exit codes for the onboardpdf CLI.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2 // bad flags, request or output location
	ExitIO      = 3 // unreadable input, unwritable output
)

// exitCodeFor maps err to an exit code. Callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrParseRequest) ||
		errors.Is(err, onboardpdf.ErrOutputPathRequired) ||
		errors.Is(err, onboardpdf.ErrInvalidLocation) ||
		errors.Is(err, onboardpdf.ErrBucketMismatch) ||
		errors.Is(err, onboardpdf.ErrObjectStoreUnavailable) {
		return ExitUsage
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadRequest) ||
		errors.Is(err, ErrReadSignature) {
		return ExitIO
	}

	return ExitGeneral
}
