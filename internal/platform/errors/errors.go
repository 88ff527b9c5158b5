package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// Deployment failures. A connection error covers both unreachable hosts
	// and rejected authentication; neither is retried.
	ErrConnection = errors.New("remote connection failed")
	ErrTransfer   = errors.New("file transfer failed")
)
