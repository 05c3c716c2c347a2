package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnparsable    = errors.New("document unparsable")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingInput  = errors.New("input directory missing")
	ErrStoreClosed   = errors.New("store closed")
)
