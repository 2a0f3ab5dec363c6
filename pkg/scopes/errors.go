package scopes

import "errors"

var (
	// ErrInvalidScope is returned when a scope does not match the
	// [unauthenticated_]<read|write>_<resource> shape
	ErrInvalidScope = errors.New("scopes: invalid access scope")
)
