package review

import "errors"

// Sentinel errors returned by the scheduler. Check with errors.Is.
var (
	// ErrInvalidArgument means the caller passed malformed input, e.g. an
	// empty item id. Retrying without fixing the input will not help.
	ErrInvalidArgument = errors.New("review: invalid argument")

	// ErrNotFound means the referenced study item is not enrolled.
	ErrNotFound = errors.New("review: study item not found")
)
