package database

import "errors"

// ErrStoreUnavailable wraps I/O failures talking to persistence. The
// operation did not commit; callers may retry with the same inputs.
var ErrStoreUnavailable = errors.New("database: store unavailable")
