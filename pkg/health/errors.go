package health

import "errors"

var (
	// ErrCheckTimeout is reported when a check does not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
	// ErrNotReady is reported by a Gate that has not been opened yet.
	ErrNotReady = errors.New("health: not ready")
)
