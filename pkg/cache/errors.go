package cache

import "errors"

var (
	// ErrNotFound is returned when a key does not exist in the cache or has expired.
	ErrNotFound = errors.New("cache: entry not found")
	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("cache: closed")
	// ErrEncode is returned when a value cannot be encoded for storage.
	ErrEncode = errors.New("cache: failed to encode value")
	// ErrDecode is returned when a stored value cannot be decoded.
	ErrDecode = errors.New("cache: failed to decode value")
)
