package catalog

import "errors"

// Sentinel errors returned by the catalog client and normalizer. Callers
// should match against them with [errors.Is].
var (
	// ErrUpstream is returned when a catalog call fails at the transport
	// level (timeout, connection refused) or comes back with a non-success
	// HTTP status. It is deliberately distinct from an empty result set so
	// that callers can report an infrastructure failure instead of "no
	// matches".
	ErrUpstream = errors.New("upstream catalog request failed")

	// ErrMalformedEntity is returned when an upstream entity carries neither
	// of the two recognized marker fields, or carries an empty dates list.
	ErrMalformedEntity = errors.New("malformed catalog entity")
)
