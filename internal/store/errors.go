package store

import "errors"

// Sentinel errors returned by the blob store and repositories to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrBlobNotFound is returned by Get when the requested key has never
	// been written. It is a normal outcome on first access, not a fault.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrStorageUnavailable is returned (or wrapped) when the persistence
	// substrate fails for any reason other than a missing key. The vault
	// keeps its last-good in-memory state when this happens; no partial
	// write is observable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptBlob is returned when a stored document cannot be decoded
	// back into its domain model. It indicates external tampering or an
	// incompatible format change, not a substrate outage.
	ErrCorruptBlob = errors.New("stored blob is corrupt")
)
