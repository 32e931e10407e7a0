package xerosync

import (
	"errors"
	"fmt"
)

// ErrorKind classifies how a sync cycle failed. Every fault is scoped to one
// cycle of one entity type; nothing here is fatal to the process.
type ErrorKind string

const (
	// ErrKindFetchFailed is a transport or remote-side error reaching the API.
	ErrKindFetchFailed ErrorKind = "fetch_failed"
	// ErrKindInvalidRemoteShape means the response is missing the expected
	// wrapper key, or the wrapper does not hold an array.
	ErrKindInvalidRemoteShape ErrorKind = "invalid_remote_shape"
	// ErrKindNormalizationFault is a per-record mapping failure; the record is
	// dropped and the cycle continues.
	ErrKindNormalizationFault ErrorKind = "normalization_fault"
	// ErrKindPersistConflict is an identifier-uniqueness violation at insert
	// time, expected when cycles overlap. Benign.
	ErrKindPersistConflict ErrorKind = "persist_conflict"
	// ErrKindPersistFailed is any other store fault during bulk insert.
	ErrKindPersistFailed ErrorKind = "persist_failed"
)

// SyncError is the structured failure an on-demand trigger returns to its
// caller. Timer-driven cycles only log it.
type SyncError struct {
	Kind   ErrorKind
	Entity string
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s sync %s: %v", e.Entity, e.Kind, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func newSyncError(kind ErrorKind, entity string, err error) *SyncError {
	return &SyncError{Kind: kind, Entity: entity, Err: err}
}

// ErrConflict marks a duplicate remote identifier at insert time. Store
// implementations wrap their native duplicate-key errors with it.
var ErrConflict = errors.New("duplicate remote identifier")

// errMalformedPayload marks a response body that is not a JSON object at all.
var errMalformedPayload = errors.New("response is not a JSON object")
