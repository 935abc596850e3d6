package clxns

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrBounds signals an index out of range, or a pop/peek on an empty queue.
	ErrBounds = errors.New("clxns: index out of bounds")
	// ErrNullItem signals an attempt to enqueue a nil item.
	ErrNullItem = errors.New("clxns: null item")
	// ErrMissing signals that a key is not present in a hash table.
	ErrMissing = errors.New("clxns: key not found")
)

// Status is a status code for the outcome of a fallible collection operation.
type Status int

// Status codes. Bounds and Missing are expected outcomes of probing a
// collection; NullItem flags a violation of the caller contract.
const (
	OK Status = iota
	Bounds
	NullItem
	Missing
	Unknown
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Bounds:
		return "BOUNDS"
	case NullItem:
		return "NULL_ITEM"
	case Missing:
		return "MISSING"
	}
	return "UNKNOWN"
}

// StatusOf maps an error returned by one of the collections to its status code.
// Wrapped errors are recognized. A nil error maps to OK, an error foreign to
// this module maps to Unknown.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrBounds):
		return Bounds
	case errors.Is(err, ErrNullItem):
		return NullItem
	case errors.Is(err, ErrMissing):
		return Missing
	}
	return Unknown
}

// BoundsError wraps ErrBounds with the offending index and the valid range
// [0, limit).
func BoundsError(index, limit int) error {
	return errors.Wrapf(ErrBounds, "index %d not in [0,%d)", index, limit)
}
