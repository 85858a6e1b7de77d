package eytzmap

import (
	"errors"
	"fmt"
)

// Entry is a key/value pair, the unit of input to a build and of iteration.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// DuplicatePolicy selects which of several input entries with equivalent keys
// survives a build.
type DuplicatePolicy uint8

const (
	// KeepFirst retains the entry that came first in input order.
	KeepFirst DuplicatePolicy = iota
	// KeepLast retains the entry that came last in input order.
	KeepLast
)

var (
	ErrKeyNotFound = errors.New("eytzmap: key not found")

	// ErrPreconditionViolation is the panic value (possibly wrapped) for
	// programming errors: these are never returned.
	ErrPreconditionViolation = errors.New("eytzmap: precondition violation")

	ErrKeyAbsent      = fmt.Errorf("%w: key must be present", ErrPreconditionViolation)
	ErrEndDereference = fmt.Errorf("%w: iterator is at the end", ErrPreconditionViolation)
	ErrBeginDecrement = fmt.Errorf("%w: iterator is at the beginning", ErrPreconditionViolation)
	ErrNotTransparent = fmt.Errorf("%w: ordering can not compare keys with the query type", ErrPreconditionViolation)
	ErrNoOrdering     = fmt.Errorf("%w: an ordering is required to build", ErrPreconditionViolation)
)

func precondition(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
