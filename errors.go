// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public tape API,
// covering append/read contract violations, cursor faults, interchange
// translation gaps, and archive failures.

// Package tape captures an external producer's typed write calls into an
// append-only log of tagged values and replays that log through a mirrored,
// strictly type-checked read protocol.
package tape

import (
	"errors"
	"fmt"
)

// Contract errors
var (
	ErrArgumentInvalid = errors.New("tape: invalid argument")
	ErrReadOnly        = errors.New("tape: sequence is sealed")
	ErrNotSealed       = errors.New("tape: sequence is still building")
	ErrUnsupported     = errors.New("tape: operation not supported")
)

// Cursor errors
var (
	ErrEndOfData    = errors.New("tape: end of data")
	ErrTypeMismatch = errors.New("tape: type mismatch")
	ErrFaulted      = errors.New("tape: cursor is faulted")
)

// Translation errors
var (
	ErrTranslationUnsupported = errors.New("tape: tag has no interchange counterpart")
)

// Archive errors
var (
	ErrNotFound      = errors.New("tape: sequence not found")
	ErrClosed        = errors.New("tape: archive closed")
	ErrInvalidConfig = errors.New("tape: invalid configuration")
	ErrDecodeFailed  = errors.New("tape: failed to decode archived sequence")
	ErrEncodeFailed  = errors.New("tape: failed to encode sequence for archive")
)

// TypeMismatchError carries the detail of a failed typed read: the cursor
// position it happened at, the tag the caller asked for, and the tag actually
// stored there. It matches ErrTypeMismatch under errors.Is.
type TypeMismatchError struct {
	Position int
	Want     TypeTag
	Got      TypeTag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("tape: type mismatch at position %d: want %s, got %s", e.Position, e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }
