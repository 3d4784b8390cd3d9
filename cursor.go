// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// cursor.go — the sequential read state machine over a sequence: a
// position plus a sticky fault flag set by failed or exhausting reads.

package tape

// FaultKind classifies a recorded cursor fault.
type FaultKind int

const (
	// FaultTypeMismatch records a read whose expected tag did not match the
	// stored element's representation.
	FaultTypeMismatch FaultKind = iota
	// FaultEndOfData records stream exhaustion, set proactively by the read
	// that consumes the final element.
	FaultEndOfData
)

// String returns the fault kind's name.
func (k FaultKind) String() string {
	switch k {
	case FaultTypeMismatch:
		return "TypeMismatch"
	case FaultEndOfData:
		return "EndOfData"
	default:
		return "Unknown"
	}
}

// Fault is the sticky error state recorded on a cursor. It persists across
// subsequent reads, and across Rewind, until ResetFault clears it.
type Fault struct {
	Kind     FaultKind
	Position int
	Want     TypeTag // set for FaultTypeMismatch
	Got      TypeTag // set for FaultTypeMismatch
}

// Cursor is the per-reader read state over a Sequence: a position in
// [0, len] and an optional fault. A failed read never advances the
// position and never mutates stored elements.
//
// Cursors are single-reader state; concurrent use of one cursor is
// undefined by contract.
type Cursor struct {
	seq   *Sequence
	pos   int
	fault *Fault
}

// Position returns the current read position.
func (c *Cursor) Position() int { return c.pos }

// Fault returns the recorded fault, or nil.
func (c *Cursor) Fault() *Fault { return c.fault }

// EndOfData reports whether the position is at or past the final element.
func (c *Cursor) EndOfData() bool {
	return c.pos > c.seq.Len()-1
}

// Peek returns the element at the current position without moving the
// cursor. The lookahead covers all but the last element: peeking at or
// past position len-1 returns false. The boundary is preserved from the
// protocol this package replays, quirk included.
func (c *Cursor) Peek() (TaggedValue, bool) {
	if c.pos < c.seq.Len()-1 {
		return c.seq.items[c.pos], true
	}
	return TaggedValue{}, false
}

// current returns the element at the present position, unlike Peek which
// excludes the final element. Used by reads that must inspect before
// consuming.
func (c *Cursor) current() (TaggedValue, bool) {
	if c.EndOfData() {
		return TaggedValue{}, false
	}
	return c.seq.items[c.pos], true
}

// Next pulls the element at the current position after checking that its
// representation matches expected's. On success the position advances; the
// read that consumes the final element also records an end-of-data fault,
// marking the stream exhausted without requiring a further failed read.
//
// Failure order: ErrEndOfData past the end, ErrFaulted while a fault is
// recorded, then *TypeMismatchError on a representation mismatch, which
// records a fault and leaves the position unchanged.
func (c *Cursor) Next(expected TypeTag) (TaggedValue, error) {
	if c.EndOfData() {
		return TaggedValue{}, ErrEndOfData
	}
	if c.fault != nil {
		return TaggedValue{}, ErrFaulted
	}
	tv := c.seq.items[c.pos]
	if !sameRepresentation(tv.tag, expected) {
		c.fault = &Fault{
			Kind:     FaultTypeMismatch,
			Position: c.pos,
			Want:     expected,
			Got:      tv.tag,
		}
		return TaggedValue{}, &TypeMismatchError{Position: c.pos, Want: expected, Got: tv.tag}
	}
	c.pos++
	if c.EndOfData() {
		c.fault = &Fault{Kind: FaultEndOfData, Position: c.pos}
	}
	return tv, nil
}

// Rewind resets the position to 0. An existing fault is deliberately left
// in place; clearing it is the separate, explicit ResetFault.
func (c *Cursor) Rewind() {
	c.pos = 0
}

// ResetFault clears the fault flag without moving the position.
func (c *Cursor) ResetFault() {
	c.fault = nil
}

// Seek always fails with ErrUnsupported: the capture/replay model is
// strictly sequential and random access is outside the protocol contract.
func (c *Cursor) Seek(offset int, whence int) error {
	return ErrUnsupported
}
