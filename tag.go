// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// tag.go — the closed TypeTag enumeration and the value representation
// types associated with each tag family. Tags are stable; adding one is a
// protocol-versioning event, never a runtime concern.

package tape

import "fmt"

// TypeTag identifies the semantic kind of a captured value. The set is
// closed: every tag the write protocol can emit is listed here.
type TypeTag uint8

const (
	TagNull TypeTag = iota
	TagBool
	TagInt8
	TagInt16
	TagInt32
	TagInt64
	TagUint16
	TagUint32
	TagUint64
	TagFloat
	TagText
	TagChunk
	TagBytes
	TagHandle
	TagHardOwnerID
	TagSoftOwnerID
	TagHardPointerID
	TagSoftPointerID
	TagPoint2
	TagPoint3
	TagVector2
	TagVector3
	TagScale3
	TagAddress
	TagUnknown
)

var tagNames = map[TypeTag]string{
	TagNull:          "Null",
	TagBool:          "Bool",
	TagInt8:          "Int8",
	TagInt16:         "Int16",
	TagInt32:         "Int32",
	TagInt64:         "Int64",
	TagUint16:        "Uint16",
	TagUint32:        "Uint32",
	TagUint64:        "Uint64",
	TagFloat:         "Float",
	TagText:          "Text",
	TagChunk:         "Chunk",
	TagBytes:         "Bytes",
	TagHandle:        "Handle",
	TagHardOwnerID:   "HardOwnerID",
	TagSoftOwnerID:   "SoftOwnerID",
	TagHardPointerID: "HardPointerID",
	TagSoftPointerID: "SoftPointerID",
	TagPoint2:        "Point2",
	TagPoint3:        "Point3",
	TagVector2:       "Vector2",
	TagVector3:       "Vector3",
	TagScale3:        "Scale3",
	TagAddress:       "Address",
	TagUnknown:       "Unknown",
}

// String returns the tag's name, or "TypeTag(n)" for a value outside the
// closed set.
func (t TypeTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("TypeTag(%d)", t)
}

// Valid reports whether t is a member of the closed tag set.
func (t TypeTag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// ────────────────────────────────────────────────────────────────────────────
// Representation types
// ────────────────────────────────────────────────────────────────────────────

// Null is the representation of TagNull. A TaggedValue is never constructed
// with an absent value, so explicit nulls carry this marker instead.
type Null struct{}

// Chunk is an opaque binary blob, distinct from the plain byte-array
// representation so the two tags remain distinguishable on read.
type Chunk []byte

// Handle is an opaque, immutable, equality-comparable producer handle.
type Handle uint64

// String returns the handle in the textual form used by interchange
// translation (uppercase hex, no prefix).
func (h Handle) String() string { return fmt.Sprintf("%X", uint64(h)) }

// RefID is an opaque object-reference identifier. All four relationship
// tags (hard/soft owner, hard/soft pointer) share this representation; the
// relationship kind lives in the tag, not the value.
type RefID uint64

// Point2 is a 2D point.
type Point2 struct {
	X, Y float64
}

// Point3 is a 3D point.
type Point3 struct {
	X, Y, Z float64
}

// Vector2 is a 2D displacement.
type Vector2 struct {
	X, Y float64
}

// Vector3 is a 3D displacement.
type Vector3 struct {
	X, Y, Z float64
}

// Scale3 is a non-uniform 3-axis scale factor.
type Scale3 struct {
	X, Y, Z float64
}

// Address is a raw pointer value captured verbatim. It has no safe
// interchange representation; see interchange.go.
type Address uint64

// Unknown is the catch-all representation for values whose tag could not be
// recognized, e.g. when reconstructing from externally-authored interchange
// data. It carries a diagnostic note, never the original typed value.
type Unknown string
