// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// capture.go — the producer-facing write protocol: one entry point per
// writable tag, each appending to the bound sequence with the tag fixed by
// the method's identity.

package tape

// Capture implements the fixed write protocol an external producer emits
// its state through. Every method performs exactly: validate the argument
// where applicable, then append (tag, value) to the bound sequence. No
// method accepts or infers a tag from its value; the tag is part of the
// call's identity.
//
// Every method fails with ErrReadOnly once the bound sequence is sealed.
type Capture struct {
	seq *Sequence
}

// NewCapture binds a write adapter to seq. Sessions construct this
// internally; it is exported for producers driven without a Session.
func NewCapture(seq *Sequence) (*Capture, error) {
	if seq == nil {
		return nil, ErrArgumentInvalid
	}
	return &Capture{seq: seq}, nil
}

// WriteNull records an explicit null marker.
func (c *Capture) WriteNull() error { return c.seq.Append(TagNull, Null{}) }

// WriteBool records a boolean.
func (c *Capture) WriteBool(v bool) error { return c.seq.Append(TagBool, v) }

// WriteInt8 records a signed 8-bit integer.
func (c *Capture) WriteInt8(v int8) error { return c.seq.Append(TagInt8, v) }

// WriteInt16 records a signed 16-bit integer.
func (c *Capture) WriteInt16(v int16) error { return c.seq.Append(TagInt16, v) }

// WriteInt32 records a signed 32-bit integer.
func (c *Capture) WriteInt32(v int32) error { return c.seq.Append(TagInt32, v) }

// WriteInt64 records a signed 64-bit integer.
func (c *Capture) WriteInt64(v int64) error { return c.seq.Append(TagInt64, v) }

// WriteUint16 records an unsigned 16-bit integer.
func (c *Capture) WriteUint16(v uint16) error { return c.seq.Append(TagUint16, v) }

// WriteUint32 records an unsigned 32-bit integer.
func (c *Capture) WriteUint32(v uint32) error { return c.seq.Append(TagUint32, v) }

// WriteUint64 records an unsigned 64-bit integer.
func (c *Capture) WriteUint64(v uint64) error { return c.seq.Append(TagUint64, v) }

// WriteFloat records a floating-point scalar.
func (c *Capture) WriteFloat(v float64) error { return c.seq.Append(TagFloat, v) }

// WriteText records a UTF text value.
func (c *Capture) WriteText(v string) error { return c.seq.Append(TagText, v) }

// WriteChunk records an opaque binary chunk. The input is copied so later
// mutation of the caller's buffer cannot corrupt the captured value. A nil
// chunk fails with ErrArgumentInvalid.
func (c *Capture) WriteChunk(v []byte) error {
	if v == nil {
		return ErrArgumentInvalid
	}
	cp := make(Chunk, len(v))
	copy(cp, v)
	return c.seq.Append(TagChunk, cp)
}

// WriteBytes records a variable-length byte array, defensively copied.
// A nil slice fails with ErrArgumentInvalid.
func (c *Capture) WriteBytes(v []byte) error {
	if v == nil {
		return ErrArgumentInvalid
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return c.seq.Append(TagBytes, cp)
}

// WriteHandle records an opaque handle.
func (c *Capture) WriteHandle(v Handle) error { return c.seq.Append(TagHandle, v) }

// WriteHardOwnerID records a hard-owning object reference.
func (c *Capture) WriteHardOwnerID(v RefID) error { return c.seq.Append(TagHardOwnerID, v) }

// WriteSoftOwnerID records a soft-owning object reference.
func (c *Capture) WriteSoftOwnerID(v RefID) error { return c.seq.Append(TagSoftOwnerID, v) }

// WriteHardPointerID records a hard-pointing object reference.
func (c *Capture) WriteHardPointerID(v RefID) error { return c.seq.Append(TagHardPointerID, v) }

// WriteSoftPointerID records a soft-pointing object reference.
func (c *Capture) WriteSoftPointerID(v RefID) error { return c.seq.Append(TagSoftPointerID, v) }

// WritePoint2 records a 2D point.
func (c *Capture) WritePoint2(v Point2) error { return c.seq.Append(TagPoint2, v) }

// WritePoint3 records a 3D point.
func (c *Capture) WritePoint3(v Point3) error { return c.seq.Append(TagPoint3, v) }

// WriteVector2 records a 2D vector.
func (c *Capture) WriteVector2(v Vector2) error { return c.seq.Append(TagVector2, v) }

// WriteVector3 records a 3D vector.
func (c *Capture) WriteVector3(v Vector3) error { return c.seq.Append(TagVector3, v) }

// WriteScale3 records a non-uniform 3-axis scale.
func (c *Capture) WriteScale3(v Scale3) error { return c.seq.Append(TagScale3, v) }

// WriteAddress records a raw address/pointer value.
func (c *Capture) WriteAddress(v Address) error { return c.seq.Append(TagAddress, v) }
