// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// replay.go — the producer-facing read protocol mirroring capture.go:
// one typed entry point per tag, each a strictly type-checked pull from
// the bound cursor. Pure consumers: only cursor state ever changes.

package tape

// Replay implements the fixed read protocol an external producer restores
// its state through. Each method delegates to Cursor.Next with the tag
// fixed by the method's identity; a mismatched read faults the cursor and
// leaves its position unchanged.
type Replay struct {
	cur *Cursor
}

// NewReplay binds a read adapter to an existing cursor. Sessions construct
// this internally; it is exported for producers driven without a Session.
func NewReplay(cur *Cursor) (*Replay, error) {
	if cur == nil {
		return nil, ErrArgumentInvalid
	}
	return &Replay{cur: cur}, nil
}

// Cursor returns the bound cursor, for callers that need to inspect
// position or fault state mid-replay.
func (r *Replay) Cursor() *Cursor { return r.cur }

// ReadNull consumes an explicit null marker.
func (r *Replay) ReadNull() error {
	_, err := r.cur.Next(TagNull)
	return err
}

// ReadBool consumes a boolean.
func (r *Replay) ReadBool() (bool, error) {
	tv, err := r.cur.Next(TagBool)
	if err != nil {
		return false, err
	}
	return tv.value.(bool), nil
}

// ReadInt8 consumes a signed 8-bit integer.
func (r *Replay) ReadInt8() (int8, error) {
	tv, err := r.cur.Next(TagInt8)
	if err != nil {
		return 0, err
	}
	return tv.value.(int8), nil
}

// ReadInt16 consumes a signed 16-bit integer.
func (r *Replay) ReadInt16() (int16, error) {
	tv, err := r.cur.Next(TagInt16)
	if err != nil {
		return 0, err
	}
	return tv.value.(int16), nil
}

// ReadInt32 consumes a signed 32-bit integer.
func (r *Replay) ReadInt32() (int32, error) {
	tv, err := r.cur.Next(TagInt32)
	if err != nil {
		return 0, err
	}
	return tv.value.(int32), nil
}

// ReadInt64 consumes a signed 64-bit integer.
func (r *Replay) ReadInt64() (int64, error) {
	tv, err := r.cur.Next(TagInt64)
	if err != nil {
		return 0, err
	}
	return tv.value.(int64), nil
}

// ReadUint16 consumes an unsigned 16-bit integer.
func (r *Replay) ReadUint16() (uint16, error) {
	tv, err := r.cur.Next(TagUint16)
	if err != nil {
		return 0, err
	}
	return tv.value.(uint16), nil
}

// ReadUint32 consumes an unsigned 32-bit integer.
func (r *Replay) ReadUint32() (uint32, error) {
	tv, err := r.cur.Next(TagUint32)
	if err != nil {
		return 0, err
	}
	return tv.value.(uint32), nil
}

// ReadUint64 consumes an unsigned 64-bit integer.
func (r *Replay) ReadUint64() (uint64, error) {
	tv, err := r.cur.Next(TagUint64)
	if err != nil {
		return 0, err
	}
	return tv.value.(uint64), nil
}

// ReadFloat consumes a floating-point scalar.
func (r *Replay) ReadFloat() (float64, error) {
	tv, err := r.cur.Next(TagFloat)
	if err != nil {
		return 0, err
	}
	return tv.value.(float64), nil
}

// ReadText consumes a UTF text value.
func (r *Replay) ReadText() (string, error) {
	tv, err := r.cur.Next(TagText)
	if err != nil {
		return "", err
	}
	return tv.value.(string), nil
}

// ReadChunk consumes an opaque binary chunk. The returned slice is a copy;
// the stored element is never exposed for mutation.
func (r *Replay) ReadChunk() ([]byte, error) {
	tv, err := r.cur.Next(TagChunk)
	if err != nil {
		return nil, err
	}
	src := tv.value.(Chunk)
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

// ReadBytes consumes a byte array. The returned slice is a copy.
func (r *Replay) ReadBytes() ([]byte, error) {
	tv, err := r.cur.Next(TagBytes)
	if err != nil {
		return nil, err
	}
	src := tv.value.([]byte)
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

// ReadBytesInto consumes a byte array into the caller-supplied buffer and
// returns the number of bytes copied. Fails with ErrArgumentInvalid when
// the stored value is longer than dst; the cursor does not advance in that
// case.
func (r *Replay) ReadBytesInto(dst []byte) (int, error) {
	if tv, ok := r.cur.current(); ok && tv.tag == TagBytes {
		if len(tv.value.([]byte)) > len(dst) {
			return 0, ErrArgumentInvalid
		}
	}
	tv, err := r.cur.Next(TagBytes)
	if err != nil {
		return 0, err
	}
	return copy(dst, tv.value.([]byte)), nil
}

// ReadHandle consumes an opaque handle.
func (r *Replay) ReadHandle() (Handle, error) {
	tv, err := r.cur.Next(TagHandle)
	if err != nil {
		return 0, err
	}
	return tv.value.(Handle), nil
}

// ReadHardOwnerID consumes a hard-owning object reference.
func (r *Replay) ReadHardOwnerID() (RefID, error) {
	tv, err := r.cur.Next(TagHardOwnerID)
	if err != nil {
		return 0, err
	}
	return tv.value.(RefID), nil
}

// ReadSoftOwnerID consumes a soft-owning object reference.
func (r *Replay) ReadSoftOwnerID() (RefID, error) {
	tv, err := r.cur.Next(TagSoftOwnerID)
	if err != nil {
		return 0, err
	}
	return tv.value.(RefID), nil
}

// ReadHardPointerID consumes a hard-pointing object reference.
func (r *Replay) ReadHardPointerID() (RefID, error) {
	tv, err := r.cur.Next(TagHardPointerID)
	if err != nil {
		return 0, err
	}
	return tv.value.(RefID), nil
}

// ReadSoftPointerID consumes a soft-pointing object reference.
func (r *Replay) ReadSoftPointerID() (RefID, error) {
	tv, err := r.cur.Next(TagSoftPointerID)
	if err != nil {
		return 0, err
	}
	return tv.value.(RefID), nil
}

// ReadPoint2 consumes a 2D point.
func (r *Replay) ReadPoint2() (Point2, error) {
	tv, err := r.cur.Next(TagPoint2)
	if err != nil {
		return Point2{}, err
	}
	return tv.value.(Point2), nil
}

// ReadPoint3 consumes a 3D point.
func (r *Replay) ReadPoint3() (Point3, error) {
	tv, err := r.cur.Next(TagPoint3)
	if err != nil {
		return Point3{}, err
	}
	return tv.value.(Point3), nil
}

// ReadVector2 consumes a 2D vector.
func (r *Replay) ReadVector2() (Vector2, error) {
	tv, err := r.cur.Next(TagVector2)
	if err != nil {
		return Vector2{}, err
	}
	return tv.value.(Vector2), nil
}

// ReadVector3 consumes a 3D vector.
func (r *Replay) ReadVector3() (Vector3, error) {
	tv, err := r.cur.Next(TagVector3)
	if err != nil {
		return Vector3{}, err
	}
	return tv.value.(Vector3), nil
}

// ReadScale3 consumes a non-uniform 3-axis scale.
func (r *Replay) ReadScale3() (Scale3, error) {
	tv, err := r.cur.Next(TagScale3)
	if err != nil {
		return Scale3{}, err
	}
	return tv.value.(Scale3), nil
}

// ReadAddress consumes a raw address/pointer value.
func (r *Replay) ReadAddress() (Address, error) {
	tv, err := r.cur.Next(TagAddress)
	if err != nil {
		return 0, err
	}
	return tv.value.(Address), nil
}
