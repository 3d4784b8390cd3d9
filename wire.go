// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// wire.go — the flat record the archive serializes a sealed sequence to.
// One entry per element, tag plus a per-family slot; not the interchange
// format, which this package never encodes.

package tape

import (
	"fmt"

	"github.com/AndrewDonelson/tape/internal/codec"
)

// wireVersion guards against decoding records produced by an incompatible
// layout. Bump on any wireEntry change.
const wireVersion = 1

// wireEntry is one serialized element. Exactly one value slot is
// meaningful, selected by Tag.
type wireEntry struct {
	Tag    uint8     `msgpack:"t" json:"t"`
	Bool   bool      `msgpack:"b,omitempty" json:"b,omitempty"`
	Int    int64     `msgpack:"i,omitempty" json:"i,omitempty"`
	Uint   uint64    `msgpack:"u,omitempty" json:"u,omitempty"`
	Real   float64   `msgpack:"f,omitempty" json:"f,omitempty"`
	Text   string    `msgpack:"s,omitempty" json:"s,omitempty"`
	Blob   []byte    `msgpack:"d,omitempty" json:"d,omitempty"`
	Coords []float64 `msgpack:"c,omitempty" json:"c,omitempty"`
}

// wireRecord is the archive payload before codec encoding and optional
// encryption.
type wireRecord struct {
	Version int         `msgpack:"v" json:"v"`
	Entries []wireEntry `msgpack:"e" json:"e"`
}

// encodeSequence flattens a sealed sequence into the wire record and runs
// it through c. Fails with ErrNotSealed on a building sequence.
func encodeSequence(seq *Sequence, c codec.Codec) ([]byte, error) {
	if !seq.Sealed() {
		return nil, ErrNotSealed
	}
	rec := wireRecord{Version: wireVersion, Entries: make([]wireEntry, 0, seq.Len())}
	for _, tv := range seq.items {
		e := wireEntry{Tag: uint8(tv.tag)}
		switch v := tv.value.(type) {
		case Null:
			// tag alone carries the value
		case bool:
			e.Bool = v
		case int8:
			e.Int = int64(v)
		case int16:
			e.Int = int64(v)
		case int32:
			e.Int = int64(v)
		case int64:
			e.Int = v
		case uint16:
			e.Uint = uint64(v)
		case uint32:
			e.Uint = uint64(v)
		case uint64:
			e.Uint = v
		case float64:
			e.Real = v
		case string:
			e.Text = v
		case Chunk:
			e.Blob = v
		case []byte:
			e.Blob = v
		case Handle:
			e.Uint = uint64(v)
		case RefID:
			e.Uint = uint64(v)
		case Point2:
			e.Coords = []float64{v.X, v.Y}
		case Point3:
			e.Coords = []float64{v.X, v.Y, v.Z}
		case Vector2:
			e.Coords = []float64{v.X, v.Y}
		case Vector3:
			e.Coords = []float64{v.X, v.Y, v.Z}
		case Scale3:
			e.Coords = []float64{v.X, v.Y, v.Z}
		case Address:
			e.Uint = uint64(v)
		case Unknown:
			e.Text = string(v)
		default:
			return nil, fmt.Errorf("%w: unencodable value for tag %s", ErrEncodeFailed, tv.tag)
		}
		rec.Entries = append(rec.Entries, e)
	}
	b, err := c.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return b, nil
}

// decodeSequence rebuilds a sealed sequence from an archive payload.
func decodeSequence(data []byte, c codec.Codec) (*Sequence, error) {
	var rec wireRecord
	if err := c.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if rec.Version != wireVersion {
		return nil, fmt.Errorf("%w: wire version %d", ErrDecodeFailed, rec.Version)
	}
	seq := NewSequence()
	for i, e := range rec.Entries {
		tag := TypeTag(e.Tag)
		v, err := wireValue(tag, e)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrDecodeFailed, i, err)
		}
		if err := seq.Append(tag, v); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrDecodeFailed, i, err)
		}
	}
	seq.Seal()
	return seq, nil
}

// wireValue reconstructs the typed value for one entry.
func wireValue(tag TypeTag, e wireEntry) (any, error) {
	switch tag {
	case TagNull:
		return Null{}, nil
	case TagBool:
		return e.Bool, nil
	case TagInt8:
		return int8(e.Int), nil
	case TagInt16:
		return int16(e.Int), nil
	case TagInt32:
		return int32(e.Int), nil
	case TagInt64:
		return e.Int, nil
	case TagUint16:
		return uint16(e.Uint), nil
	case TagUint32:
		return uint32(e.Uint), nil
	case TagUint64:
		return e.Uint, nil
	case TagFloat:
		return e.Real, nil
	case TagText:
		return e.Text, nil
	case TagChunk:
		return Chunk(blobOrEmpty(e.Blob)), nil
	case TagBytes:
		return blobOrEmpty(e.Blob), nil
	case TagHandle:
		return Handle(e.Uint), nil
	case TagHardOwnerID, TagSoftOwnerID, TagHardPointerID, TagSoftPointerID:
		return RefID(e.Uint), nil
	case TagPoint2:
		if len(e.Coords) != 2 {
			return nil, fmt.Errorf("point2 wants 2 coords, got %d", len(e.Coords))
		}
		return Point2{X: e.Coords[0], Y: e.Coords[1]}, nil
	case TagPoint3:
		if len(e.Coords) != 3 {
			return nil, fmt.Errorf("point3 wants 3 coords, got %d", len(e.Coords))
		}
		return Point3{X: e.Coords[0], Y: e.Coords[1], Z: e.Coords[2]}, nil
	case TagVector2:
		if len(e.Coords) != 2 {
			return nil, fmt.Errorf("vector2 wants 2 coords, got %d", len(e.Coords))
		}
		return Vector2{X: e.Coords[0], Y: e.Coords[1]}, nil
	case TagVector3:
		if len(e.Coords) != 3 {
			return nil, fmt.Errorf("vector3 wants 3 coords, got %d", len(e.Coords))
		}
		return Vector3{X: e.Coords[0], Y: e.Coords[1], Z: e.Coords[2]}, nil
	case TagScale3:
		if len(e.Coords) != 3 {
			return nil, fmt.Errorf("scale3 wants 3 coords, got %d", len(e.Coords))
		}
		return Scale3{X: e.Coords[0], Y: e.Coords[1], Z: e.Coords[2]}, nil
	case TagAddress:
		return Address(e.Uint), nil
	case TagUnknown:
		return Unknown(e.Text), nil
	default:
		return nil, fmt.Errorf("unrecognized tag %d", e.Tag)
	}
}

// blobOrEmpty keeps byte-array round trips exact: omitempty drops an empty
// blob on encode, and a captured empty (non-nil) slice must not come back
// nil.
func blobOrEmpty(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
