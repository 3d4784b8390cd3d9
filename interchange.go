// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// interchange.go — the static translation table between the internal
// TypeTag vocabulary and the external, independently-versioned interchange
// tag vocabulary. The mapping is lossy and not a bijection; every collapse
// is documented here and preserved deliberately, not corrected.

package tape

import "fmt"

// InterchangeTag is the external tag vocabulary consumed by the legacy
// interchange format. Its numeric codes are fixed by that format's own
// versioning, not by this package.
type InterchangeTag int16

const (
	InterchangeNil         InterchangeTag = 0
	InterchangeText        InterchangeTag = 1
	InterchangeHandle      InterchangeTag = 5
	InterchangeCoord       InterchangeTag = 10
	InterchangeReal        InterchangeTag = 40
	InterchangeInt16       InterchangeTag = 70
	InterchangeInt32       InterchangeTag = 90
	InterchangeInt64       InterchangeTag = 160
	InterchangeInt8        InterchangeTag = 280
	InterchangeBool        InterchangeTag = 290
	InterchangeBinary      InterchangeTag = 310
	InterchangeSoftPointer InterchangeTag = 330
	InterchangeHardPointer InterchangeTag = 340
	InterchangeSoftOwner   InterchangeTag = 350
	InterchangeHardOwner   InterchangeTag = 360

	// InterchangeAddress is the implementation-defined numeric code used
	// when an address value must be represented at all. Raw pointers have
	// no semantic counterpart in the interchange vocabulary; this code is
	// flagged, not a general-purpose mapping.
	InterchangeAddress InterchangeTag = 0x0FA0
)

// toInterchange is the forward table, built once at process start and
// never mutated. Collapses, all deliberate:
//
//   - the four unsigned widths collapse onto the signed interchange codes;
//   - hard-pointer and soft-pointer both become the soft-pointer code, the
//     directional distinction being unrepresentable externally;
//   - 2D/3D points, 2D/3D vectors, and the 3-axis scale all become the
//     coordinate code, so a 2D value loses its dimensionality marker;
//   - chunk and byte array both become the binary code.
//
// TagUnknown is absent: it has no interchange counterpart and translating
// it fails with ErrTranslationUnsupported, which is correct behavior.
var toInterchange = map[TypeTag]InterchangeTag{
	TagNull:          InterchangeNil,
	TagBool:          InterchangeBool,
	TagInt8:          InterchangeInt8,
	TagInt16:         InterchangeInt16,
	TagInt32:         InterchangeInt32,
	TagInt64:         InterchangeInt64,
	TagUint16:        InterchangeInt16,
	TagUint32:        InterchangeInt32,
	TagUint64:        InterchangeInt64,
	TagFloat:         InterchangeReal,
	TagText:          InterchangeText,
	TagChunk:         InterchangeBinary,
	TagBytes:         InterchangeBinary,
	TagHandle:        InterchangeHandle,
	TagHardOwnerID:   InterchangeHardOwner,
	TagSoftOwnerID:   InterchangeSoftOwner,
	TagHardPointerID: InterchangeSoftPointer,
	TagSoftPointerID: InterchangeSoftPointer,
	TagPoint2:        InterchangeCoord,
	TagPoint3:        InterchangeCoord,
	TagVector2:       InterchangeCoord,
	TagVector3:       InterchangeCoord,
	TagScale3:        InterchangeCoord,
	TagAddress:       InterchangeAddress,
}

// toInternal is the reverse table: a partial, lossy inverse used only when
// reconstructing tags from externally-authored interchange data. Collapsed
// tags cannot be disambiguated from the interchange code alone; the
// defaults chosen here are: soft-pointer for the pointer code, 3D point
// for the coordinate code, signed for the integer codes, byte array for
// the binary code. Callers needing the lost distinction must carry it out
// of band.
var toInternal = map[InterchangeTag]TypeTag{
	InterchangeNil:         TagNull,
	InterchangeText:        TagText,
	InterchangeHandle:      TagHandle,
	InterchangeCoord:       TagPoint3,
	InterchangeReal:        TagFloat,
	InterchangeInt16:       TagInt16,
	InterchangeInt32:       TagInt32,
	InterchangeInt64:       TagInt64,
	InterchangeInt8:        TagInt8,
	InterchangeBool:        TagBool,
	InterchangeBinary:      TagBytes,
	InterchangeSoftPointer: TagSoftPointerID,
	InterchangeHardPointer: TagHardPointerID,
	InterchangeSoftOwner:   TagSoftOwnerID,
	InterchangeHardOwner:   TagHardOwnerID,
	InterchangeAddress:     TagAddress,
}

// ToInterchange translates an internal tag into the interchange
// vocabulary. Fails with ErrTranslationUnsupported for tags that have no
// interchange counterpart.
func ToInterchange(tag TypeTag) (InterchangeTag, error) {
	ic, ok := toInterchange[tag]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrTranslationUnsupported, tag)
	}
	return ic, nil
}

// ToInternal reconstructs an internal tag from an interchange code. The
// result is a documented default wherever the forward mapping collapsed;
// recovering the original distinction from the code alone is impossible
// and is not attempted.
func ToInternal(ic InterchangeTag) (TypeTag, error) {
	tag, ok := toInternal[ic]
	if !ok {
		return 0, fmt.Errorf("%w: interchange tag %d", ErrTranslationUnsupported, ic)
	}
	return tag, nil
}

// InterchangeValue is one translated element: the interchange tag plus the
// re-encoded value.
type InterchangeValue struct {
	Tag   InterchangeTag
	Value any
}

// Translate re-encodes a tagged value for interchange consumers. Value
// re-encodings, per the interchange format's expectations:
//
//   - booleans become a narrow integer 0/1, not a native boolean;
//   - handles are textualized (uppercase hex), never left structured;
//   - points, vectors, and scales flatten to a []float64 coordinate list;
//   - everything else passes through unchanged.
func Translate(tv TaggedValue) (InterchangeValue, error) {
	ic, err := ToInterchange(tv.tag)
	if err != nil {
		return InterchangeValue{}, err
	}
	switch v := tv.value.(type) {
	case bool:
		var n int8
		if v {
			n = 1
		}
		return InterchangeValue{Tag: ic, Value: n}, nil
	case Handle:
		return InterchangeValue{Tag: ic, Value: v.String()}, nil
	case Point2:
		return InterchangeValue{Tag: ic, Value: []float64{v.X, v.Y}}, nil
	case Point3:
		return InterchangeValue{Tag: ic, Value: []float64{v.X, v.Y, v.Z}}, nil
	case Vector2:
		return InterchangeValue{Tag: ic, Value: []float64{v.X, v.Y}}, nil
	case Vector3:
		return InterchangeValue{Tag: ic, Value: []float64{v.X, v.Y, v.Z}}, nil
	case Scale3:
		return InterchangeValue{Tag: ic, Value: []float64{v.X, v.Y, v.Z}}, nil
	default:
		return InterchangeValue{Tag: ic, Value: tv.value}, nil
	}
}
