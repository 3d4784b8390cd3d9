// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// value.go — TaggedValue, the atomic unit of the log: an immutable
// (tag, value) pair whose runtime value type always matches the tag.

package tape

import "bytes"

// TaggedValue is one captured value together with its type tag. Instances
// are immutable once constructed; equality is structural (tag and value).
type TaggedValue struct {
	tag   TypeTag
	value any
}

// NewTaggedValue constructs a TaggedValue after checking the invariant that
// value's runtime type matches tag's representation. Byte-backed values
// (Chunk, []byte) are not copied here; the adapters own defensive copying.
func NewTaggedValue(tag TypeTag, value any) (TaggedValue, error) {
	if value == nil {
		return TaggedValue{}, ErrArgumentInvalid
	}
	if !valueMatchesTag(tag, value) {
		return TaggedValue{}, ErrArgumentInvalid
	}
	return TaggedValue{tag: tag, value: value}, nil
}

// Tag returns the value's type tag.
func (tv TaggedValue) Tag() TypeTag { return tv.tag }

// Value returns the stored value. The dynamic type is determined by Tag.
func (tv TaggedValue) Value() any { return tv.value }

// Equal reports structural equality: same tag and same value. Byte-backed
// representations compare by content.
func (tv TaggedValue) Equal(other TaggedValue) bool {
	if tv.tag != other.tag {
		return false
	}
	switch a := tv.value.(type) {
	case Chunk:
		b, ok := other.value.(Chunk)
		return ok && bytes.Equal(a, b)
	case []byte:
		b, ok := other.value.([]byte)
		return ok && bytes.Equal(a, b)
	default:
		return tv.value == other.value
	}
}

// repClass is the representation class of a tag: tags in the same class
// store the same runtime type, so the cursor's type check treats them as
// interchangeable (the four RefID tags being the deliberate example).
type repClass uint8

const (
	repNull repClass = iota
	repBool
	repInt8
	repInt16
	repInt32
	repInt64
	repUint16
	repUint32
	repUint64
	repFloat
	repText
	repChunk
	repBytes
	repHandle
	repRefID
	repPoint2
	repPoint3
	repVector2
	repVector3
	repScale3
	repAddress
	repUnknown
)

var tagClasses = map[TypeTag]repClass{
	TagNull:          repNull,
	TagBool:          repBool,
	TagInt8:          repInt8,
	TagInt16:         repInt16,
	TagInt32:         repInt32,
	TagInt64:         repInt64,
	TagUint16:        repUint16,
	TagUint32:        repUint32,
	TagUint64:        repUint64,
	TagFloat:         repFloat,
	TagText:          repText,
	TagChunk:         repChunk,
	TagBytes:         repBytes,
	TagHandle:        repHandle,
	TagHardOwnerID:   repRefID,
	TagSoftOwnerID:   repRefID,
	TagHardPointerID: repRefID,
	TagSoftPointerID: repRefID,
	TagPoint2:        repPoint2,
	TagPoint3:        repPoint3,
	TagVector2:       repVector2,
	TagVector3:       repVector3,
	TagScale3:        repScale3,
	TagAddress:       repAddress,
	TagUnknown:       repUnknown,
}

// sameRepresentation reports whether two tags store the same runtime type.
// The read protocol's type check is representation-based, mirroring the
// duck-typed protocol this package replays.
func sameRepresentation(a, b TypeTag) bool {
	ca, ok1 := tagClasses[a]
	cb, ok2 := tagClasses[b]
	return ok1 && ok2 && ca == cb
}

// valueMatchesTag reports whether v's runtime type is the representation
// associated with tag.
func valueMatchesTag(tag TypeTag, v any) bool {
	switch tagClasses[tag] {
	case repNull:
		_, ok := v.(Null)
		return ok && tag == TagNull
	case repBool:
		_, ok := v.(bool)
		return ok
	case repInt8:
		_, ok := v.(int8)
		return ok
	case repInt16:
		_, ok := v.(int16)
		return ok
	case repInt32:
		_, ok := v.(int32)
		return ok
	case repInt64:
		_, ok := v.(int64)
		return ok
	case repUint16:
		_, ok := v.(uint16)
		return ok
	case repUint32:
		_, ok := v.(uint32)
		return ok
	case repUint64:
		_, ok := v.(uint64)
		return ok
	case repFloat:
		_, ok := v.(float64)
		return ok
	case repText:
		_, ok := v.(string)
		return ok
	case repChunk:
		_, ok := v.(Chunk)
		return ok
	case repBytes:
		_, ok := v.([]byte)
		return ok
	case repHandle:
		_, ok := v.(Handle)
		return ok
	case repRefID:
		_, ok := v.(RefID)
		return ok
	case repPoint2:
		_, ok := v.(Point2)
		return ok
	case repPoint3:
		_, ok := v.(Point3)
		return ok
	case repVector2:
		_, ok := v.(Vector2)
		return ok
	case repVector3:
		_, ok := v.(Vector3)
		return ok
	case repScale3:
		_, ok := v.(Scale3)
		return ok
	case repAddress:
		_, ok := v.(Address)
		return ok
	case repUnknown:
		_, ok := v.(Unknown)
		return ok && tag == TagUnknown
	default:
		return false
	}
}
