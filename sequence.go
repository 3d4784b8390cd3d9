// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// sequence.go — the append-only-then-sealed container of TaggedValues,
// its enumeration/export surface, and cursor minting for replay.

package tape

// Sequence is an ordered log of TaggedValues. It is created empty and
// mutable, populated through a Capture adapter during exactly one producer
// write-pass, sealed, and thereafter consumed read-only.
//
// A Sequence is not safe for concurrent use while building: exactly one
// writer until Seal. Once sealed the backing is immutable and may be shared
// by any number of readers, each holding its own Cursor.
type Sequence struct {
	items  []TaggedValue
	sealed bool
	cur    Cursor // default cursor, for single-reader use
}

// NewSequence returns an empty sequence in the building state.
func NewSequence() *Sequence {
	s := &Sequence{}
	s.cur.seq = s
	return s
}

// Append adds a tagged value to the end of the sequence. It fails with
// ErrReadOnly once the sequence is sealed and with ErrArgumentInvalid when
// value is nil or does not match tag's representation. No business
// validation of the value happens here.
func (s *Sequence) Append(tag TypeTag, value any) error {
	if s.sealed {
		return ErrReadOnly
	}
	tv, err := NewTaggedValue(tag, value)
	if err != nil {
		return err
	}
	s.items = append(s.items, tv)
	return nil
}

// Seal freezes the sequence. Idempotent; there is no unseal.
func (s *Sequence) Seal() {
	s.sealed = true
}

// Sealed reports whether the sequence has been frozen.
func (s *Sequence) Sealed() bool { return s.sealed }

// Len returns the number of captured values.
func (s *Sequence) Len() int { return len(s.items) }

// At returns the element at index i. This is the indexed export surface,
// independent of the sequential cursor.
func (s *Sequence) At(i int) (TaggedValue, error) {
	if i < 0 || i >= len(s.items) {
		return TaggedValue{}, ErrArgumentInvalid
	}
	return s.items[i], nil
}

// Values returns a snapshot copy of all captured values in order.
func (s *Sequence) Values() []TaggedValue {
	out := make([]TaggedValue, len(s.items))
	copy(out, s.items)
	return out
}

// IncludedTags returns the distinct set of tags present, in first-seen
// order.
func (s *Sequence) IncludedTags() []TypeTag {
	seen := make(map[TypeTag]bool, len(s.items))
	var out []TypeTag
	for _, tv := range s.items {
		if !seen[tv.tag] {
			seen[tv.tag] = true
			out = append(out, tv.tag)
		}
	}
	return out
}

// IndexOfTag returns the first index holding tag, or -1.
func (s *Sequence) IndexOfTag(tag TypeTag) int {
	for i, tv := range s.items {
		if tv.tag == tag {
			return i
		}
	}
	return -1
}

// IndexOf returns the first index whose element equals v structurally,
// or -1.
func (s *Sequence) IndexOf(v TaggedValue) int {
	for i, tv := range s.items {
		if tv.Equal(v) {
			return i
		}
	}
	return -1
}

// InterchangeTags translates every element's tag into the external
// interchange vocabulary, in order. The translation is lossy; see
// interchange.go. Fails with ErrTranslationUnsupported if any element's tag
// has no interchange counterpart.
func (s *Sequence) InterchangeTags() ([]InterchangeTag, error) {
	out := make([]InterchangeTag, len(s.items))
	for i, tv := range s.items {
		ic, err := ToInterchange(tv.tag)
		if err != nil {
			return nil, err
		}
		out[i] = ic
	}
	return out, nil
}

// Translate produces the full interchange representation: tag and
// re-encoded value per element. See Translate in interchange.go for the
// value re-encodings.
func (s *Sequence) Translate() ([]InterchangeValue, error) {
	out := make([]InterchangeValue, len(s.items))
	for i, tv := range s.items {
		iv, err := Translate(tv)
		if err != nil {
			return nil, err
		}
		out[i] = iv
	}
	return out, nil
}

// Cursor returns the sequence's default cursor. Convenient for the common
// single-reader case; independent replays should use NewCursor instead.
func (s *Sequence) Cursor() *Cursor { return &s.cur }

// NewCursor mints an independent cursor over the sealed backing, so
// multiple replays of the same sequence do not share read state. Fails
// with ErrNotSealed while the sequence is still building.
func (s *Sequence) NewCursor() (*Cursor, error) {
	if !s.sealed {
		return nil, ErrNotSealed
	}
	return &Cursor{seq: s}, nil
}
