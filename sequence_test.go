package tape_test

import (
	"testing"

	"github.com/AndrewDonelson/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSequence(t *testing.T, appends ...func(*tape.Capture) error) *tape.Sequence {
	t.Helper()
	seq := tape.NewSequence()
	w, err := tape.NewCapture(seq)
	require.NoError(t, err)
	for _, fn := range appends {
		require.NoError(t, fn(w))
	}
	seq.Seal()
	return seq
}

func TestSequence_AppendAndSeal(t *testing.T) {
	seq := tape.NewSequence()
	require.False(t, seq.Sealed())
	require.NoError(t, seq.Append(tape.TagInt32, int32(1)))
	require.NoError(t, seq.Append(tape.TagText, "two"))
	require.Equal(t, 2, seq.Len())

	seq.Seal()
	assert.True(t, seq.Sealed())

	// sealed: no mutation, length unchanged by the attempt
	err := seq.Append(tape.TagInt32, int32(3))
	assert.ErrorIs(t, err, tape.ErrReadOnly)
	assert.Equal(t, 2, seq.Len())

	// idempotent
	seq.Seal()
	assert.True(t, seq.Sealed())
}

func TestSequence_AppendNil(t *testing.T) {
	seq := tape.NewSequence()
	err := seq.Append(tape.TagText, nil)
	assert.ErrorIs(t, err, tape.ErrArgumentInvalid)
	assert.Equal(t, 0, seq.Len())
}

func TestSequence_At(t *testing.T) {
	seq := buildSequence(t,
		func(w *tape.Capture) error { return w.WriteBool(true) },
		func(w *tape.Capture) error { return w.WriteFloat(2.5) },
	)

	tv, err := seq.At(1)
	require.NoError(t, err)
	assert.Equal(t, tape.TagFloat, tv.Tag())
	assert.Equal(t, 2.5, tv.Value())

	_, err = seq.At(-1)
	assert.ErrorIs(t, err, tape.ErrArgumentInvalid)
	_, err = seq.At(2)
	assert.ErrorIs(t, err, tape.ErrArgumentInvalid)
}

func TestSequence_ValuesSnapshot(t *testing.T) {
	seq := buildSequence(t,
		func(w *tape.Capture) error { return w.WriteInt32(1) },
		func(w *tape.Capture) error { return w.WriteInt32(2) },
	)
	vals := seq.Values()
	require.Len(t, vals, 2)

	// the snapshot is a copy: reordering it does not touch the sequence
	vals[0], vals[1] = vals[1], vals[0]
	tv, err := seq.At(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tv.Value())
}

func TestSequence_IncludedTags(t *testing.T) {
	seq := buildSequence(t,
		func(w *tape.Capture) error { return w.WriteInt32(1) },
		func(w *tape.Capture) error { return w.WriteText("a") },
		func(w *tape.Capture) error { return w.WriteInt32(2) },
		func(w *tape.Capture) error { return w.WriteBool(true) },
		func(w *tape.Capture) error { return w.WriteText("b") },
	)
	tags := seq.IncludedTags()
	assert.Equal(t, []tape.TypeTag{tape.TagInt32, tape.TagText, tape.TagBool}, tags)
}

func TestSequence_IndexLookups(t *testing.T) {
	seq := buildSequence(t,
		func(w *tape.Capture) error { return w.WriteText("a") },
		func(w *tape.Capture) error { return w.WriteInt32(7) },
		func(w *tape.Capture) error { return w.WriteInt32(9) },
	)

	assert.Equal(t, 1, seq.IndexOfTag(tape.TagInt32))
	assert.Equal(t, -1, seq.IndexOfTag(tape.TagHandle))

	want, _ := tape.NewTaggedValue(tape.TagInt32, int32(9))
	assert.Equal(t, 2, seq.IndexOf(want))

	missing, _ := tape.NewTaggedValue(tape.TagInt32, int32(8))
	assert.Equal(t, -1, seq.IndexOf(missing))
}

func TestSequence_NewCursorRequiresSeal(t *testing.T) {
	seq := tape.NewSequence()
	_, err := seq.NewCursor()
	assert.ErrorIs(t, err, tape.ErrNotSealed)

	seq.Seal()
	cur, err := seq.NewCursor()
	require.NoError(t, err)
	assert.Equal(t, 0, cur.Position())
}

func TestSequence_IndependentCursors(t *testing.T) {
	seq := buildSequence(t,
		func(w *tape.Capture) error { return w.WriteInt32(1) },
		func(w *tape.Capture) error { return w.WriteInt32(2) },
	)

	c1, err := seq.NewCursor()
	require.NoError(t, err)
	c2, err := seq.NewCursor()
	require.NoError(t, err)

	_, err = c1.Next(tape.TagInt32)
	require.NoError(t, err)
	assert.Equal(t, 1, c1.Position())
	assert.Equal(t, 0, c2.Position(), "cursors must not share read state")
}
