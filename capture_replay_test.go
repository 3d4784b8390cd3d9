package tape_test

import (
	"testing"

	"github.com/AndrewDonelson/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEverything drives one write call per protocol entry point.
func writeEverything(t *testing.T, w *tape.Capture) {
	t.Helper()
	require.NoError(t, w.WriteNull())
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteInt8(-8))
	require.NoError(t, w.WriteInt16(-16))
	require.NoError(t, w.WriteInt32(-32))
	require.NoError(t, w.WriteInt64(-64))
	require.NoError(t, w.WriteUint16(16))
	require.NoError(t, w.WriteUint32(32))
	require.NoError(t, w.WriteUint64(64))
	require.NoError(t, w.WriteFloat(3.25))
	require.NoError(t, w.WriteText("héllo"))
	require.NoError(t, w.WriteChunk([]byte{0xDE, 0xAD}))
	require.NoError(t, w.WriteBytes([]byte{1, 2, 3}))
	require.NoError(t, w.WriteHandle(tape.Handle(0xBEEF)))
	require.NoError(t, w.WriteHardOwnerID(tape.RefID(1)))
	require.NoError(t, w.WriteSoftOwnerID(tape.RefID(2)))
	require.NoError(t, w.WriteHardPointerID(tape.RefID(3)))
	require.NoError(t, w.WriteSoftPointerID(tape.RefID(4)))
	require.NoError(t, w.WritePoint2(tape.Point2{X: 1, Y: 2}))
	require.NoError(t, w.WritePoint3(tape.Point3{X: 1, Y: 2, Z: 3}))
	require.NoError(t, w.WriteVector2(tape.Vector2{X: 4, Y: 5}))
	require.NoError(t, w.WriteVector3(tape.Vector3{X: 4, Y: 5, Z: 6}))
	require.NoError(t, w.WriteScale3(tape.Scale3{X: 1, Y: 2, Z: 0.5}))
	require.NoError(t, w.WriteAddress(tape.Address(0xCAFE)))
}

// readEverything mirrors writeEverything and asserts every value survives
// in order.
func readEverything(t *testing.T, r *tape.Replay) {
	t.Helper()
	require.NoError(t, r.ReadNull())

	b, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-8), i8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-16), i16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-32), i32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-64), i64)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(16), u16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(32), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(64), u64)

	f, err := r.ReadFloat()
	require.NoError(t, err)
	assert.Equal(t, 3.25, f)

	s, err := r.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	chunk, err := r.ReadChunk()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, chunk)

	bytes, err := r.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, bytes)

	h, err := r.ReadHandle()
	require.NoError(t, err)
	assert.Equal(t, tape.Handle(0xBEEF), h)

	ho, err := r.ReadHardOwnerID()
	require.NoError(t, err)
	assert.Equal(t, tape.RefID(1), ho)

	so, err := r.ReadSoftOwnerID()
	require.NoError(t, err)
	assert.Equal(t, tape.RefID(2), so)

	hp, err := r.ReadHardPointerID()
	require.NoError(t, err)
	assert.Equal(t, tape.RefID(3), hp)

	sp, err := r.ReadSoftPointerID()
	require.NoError(t, err)
	assert.Equal(t, tape.RefID(4), sp)

	p2, err := r.ReadPoint2()
	require.NoError(t, err)
	assert.Equal(t, tape.Point2{X: 1, Y: 2}, p2)

	p3, err := r.ReadPoint3()
	require.NoError(t, err)
	assert.Equal(t, tape.Point3{X: 1, Y: 2, Z: 3}, p3)

	v2, err := r.ReadVector2()
	require.NoError(t, err)
	assert.Equal(t, tape.Vector2{X: 4, Y: 5}, v2)

	v3, err := r.ReadVector3()
	require.NoError(t, err)
	assert.Equal(t, tape.Vector3{X: 4, Y: 5, Z: 6}, v3)

	sc, err := r.ReadScale3()
	require.NoError(t, err)
	assert.Equal(t, tape.Scale3{X: 1, Y: 2, Z: 0.5}, sc)

	a, err := r.ReadAddress()
	require.NoError(t, err)
	assert.Equal(t, tape.Address(0xCAFE), a)
}

func TestRoundTrip_AllEntryPoints(t *testing.T) {
	seq := tape.NewSequence()
	w, err := tape.NewCapture(seq)
	require.NoError(t, err)
	writeEverything(t, w)
	seq.Seal()

	cur, err := seq.NewCursor()
	require.NoError(t, err)
	r, err := tape.NewReplay(cur)
	require.NoError(t, err)
	readEverything(t, r)

	// the stream is exhausted: one more read fails with end-of-data
	_, err = r.ReadBool()
	assert.ErrorIs(t, err, tape.ErrEndOfData)
}

func TestCapture_WritesAfterSeal(t *testing.T) {
	seq := tape.NewSequence()
	w, err := tape.NewCapture(seq)
	require.NoError(t, err)
	require.NoError(t, w.WriteInt32(1))
	seq.Seal()

	assert.ErrorIs(t, w.WriteInt32(2), tape.ErrReadOnly)
	assert.ErrorIs(t, w.WriteNull(), tape.ErrReadOnly)
	assert.ErrorIs(t, w.WriteBytes([]byte{1}), tape.ErrReadOnly)
	assert.Equal(t, 1, seq.Len())
}

func TestCapture_NilBuffers(t *testing.T) {
	seq := tape.NewSequence()
	w, err := tape.NewCapture(seq)
	require.NoError(t, err)

	assert.ErrorIs(t, w.WriteChunk(nil), tape.ErrArgumentInvalid)
	assert.ErrorIs(t, w.WriteBytes(nil), tape.ErrArgumentInvalid)
	assert.Equal(t, 0, seq.Len())

	// empty is not nil
	assert.NoError(t, w.WriteBytes([]byte{}))
}

func TestCapture_DefensiveCopy(t *testing.T) {
	seq := tape.NewSequence()
	w, err := tape.NewCapture(seq)
	require.NoError(t, err)

	buf := []byte{1, 2, 3}
	require.NoError(t, w.WriteBytes(buf))
	buf[0] = 99 // caller mutates its buffer after the write
	seq.Seal()

	cur, _ := seq.NewCursor()
	r, _ := tape.NewReplay(cur)
	got, err := r.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got, "captured value must not alias the caller's buffer")
}

func TestReplay_MismatchThenCorrectRead(t *testing.T) {
	seq := tape.NewSequence()
	require.NoError(t, seq.Append(tape.TagText, "keep"))
	seq.Seal()

	cur, _ := seq.NewCursor()
	r, _ := tape.NewReplay(cur)

	_, err := r.ReadInt32()
	require.ErrorIs(t, err, tape.ErrTypeMismatch)

	cur.ResetFault()
	s, err := r.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "keep", s)
}

func TestReplay_ReadBytesInto(t *testing.T) {
	seq := tape.NewSequence()
	require.NoError(t, seq.Append(tape.TagBytes, []byte{7, 8, 9}))
	require.NoError(t, seq.Append(tape.TagBytes, []byte{1, 2, 3, 4}))
	seq.Seal()

	cur, _ := seq.NewCursor()
	r, _ := tape.NewReplay(cur)

	dst := make([]byte, 8)
	n, err := r.ReadBytesInto(dst)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{7, 8, 9}, dst[:n])

	// destination too small: fails without consuming the element
	small := make([]byte, 2)
	_, err = r.ReadBytesInto(small)
	require.ErrorIs(t, err, tape.ErrArgumentInvalid)
	assert.Equal(t, 1, cur.Position())

	n, err = r.ReadBytesInto(dst)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNewCapture_NilSequence(t *testing.T) {
	_, err := tape.NewCapture(nil)
	assert.ErrorIs(t, err, tape.ErrArgumentInvalid)
}

func TestNewReplay_NilCursor(t *testing.T) {
	_, err := tape.NewReplay(nil)
	assert.ErrorIs(t, err, tape.ErrArgumentInvalid)
}

// ── Benchmarks ───────────────────────────────────────────────────────────────

func BenchmarkCaptureReplay(b *testing.B) {
	for i := 0; i < b.N; i++ {
		seq := tape.NewSequence()
		w, _ := tape.NewCapture(seq)
		_ = w.WriteInt32(1)
		_ = w.WriteFloat(2.5)
		_ = w.WriteText("bench")
		seq.Seal()

		cur, _ := seq.NewCursor()
		r, _ := tape.NewReplay(cur)
		_, _ = r.ReadInt32()
		_, _ = r.ReadFloat()
		_, _ = r.ReadText()
	}
}
