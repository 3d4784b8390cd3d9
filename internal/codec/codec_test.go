package codec_test

import (
	"testing"

	"github.com/AndrewDonelson/tape/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Version int      `json:"v" msgpack:"v"`
	Blobs   [][]byte `json:"b" msgpack:"b"`
}

func TestJSONCodec(t *testing.T) {
	c := codec.JSON{}
	orig := record{Version: 1, Blobs: [][]byte{[]byte("abc")}}
	b, err := c.Marshal(orig)
	require.NoError(t, err)

	var got record
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, orig, got)
	assert.Equal(t, "json", c.Name())
}

func TestMsgPackCodec(t *testing.T) {
	c := codec.MsgPack{}
	orig := record{Version: 2, Blobs: [][]byte{{0x00, 0xFF}}}
	b, err := c.Marshal(orig)
	require.NoError(t, err)

	var got record
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, orig, got)
	assert.Equal(t, "msgpack", c.Name())
}

func TestDefaultIsMsgPack(t *testing.T) {
	assert.Equal(t, "msgpack", codec.Default.Name())
}
