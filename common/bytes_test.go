package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02}, FromHex("0x0102"))
	assert.Equal(t, []byte{0x01, 0x02}, FromHex("0102"))
	// odd-length input is left padded
	assert.Equal(t, []byte{0x01}, FromHex("0x1"))
	assert.Empty(t, FromHex("0xZZ"))
}

func TestHex2Bytes(t *testing.T) {
	b, err := Hex2Bytes("ff00")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0x00}, b)

	_, err = Hex2Bytes("xyz")
	assert.Error(t, err)

	assert.Equal(t, "ff00", Bytes2Hex(b))
}

func TestCopyBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	cp := CopyBytes(src)
	assert.Equal(t, src, cp)
	cp[0] = 9
	assert.Equal(t, byte(1), src[0])

	assert.Nil(t, CopyBytes(nil))
}

func TestIsSameBytes(t *testing.T) {
	assert.True(t, IsSameBytes([]byte{1, 2}, []byte{1, 2}))
	assert.True(t, IsSameBytes(nil, nil))
	assert.False(t, IsSameBytes(nil, []byte{}))
	assert.False(t, IsSameBytes([]byte{1}, []byte{2}))
	assert.False(t, IsSameBytes([]byte{1}, []byte{1, 2}))
}
