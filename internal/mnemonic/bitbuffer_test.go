package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitBufferPushReadRoundTrip(t *testing.T) {
	buf := NewBitBuffer()
	require.NoError(t, buf.Push(0b101, 3))
	require.NoError(t, buf.Push(0x1FFF, 13))
	require.NoError(t, buf.Push(0, 8))

	bytes, err := buf.ToBytes(0)
	require.NoError(t, err)

	read := NewBitBufferFromBytes(bytes)
	v1, err := read.Read(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b101), v1)

	v2, err := read.Read(13)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1FFF), v2)

	v3, err := read.Read(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v3)
}

func TestBitBufferOverflow(t *testing.T) {
	buf := NewBitBuffer()
	err := buf.Push(8, 3) // 8 doesn't fit in 3 bits
	require.ErrorIs(t, err, ErrBitOverflow)
}

func TestBitBufferUnderflow(t *testing.T) {
	buf := NewBitBuffer()
	require.NoError(t, buf.Push(1, 1))
	_, err := buf.Read(2)
	require.ErrorIs(t, err, ErrBitUnderflow)
}

func TestBitBufferInvalidPad(t *testing.T) {
	buf := NewBitBuffer()
	_, err := buf.ToBytes(2)
	require.ErrorIs(t, err, ErrInvalidPadBit)
}

func TestBitBufferMSBOrdering(t *testing.T) {
	buf := NewBitBuffer()
	require.NoError(t, buf.Push(0xFF, 8))
	require.NoError(t, buf.Push(0x00, 8))
	bytes, err := buf.ToBytes(0)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0x00}, bytes)
}
