package pgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMPIEncodeStripsLeadingZeros(t *testing.T) {
	out := mpiEncode([]byte{0x00, 0x00, 0x01})
	require.Equal(t, []byte{0x00, 0x01, 0x01}, out)
}

func TestMPIEncodeBitLength(t *testing.T) {
	out := mpiEncode([]byte{0xFF})
	require.Equal(t, []byte{0x00, 0x08, 0xFF}, out)

	out = mpiEncode([]byte{0x01})
	require.Equal(t, []byte{0x00, 0x01, 0x01}, out)
}

func TestPacketHeaderShortForm(t *testing.T) {
	h := packetHeader(6, 10)
	require.Equal(t, []byte{0xC6, 0x0A}, h)
}

func TestPacketHeaderMediumForm(t *testing.T) {
	h := packetHeader(6, 300)
	require.Len(t, h, 3)
	require.Equal(t, byte(0xC6), h[0])
}

func TestFramePacketRoundsTripsLength(t *testing.T) {
	body := make([]byte, 50)
	packet := framePacket(13, body)
	require.Equal(t, byte(0xCD), packet[0])
	require.Equal(t, byte(50), packet[1])
	require.Len(t, packet, 52)
}

func TestFingerprintV4Deterministic(t *testing.T) {
	body := []byte{0x04, 0, 0, 0, 1, 22}
	fp1 := fingerprintV4(body)
	fp2 := fingerprintV4(body)
	require.Equal(t, fp1, fp2)
}

func TestKeyIDIsFingerprintSuffix(t *testing.T) {
	body := []byte{0x04, 0, 0, 0, 1, 22}
	fp := fingerprintV4(body)
	id := keyID(fp)
	require.Equal(t, []byte(fp[12:20]), id)
}

func TestChecksum16(t *testing.T) {
	require.EqualValues(t, 0, checksum16(nil))
	require.EqualValues(t, 3, checksum16([]byte{1, 2}))
	require.EqualValues(t, 255, checksum16([]byte{0xFF}))
}
