package binlog

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeFormatDescription builds an FDE body: binlog version, NUL padded
// 50 byte server version, create timestamp, common header length and a
// header length table of the given size.
func encodeFormatDescription(version uint16, serverVersion []byte, createTS uint32, headerLen byte, tableLen int) []byte {
	body := make([]byte, 2+serverVersionLength+4+1+tableLen)
	binary.LittleEndian.PutUint16(body[0:], version)
	copy(body[2:2+serverVersionLength], serverVersion)
	binary.LittleEndian.PutUint32(body[2+serverVersionLength:], createTS)
	body[2+serverVersionLength+4] = headerLen
	return body
}

func TestFormatDescriptionRoundTrip(t *testing.T) {
	body := encodeFormatDescription(4, []byte("5.7.26-log"), 1000, 19, 39)

	data, err := ParseEventData(FORMAT_DESCRIPTION_EVENT, body)
	require.NoError(t, err)
	require.NotNil(t, data)

	fde, ok := data.(*FormatDescriptionEvent)
	require.True(t, ok)
	require.Equal(t, uint16(4), fde.BinlogVersion)
	require.Equal(t, "5.7.26-log", fde.ServerVersion)
	require.Equal(t, uint32(1000), fde.CreateTimestamp)
	require.Equal(t, uint8(19), fde.EventHeaderLength)
}

func TestFormatDescriptionEmptyTable(t *testing.T) {
	body := encodeFormatDescription(4, []byte("8.0.33"), 0, 19, 0)

	data, err := ParseEventData(FORMAT_DESCRIPTION_EVENT, body)
	require.NoError(t, err)

	fde := data.(*FormatDescriptionEvent)
	require.Equal(t, "8.0.33", fde.ServerVersion)
	require.Equal(t, uint32(0), fde.CreateTimestamp)
}

func TestFormatDescriptionMissingNUL(t *testing.T) {
	noNUL := make([]byte, serverVersionLength)
	for i := range noNUL {
		noNUL[i] = 'x'
	}
	body := encodeFormatDescription(4, noNUL, 1000, 19, 0)

	_, err := ParseEventData(FORMAT_DESCRIPTION_EVENT, body)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NUL")
}

func TestFormatDescriptionInvalidUTF8(t *testing.T) {
	body := encodeFormatDescription(4, []byte{0xff, 0xfe, 'x'}, 1000, 19, 0)

	_, err := ParseEventData(FORMAT_DESCRIPTION_EVENT, body)
	require.Error(t, err)
	require.Contains(t, err.Error(), "UTF-8")
}

func TestFormatDescriptionTruncatedBody(t *testing.T) {
	body := encodeFormatDescription(4, []byte("5.7.26-log"), 1000, 19, 0)

	_, err := ParseEventData(FORMAT_DESCRIPTION_EVENT, body[:20])
	require.Error(t, err)
}
