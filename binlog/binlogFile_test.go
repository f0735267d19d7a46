package binlog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBinlogFileValidMagic(t *testing.T) {
	src := bytes.NewReader([]byte{0xfe, 0x62, 0x69, 0x6e})

	bf, err := NewBinlogFile(src)
	require.NoError(t, err)
	require.Equal(t, uint64(4), bf.EventSetStartOffset)

	// the source is left positioned past the magic marker
	pos, err := src.Seek(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), pos)
}

func TestNewBinlogFileBadMagic(t *testing.T) {
	src := bytes.NewReader([]byte{'n', 'o', 'p', 'e', 0x00})

	_, err := NewBinlogFile(src)
	require.Error(t, err)

	var bad *BadMagicError
	require.ErrorAs(t, err, &bad)
	require.Equal(t, [4]byte{'n', 'o', 'p', 'e'}, bad.Magic)
}

func TestNewBinlogFileShortSource(t *testing.T) {
	src := bytes.NewReader([]byte{0xfe, 0x62})

	_, err := NewBinlogFile(src)
	require.Error(t, err)

	var bad *BadMagicError
	require.False(t, errors.As(err, &bad), "short read must not look like a magic mismatch")
}

func TestOpenBinlogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binlog.000001")
	content := append([]byte{0xfe, 0x62, 0x69, 0x6e}, encodeEvent(1, XID_EVENT, 1, 0, 0, make([]byte, 8))...)
	require.NoError(t, os.WriteFile(path, content, 0644))

	bf, err := OpenBinlogFile(path)
	require.NoError(t, err)
	defer bf.Close()
	require.Equal(t, uint64(4), bf.EventSetStartOffset)
}

func TestOpenBinlogFileMissing(t *testing.T) {
	_, err := OpenBinlogFile(filepath.Join(t.TempDir(), "no-such-binlog"))
	require.Error(t, err)

	var bad *BadMagicError
	require.False(t, errors.As(err, &bad))
}
