package binlog

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"github.com/juju/errors"
	"github.com/siddontang/go/hack"
)

// serverVersionLength is the fixed width of the server version field,
// NUL padded on the wire.
const serverVersionLength = 50

// FormatDescriptionEvent is the first event of a binlog version 4 file.
// It names the server that wrote the log and carries the per type header
// length table for the events that follow.
// https://dev.mysql.com/doc/internals/en/format-description-event.html
type FormatDescriptionEvent struct {
	BinlogVersion     uint16
	ServerVersion     string
	CreateTimestamp   uint32
	EventHeaderLength uint8
}

func (e *FormatDescriptionEvent) parse(data []byte) error {
	if len(data) < 2+serverVersionLength+4+1 {
		return errors.Errorf("format description body too short: %d bytes", len(data))
	}

	pos := 0

	e.BinlogVersion = binary.LittleEndian.Uint16(data[pos:])
	pos += 2

	version := data[pos : pos+serverVersionLength]
	end := bytes.IndexByte(version, 0x00)
	if end < 0 {
		return errors.Errorf("server version missing NUL terminator in %d byte field", serverVersionLength)
	}
	if !utf8.Valid(version[:end]) {
		return errors.Errorf("server version is not valid UTF-8: % x", version[:end])
	}
	e.ServerVersion = hack.String(version[:end])
	pos += serverVersionLength

	e.CreateTimestamp = binary.LittleEndian.Uint32(data[pos:])
	pos += 4

	// Everything past the common header length is the per event type
	// header length table, skipped here.
	e.EventHeaderLength = data[pos]

	return nil
}
