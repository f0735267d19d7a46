package binlog

import (
	"encoding/binary"
	"io"

	"github.com/juju/errors"
)

// EventHeaderSize is the fixed length of the common header every event
// starts with, regardless of binlog version or event type.
const EventHeaderSize = 19

// EventHeader is the common header, all fields little-endian on the wire.
// https://dev.mysql.com/doc/internals/en/event-structure.html
type EventHeader struct {
	Timestamp uint32
	EventType EventType
	ServerID  uint32
	EventSize uint32
	LogPos    uint32
	Flags     uint16
}

// ParseEventHeader reads and decodes exactly EventHeaderSize bytes. A
// clean end of stream surfaces as io.EOF, a header cut short as an
// annotated io.ErrUnexpectedEOF.
func ParseEventHeader(r io.Reader) (*EventHeader, error) {
	headerBuffer := make([]byte, EventHeaderSize)
	if _, err := io.ReadFull(r, headerBuffer); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Annotate(err, "read event header")
	}

	header := &EventHeader{}
	pos := 0

	header.Timestamp = binary.LittleEndian.Uint32(headerBuffer[pos:])
	pos += 4

	header.EventType = TypeFromByte(headerBuffer[pos])
	pos += 1

	header.ServerID = binary.LittleEndian.Uint32(headerBuffer[pos:])
	pos += 4

	header.EventSize = binary.LittleEndian.Uint32(headerBuffer[pos:])
	pos += 4

	header.LogPos = binary.LittleEndian.Uint32(headerBuffer[pos:])
	pos += 4

	header.Flags = binary.LittleEndian.Uint16(headerBuffer[pos:])

	return header, nil
}

// Event is one record of the log: the common header, the raw body bytes
// and the stream offset the caller read it from. It is immutable once
// parsed; the body is interpreted on demand via DecodeData.
type Event struct {
	Header EventHeader
	Data   []byte
	Offset uint64
}

// ParseEvent decodes a single event starting at the source's current
// position. The caller supplies the byte offset the event starts at; the
// decoder keeps no cursor of its own.
func ParseEvent(r io.Reader, offset uint64) (*Event, error) {
	header, err := ParseEventHeader(r)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// A well formed event is never shorter than its own header. Checked
	// before the subtraction so a corrupt size field cannot underflow.
	if header.EventSize < EventHeaderSize {
		return nil, &MalformedEventError{Offset: offset, EventSize: header.EventSize}
	}

	data := make([]byte, header.EventSize-EventHeaderSize)
	if _, err := io.ReadFull(r, data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, errors.Annotatef(err, "read event body at offset %d", offset)
	}

	return &Event{Header: *header, Data: data, Offset: offset}, nil
}

// EventData is a decoded, type specific view of an event body.
type EventData interface {
	parse(data []byte) error
}

// ParseEventData decodes the type specific fields of an event body.
// Types whose body layout is not modeled yet return (nil, nil): not
// decoded, as opposed to failed to decode.
// https://dev.mysql.com/doc/internals/en/event-data-for-specific-event-types.html
func ParseEventData(t EventType, data []byte) (EventData, error) {
	switch t {
	case FORMAT_DESCRIPTION_EVENT:
		e := &FormatDescriptionEvent{}
		if err := e.parse(data); err != nil {
			return nil, errors.Trace(err)
		}
		return e, nil
	}
	return nil, nil
}

// DecodeData interprets the event's body per its stored type code.
func (ev *Event) DecodeData() (EventData, error) {
	return ParseEventData(ev.Header.EventType, ev.Data)
}
