package binlog

import "fmt"

// BadMagicError reports a source whose first four bytes are not the
// binlog magic marker. The observed bytes are kept for diagnostics.
type BadMagicError struct {
	Magic [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("bad magic value at start of binlog: got % x", e.Magic)
}

// MalformedEventError reports an event whose stated size is smaller than
// the fixed header, which would otherwise underflow the body length.
type MalformedEventError struct {
	Offset    uint64
	EventSize uint32
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event at offset %d: event size %d is shorter than the %d byte header",
		e.Offset, e.EventSize, EventHeaderSize)
}
