package binlog

import (
	"io"

	"github.com/juju/errors"
)

// Reader walks the event set of a BinlogFile in order. It owns the
// cursor the event decoder deliberately does not: each call seeks to the
// current offset, parses one event there and advances past it.
//
// A Reader must not be shared across goroutines; open one BinlogFile per
// concurrent stream instead.
type Reader struct {
	file   *BinlogFile
	offset uint64
}

func NewReader(file *BinlogFile) *Reader {
	return &Reader{file: file, offset: file.EventSetStartOffset}
}

// NewReaderAt starts iteration at a caller supplied offset, e.g. one
// loaded from a saved Position. Offsets inside the magic marker are
// clamped to the first event.
func NewReaderAt(file *BinlogFile, offset uint64) *Reader {
	if offset < file.EventSetStartOffset {
		offset = file.EventSetStartOffset
	}
	return &Reader{file: file, offset: offset}
}

// Offset is the stream position of the next event to be read.
func (r *Reader) Offset() uint64 {
	return r.offset
}

// GetEvent returns the next event, or (nil, nil) once the stream ends
// cleanly on an event boundary. Errors are scoped to the failed event;
// the caller decides whether to abort or skip ahead.
func (r *Reader) GetEvent() (*Event, error) {
	if _, err := r.file.Source().Seek(int64(r.offset), io.SeekStart); err != nil {
		return nil, errors.Annotatef(err, "seek to offset %d", r.offset)
	}

	ev, err := ParseEvent(r.file.Source(), r.offset)
	if err != nil {
		if errors.Cause(err) == io.EOF {
			// current log file read to end
			return nil, nil
		}
		return nil, errors.Trace(err)
	}

	r.offset += uint64(ev.Header.EventSize)
	return ev, nil
}
