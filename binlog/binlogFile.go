package binlog

import (
	"io"
	"os"

	"github.com/juju/errors"
)

// https://dev.mysql.com/doc/internals/en/binary-log-structure-and-contents.html
var magicNumber = [4]byte{0xfe, 0x62, 0x69, 0x6e}

// BinlogFile wraps a byte source whose magic marker has been validated.
// After construction the source is positioned at the first event and the
// file owns it exclusively until Close.
type BinlogFile struct {
	src    io.ReadSeeker
	closer io.Closer

	// EventSetStartOffset is the stream position immediately past the
	// magic marker, where the event set begins.
	EventSetStartOffset uint64
}

// OpenBinlogFile opens a binlog file on disk and validates its magic
// marker. A file that cannot be opened fails with an annotated os error,
// a file that is not a binlog with *BadMagicError.
func OpenBinlogFile(path string) (*BinlogFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "open binlog file")
	}
	bf, err := NewBinlogFile(f)
	if err != nil {
		f.Close()
		return nil, errors.Trace(err)
	}
	bf.closer = f
	return bf, nil
}

// NewBinlogFile reads exactly four bytes from the source and checks them
// against the magic marker, taking ownership of the source on success.
func NewBinlogFile(src io.ReadSeeker) (*BinlogFile, error) {
	var magic [4]byte
	if _, err := io.ReadFull(src, magic[:]); err != nil {
		return nil, errors.Annotate(err, "read binlog magic")
	}
	if magic != magicNumber {
		return nil, &BadMagicError{Magic: magic}
	}
	return &BinlogFile{src: src, EventSetStartOffset: 4}, nil
}

// Source exposes the underlying byte source for event reads.
func (bf *BinlogFile) Source() io.ReadSeeker {
	return bf.src
}

func (bf *BinlogFile) Close() error {
	if bf.closer == nil {
		return nil
	}
	return bf.closer.Close()
}
