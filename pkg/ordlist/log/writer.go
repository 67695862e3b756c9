package log

import (
	"encoding/binary"
	"hash/crc32"
	"io"

	"Ordlist/pkg/util"
)

// Writer appends framed records to an io.Writer. Every call to Write or
// AddRecord produces exactly one logical record.
type Writer struct {
	blockOffset int // Current offset in block
	dest        io.Writer
	header      [HeaderSize]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{dest: w}
}

// Write implements io.Writer, p becomes one record.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.AddRecord(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *Writer) AddRecord(record []byte) (err error) {
	left := len(record)
	begin := true
	end := false
	offset := 0

	for !end && err == nil {
		leftover := BlockSize - w.blockOffset
		util.Assert(0 <= leftover)

		// Not enough room for a header, pad the block with zeros and
		// start the next one.
		if leftover < HeaderSize {
			if 0 < leftover {
				var zeros [HeaderSize]byte
				if _, err = w.dest.Write(zeros[:leftover]); err != nil {
					return err
				}
			}
			w.blockOffset = 0
		}
		util.Assert(0 <= BlockSize-w.blockOffset-HeaderSize)

		available := BlockSize - w.blockOffset - HeaderSize

		fragLen := available
		if left <= available {
			end = true
			fragLen = left
		}

		recordType := RecordTypeMiddle
		if begin && end {
			recordType = RecordTypeFull
		} else if begin {
			recordType = RecordTypeFirst
		} else if end {
			recordType = RecordTypeLast
		}

		err = w.emitPhysicalRecord(recordType, record[offset:offset+fragLen])

		offset += fragLen
		w.blockOffset += fragLen + HeaderSize
		begin = false
		left -= fragLen
	}

	return err
}

func (w *Writer) emitPhysicalRecord(rtype RecordType, record []byte) error {
	header := w.header[:]
	binary.LittleEndian.PutUint16(header[4:6], uint16(len(record)))
	header[6] = byte(rtype)
	crc := crc32.ChecksumIEEE(header[4:])
	crc = crc32.Update(crc, crc32.IEEETable, record)
	binary.LittleEndian.PutUint32(header, crc)

	if _, err := w.dest.Write(header); err != nil {
		return err
	}
	_, err := w.dest.Write(record)
	return err
}

// Sync flushes the destination to stable storage when it supports it.
func (w *Writer) Sync() error {
	if s, ok := w.dest.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
