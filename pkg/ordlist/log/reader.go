package log

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
)

// Reader reads back the records produced by a Writer.
type Reader struct {
	src       io.Reader
	block     []byte
	buf       []byte // unread part of block
	eof       bool
	recordBuf bytes.Buffer
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   src,
		block: make([]byte, BlockSize),
	}
}

// ReadRecord returns the next logical record, or io.EOF after the last one.
// BE CAUTIOUS: the result is a slice of an internal buffer and is
// overwritten by the next ReadRecord.
func (r *Reader) ReadRecord() ([]byte, error) {
	r.recordBuf.Reset()
	inFragment := false
	for {
		record, rtype, err := r.readPhysicalRecord()
		if err == io.EOF && inFragment {
			return nil, ErrCorruption
		}
		if err != nil {
			return nil, err
		}

		switch rtype {
		case RecordTypeFull:
			if inFragment {
				return nil, ErrCorruption
			}
			return record, nil
		case RecordTypeFirst:
			if inFragment {
				return nil, ErrCorruption
			}
			inFragment = true
			r.recordBuf.Write(record)
		case RecordTypeMiddle:
			if !inFragment {
				return nil, ErrCorruption
			}
			r.recordBuf.Write(record)
		case RecordTypeLast:
			if !inFragment {
				return nil, ErrCorruption
			}
			r.recordBuf.Write(record)
			return r.recordBuf.Bytes(), nil
		default:
			return nil, ErrCorruption
		}
	}
}

func (r *Reader) readPhysicalRecord() ([]byte, RecordType, error) {
	if len(r.buf) < HeaderSize {
		// whatever is left is block padding
		if r.eof {
			return nil, 0, io.EOF
		}
		n, err := io.ReadFull(r.src, r.block)
		switch err {
		case nil:
		case io.EOF:
			r.eof = true
			return nil, 0, io.EOF
		case io.ErrUnexpectedEOF:
			r.eof = true
			if n < HeaderSize {
				return nil, 0, ErrCorruption
			}
		default:
			return nil, 0, err
		}
		r.buf = r.block[:n]
	}

	header := r.buf[:HeaderSize]
	headercrc := binary.LittleEndian.Uint32(header)
	length := int(binary.LittleEndian.Uint16(header[4:6]))
	rtype := RecordType(header[6])

	if len(r.buf)-HeaderSize < length {
		return nil, 0, ErrCorruption
	}
	record := r.buf[HeaderSize : HeaderSize+length]
	crc := crc32.ChecksumIEEE(header[4:])
	crc = crc32.Update(crc, crc32.IEEETable, record)
	if crc != headercrc {
		return nil, 0, ErrCorruption
	}
	r.buf = r.buf[HeaderSize+length:]
	return record, rtype, nil
}
