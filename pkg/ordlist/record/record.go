// Package record provides the item type stored by the ordlist command and
// its binary and text encodings.
package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed record")

// Record is a keyed value.
type Record struct {
	ID    int64
	Value string
}

func New(id int64, value string) Record {
	return Record{ID: id, Value: value}
}

func (r Record) Key() int64 {
	return r.ID
}

func (r Record) String() string {
	if r.Value == "" {
		return strconv.FormatInt(r.ID, 10)
	}
	return fmt.Sprintf("%d (%s)", r.ID, r.Value)
}

// Codec is the binary encoding of a Record:
//
//	id      varint
//	vlength varint
//	value   char[vlength]
type Codec struct{}

func (Codec) Marshal(r Record) ([]byte, error) {
	buf := make([]byte, 2*binary.MaxVarintLen64+len(r.Value))
	n := binary.PutVarint(buf, r.ID)
	n += binary.PutVarint(buf[n:], int64(len(r.Value)))
	n += copy(buf[n:], r.Value)
	return buf[:n], nil
}

func (Codec) Unmarshal(data []byte) (Record, error) {
	id, n := binary.Varint(data)
	if n <= 0 {
		return Record{}, fmt.Errorf("%w: bad id", ErrMalformed)
	}
	data = data[n:]
	vlen, n := binary.Varint(data)
	if n <= 0 || vlen < 0 || int64(len(data)-n) != vlen {
		return Record{}, fmt.Errorf("%w: bad value length", ErrMalformed)
	}
	return Record{ID: id, Value: string(data[n:])}, nil
}

// WriteLine writes r as one text line: the id, followed by a tab and the
// quoted value when the value is not empty.
func WriteLine(r Record, w io.Writer) error {
	var err error
	if r.Value == "" {
		_, err = fmt.Fprintf(w, "%d\n", r.ID)
	} else {
		_, err = fmt.Fprintf(w, "%d\t%s\n", r.ID, strconv.Quote(r.Value))
	}
	return err
}

// ParseLine is the inverse of WriteLine, the trailing newline is optional.
func ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	idPart, valuePart, hasValue := strings.Cut(line, "\t")
	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
	}
	r := Record{ID: id}
	if hasValue {
		if r.Value, err = strconv.Unquote(valuePart); err != nil {
			return Record{}, fmt.Errorf("%w: %q: %v", ErrMalformed, line, err)
		}
	}
	return r, nil
}
