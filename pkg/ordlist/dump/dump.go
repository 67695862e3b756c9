// Package dump writes an OrdList to a file in pre-order and rebuilds it.
//
// Items are written node first, then the left subtree, then the right
// subtree, and read back with Find+Insert, so a loaded list has the shape
// of the one that was saved.
//
// Two formats are supported. The binary format stores one framed, crc
// checked record per item behind a small header record, optionally snappy
// compressed. The text format holds one item per line, formatted and parsed
// by the caller.
package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/juju/fslock"
	"k8s.io/klog/v2"

	"Ordlist/pkg/ordlist"
	"Ordlist/pkg/ordlist/log"
)

var ErrBadHeader = errors.New("not an ordlist dump")

const (
	magic   = "ORDL"
	version = 1

	flagSnappy = 1 << 0
)

// Codec converts items to and from the payload of a binary record.
type Codec[T any] interface {
	Marshal(item T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

type Options struct {
	// Compress snappy-encodes every item record.
	Compress bool
}

// Save writes l to path in the binary format. The file is locked while it
// is written.
func Save[K any, T ordlist.Item[K]](path string, l *ordlist.OrdList[K, T], codec Codec[T], opts Options) error {
	return withFile(path, func(f *os.File) error {
		return Write(f, l, codec, opts)
	})
}

// Write writes l to w in the binary format.
func Write[K any, T ordlist.Item[K]](w io.Writer, l *ordlist.OrdList[K, T], codec Codec[T], opts Options) error {
	lw := log.NewWriter(w)
	if err := lw.AddRecord(encodeHeader(opts)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	n := 0
	err := l.ExportPreOrder(lw, func(item T, sink io.Writer) error {
		data, err := codec.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal item %v: %w", item.Key(), err)
		}
		if opts.Compress {
			data = snappy.Encode(nil, data)
		}
		if _, err := sink.Write(data); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return err
	}
	klog.V(2).Infof("dump: wrote %d records, compress=%v", n, opts.Compress)
	return lw.Sync()
}

// Load replays the binary dump at path into l.
func Load[K any, T ordlist.Item[K]](path string, l *ordlist.OrdList[K, T], codec Codec[T]) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(f, l, codec); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Read replays a binary dump into l. Items already in l stay; a key that
// is both in l and in the dump fails with ordlist.ErrDuplicateKey.
func Read[K any, T ordlist.Item[K]](r io.Reader, l *ordlist.OrdList[K, T], codec Codec[T]) error {
	lr := log.NewReader(r)
	hdr, err := lr.ReadRecord()
	if err == io.EOF {
		return ErrBadHeader
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	opts, err := decodeHeader(hdr)
	if err != nil {
		return err
	}

	n := 0
	for {
		data, err := lr.ReadRecord()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", n, err)
		}
		if opts.Compress {
			if data, err = snappy.Decode(nil, data); err != nil {
				return fmt.Errorf("record %d: %w", n, err)
			}
		}
		item, err := codec.Unmarshal(data)
		if err != nil {
			return fmt.Errorf("record %d: %w", n, err)
		}
		if err := replay(l, item); err != nil {
			return fmt.Errorf("record %d: %w", n, err)
		}
		n++
	}
	klog.V(2).Infof("dump: replayed %d records", n)
	return nil
}

// SaveText writes l to path, one item per line, formatted by format.
func SaveText[K any, T ordlist.Item[K]](path string, l *ordlist.OrdList[K, T], format ordlist.ExportVisitor[T]) error {
	return withFile(path, func(f *os.File) error {
		return WriteText(f, l, format)
	})
}

func WriteText[K any, T ordlist.Item[K]](w io.Writer, l *ordlist.OrdList[K, T], format ordlist.ExportVisitor[T]) error {
	bw := bufio.NewWriter(w)
	if err := l.ExportPreOrder(bw, format); err != nil {
		return err
	}
	return bw.Flush()
}

// LoadText replays the text dump at path into l, parsing every non empty
// line with parse.
func LoadText[K any, T ordlist.Item[K]](path string, l *ordlist.OrdList[K, T], parse func(line string) (T, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := ReadText(f, l, parse); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func ReadText[K any, T ordlist.Item[K]](r io.Reader, l *ordlist.OrdList[K, T], parse func(line string) (T, error)) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		if len(sc.Bytes()) == 0 {
			continue
		}
		item, err := parse(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		if err := replay(l, item); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return sc.Err()
}

func replay[K any, T ordlist.Item[K]](l *ordlist.OrdList[K, T], item T) error {
	if l.Find(item.Key()) {
		return fmt.Errorf("key %v: %w", item.Key(), ordlist.ErrDuplicateKey)
	}
	return l.Insert(item)
}

func withFile(path string, fn func(f *os.File) error) error {
	lock := fslock.New(path + ".lock")
	if err := lock.TryLock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			klog.Errorf("unlock %s: %v", path, err)
		}
	}()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

func encodeHeader(opts Options) []byte {
	var flags byte
	if opts.Compress {
		flags |= flagSnappy
	}
	return append([]byte(magic), version, flags)
}

func decodeHeader(hdr []byte) (Options, error) {
	if len(hdr) != len(magic)+2 || string(hdr[:len(magic)]) != magic {
		return Options{}, ErrBadHeader
	}
	if v := hdr[len(magic)]; v != version {
		return Options{}, fmt.Errorf("%w: unsupported version %d", ErrBadHeader, v)
	}
	return Options{Compress: hdr[len(magic)+1]&flagSnappy != 0}, nil
}
