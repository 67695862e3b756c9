package dump_test

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"

	"Ordlist/pkg/ordlist"
	"Ordlist/pkg/ordlist/dump"
	"Ordlist/pkg/ordlist/log"
	"Ordlist/pkg/ordlist/record"
)

func newList(ids ...int64) *ordlist.OrdList[int64, record.Record] {
	l := ordlist.New[int64, record.Record]()
	for _, id := range ids {
		l.Find(id)
		if err := l.Insert(record.New(id, "v")); err != nil {
			panic(err)
		}
	}
	return l
}

func preOrder(l *ordlist.OrdList[int64, record.Record]) (out []int64) {
	l.WalkPreOrder(func(r record.Record, _ int, _ ordlist.Side) {
		out = append(out, r.ID)
	})
	return
}

func TestSaveLoad(t *testing.T) {
	for _, compress := range []bool{false, true} {
		src := newList(8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15)
		path := filepath.Join(t.TempDir(), "yourlist.out")

		err := dump.Save(path, src, record.Codec{}, dump.Options{Compress: compress})
		assert.NilError(t, err)

		dst := ordlist.New[int64, record.Record]()
		err = dump.Load(path, dst, record.Codec{})
		assert.NilError(t, err)
		assert.DeepEqual(t, preOrder(dst), preOrder(src))
		assert.Assert(t, dst.Equals(src))
	}
}

func TestWriteReadLarge(t *testing.T) {
	src := ordlist.New[int64, record.Record]()
	for _, v := range rand.Perm(5000) {
		src.Find(int64(v))
		// values large enough to span several log blocks in total
		assert.NilError(t, src.Insert(record.New(int64(v), string(bytes.Repeat([]byte{'x'}, v%64)))))
	}
	var buf bytes.Buffer
	assert.NilError(t, dump.Write(&buf, src, record.Codec{}, dump.Options{}))
	assert.Assert(t, buf.Len() > log.BlockSize)

	dst := ordlist.New[int64, record.Record]()
	assert.NilError(t, dump.Read(&buf, dst, record.Codec{}))
	assert.DeepEqual(t, preOrder(dst), preOrder(src))
	assert.Equal(t, dst.Height(), src.Height())

	it := dst.Iterator()
	src.ForEachInOrder(func(r record.Record) {
		assert.Equal(t, it.Item(), r)
		it.Next()
	})
	assert.Assert(t, !it.Valid())
}

func TestSaveLoadText(t *testing.T) {
	src := newList(4, 2, 6, 1, 3, 5, 7)
	path := filepath.Join(t.TempDir(), "mylist.out")

	assert.NilError(t, dump.SaveText(path, src, record.WriteLine))
	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	assert.Equal(t, string(data), "4\t\"v\"\n2\t\"v\"\n1\t\"v\"\n3\t\"v\"\n6\t\"v\"\n5\t\"v\"\n7\t\"v\"\n")

	dst := ordlist.New[int64, record.Record]()
	assert.NilError(t, dump.LoadText(path, dst, record.ParseLine))
	assert.DeepEqual(t, preOrder(dst), []int64{4, 2, 1, 3, 6, 5, 7})
}

func TestReadTextKeysOnly(t *testing.T) {
	dst := ordlist.New[int64, record.Record]()
	err := dump.ReadText(bytes.NewBufferString("8\n9\n\n10\n11\n"), dst, record.ParseLine)
	assert.NilError(t, err)
	assert.DeepEqual(t, preOrder(dst), []int64{8, 9, 10, 11})
	assert.Equal(t, dst.Height(), 4)
}

func TestReadDuplicate(t *testing.T) {
	dst := ordlist.New[int64, record.Record]()
	err := dump.ReadText(bytes.NewBufferString("1\n2\n1\n"), dst, record.ParseLine)
	assert.Assert(t, errors.Is(err, ordlist.ErrDuplicateKey), err)
	assert.ErrorContains(t, err, "line 3")
}

func TestReadBadHeader(t *testing.T) {
	dst := ordlist.New[int64, record.Record]()

	err := dump.Read(bytes.NewReader(nil), dst, record.Codec{})
	assert.Assert(t, errors.Is(err, dump.ErrBadHeader), err)

	var buf bytes.Buffer
	_, err = log.NewWriter(&buf).Write([]byte("not a dump"))
	assert.NilError(t, err)
	err = dump.Read(&buf, dst, record.Codec{})
	assert.Assert(t, errors.Is(err, dump.ErrBadHeader), err)
}

func TestReadCorrupted(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, dump.Write(&buf, newList(2, 1, 3), record.Codec{}, dump.Options{}))
	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	dst := ordlist.New[int64, record.Record]()
	err := dump.Read(bytes.NewReader(data), dst, record.Codec{})
	assert.Assert(t, errors.Is(err, log.ErrCorruption), err)
	// records before the damaged one were replayed
	assert.Equal(t, dst.Length(), 2)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestWriteError(t *testing.T) {
	err := dump.Write(failingWriter{}, newList(1), record.Codec{}, dump.Options{})
	assert.Assert(t, errors.Is(err, io.ErrShortWrite), err)
}
