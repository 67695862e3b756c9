package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"

	"Ordlist/cmd/ordlist/app/config"
	"Ordlist/pkg/ordlist/record"
)

func testConfig(t *testing.T) *config.Config {
	conf := config.Default()
	conf.DumpDir = t.TempDir()
	return conf
}

func keys(l *list) []int64 {
	var out []int64
	l.ForEachInOrder(func(r record.Record) {
		out = append(out, r.ID)
	})
	return out
}

func TestDemo(t *testing.T) {
	for _, format := range []string{config.FormatBinary, config.FormatText} {
		conf := testConfig(t)
		conf.Format = format
		var out bytes.Buffer
		assert.NilError(t, runDemo(conf, &out))

		assert.Equal(t, strings.Count(out.String(), "PASSED."), 2)
		assert.Assert(t, !strings.Contains(out.String(), "FAILED."))
		assert.Assert(t, strings.HasPrefix(out.String(), "My list\n1\n2\n3\n4\n5\n6\n7\nYour list\n1\n"))

		for _, name := range []string{"mylist", "yourlist", "theirlist", "thatlist"} {
			_, err := os.Stat(dumpPath(conf, name))
			assert.NilError(t, err, name)
		}

		my, err := load(conf, dumpPath(conf, "mylist"))
		assert.NilError(t, err)
		assert.DeepEqual(t, keys(my), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
		assert.Equal(t, my.Height(), 4)

		their, err := load(conf, dumpPath(conf, "theirlist"))
		assert.NilError(t, err)
		assert.DeepEqual(t, keys(their), []int64{1, 2, 3, 4, 5, 6, 7})
		assert.Equal(t, their.Height(), 3)

		that, err := load(conf, dumpPath(conf, "thatlist"))
		assert.NilError(t, err)
		assert.Equal(t, that.Height(), 4)
	}
}

func TestFill(t *testing.T) {
	conf := testConfig(t)
	a, err := fill(conf, 200)
	assert.NilError(t, err)
	b, err := fill(conf, 200)
	assert.NilError(t, err)
	assert.Equal(t, a.Length(), 200)
	assert.Equal(t, a.Height(), b.Height())

	var sa, sb bytes.Buffer
	printShape(&sa, a)
	printShape(&sb, b)
	assert.Equal(t, sa.String(), sb.String())

	conf.Capacity = 50
	c, err := fill(conf, 200)
	assert.NilError(t, err)
	assert.Equal(t, c.Length(), 50)
	assert.Assert(t, c.IsFull())
}

func TestSaveLoadCompressed(t *testing.T) {
	conf := testConfig(t)
	conf.Compress = true
	l, err := fill(conf, 1000)
	assert.NilError(t, err)

	path := filepath.Join(conf.DumpDir, "sub", "fill.out")
	assert.NilError(t, save(conf, path, l))
	got, err := load(conf, path)
	assert.NilError(t, err)
	assert.Assert(t, got.Equals(l))
	assert.Equal(t, got.Height(), l.Height())
}

func TestUnion(t *testing.T) {
	conf := testConfig(t)
	a, b := newList(conf), newList(conf)
	assert.NilError(t, insertKeys(a, 1, 2, 3, 4, 5))
	assert.NilError(t, insertKeys(b, 10, 9, 8, 7, 6, 5))
	pa, pb := dumpPath(conf, "a"), dumpPath(conf, "b")
	assert.NilError(t, save(conf, pa, a))
	assert.NilError(t, save(conf, pb, b))

	out := dumpPath(conf, "u")
	u, err := union(conf, pa, pb, out)
	assert.NilError(t, err)
	assert.DeepEqual(t, keys(u), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	assert.Equal(t, u.Height(), 4)

	got, err := load(conf, out)
	assert.NilError(t, err)
	assert.Assert(t, got.Equals(u))

	_, err = union(conf, pa, dumpPath(conf, "missing"), out)
	assert.Assert(t, errors.Is(err, fs.ErrNotExist), err)
}

func TestInsertKeysDuplicate(t *testing.T) {
	l := newList(config.Default())
	err := insertKeys(l, 1, 2, 1)
	assert.ErrorContains(t, err, "key 1")
	assert.Equal(t, l.Length(), 2)
}

func TestPrinters(t *testing.T) {
	l := newList(config.Default())
	assert.NilError(t, insertKeys(l, 4, 2, 6, 1, 3, 5, 7))

	var buf bytes.Buffer
	printList(&buf, l, false)
	assert.Equal(t, buf.String(), "1\n2\n3\n4\n5\n6\n7\n")

	buf.Reset()
	printList(&buf, l, true)
	assert.Equal(t, buf.String(), "7\n6\n5\n4\n3\n2\n1\n")

	buf.Reset()
	printShape(&buf, l)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 7)
	assert.Equal(t, lines[0], "4")
	assert.Assert(t, strings.Contains(lines[1], "[L]") && strings.HasSuffix(lines[1], "2"), lines[1])
	assert.Assert(t, strings.Contains(lines[4], "[R]") && strings.HasSuffix(lines[4], "6"), lines[4])

	buf.Reset()
	printShape(&buf, newList(config.Default()))
	assert.Equal(t, buf.String(), "(empty)\n")

	buf.Reset()
	printTable(&buf, l)
	assert.Assert(t, strings.Contains(buf.String(), "KEY"))
	assert.Assert(t, strings.HasSuffix(buf.String(), "items: 7, height: 3\n"))
}

func TestShowOptions(t *testing.T) {
	assert.Equal(t, len((&showOptions{shape: true}).Validate()), 0)
	assert.Equal(t, len((&showOptions{shape: true, table: true}).Validate()), 1)
	assert.Equal(t, len((&showOptions{reverse: true, table: true}).Validate()), 1)
}
