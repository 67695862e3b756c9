package app

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"Ordlist/cmd/ordlist/app/config"
	"Ordlist/pkg/ordlist"
	"Ordlist/pkg/ordlist/dump"
	"Ordlist/pkg/ordlist/record"
)

type list = ordlist.OrdList[int64, record.Record]

func newList(conf *config.Config) *list {
	return ordlist.New[int64, record.Record](ordlist.WithCapacity(conf.Capacity))
}

// dumpPath names the dump file of a list in the dump directory.
func dumpPath(conf *config.Config, name string) string {
	return filepath.Join(conf.DumpDir, name+".out")
}

func save(conf *config.Config, path string, l *list) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	var err error
	switch conf.Format {
	case config.FormatText:
		err = dump.SaveText(path, l, record.WriteLine)
	default:
		err = dump.Save(path, l, record.Codec{}, dump.Options{Compress: conf.Compress})
	}
	if err != nil {
		return err
	}
	klog.Infof("Saved %d items to %s", l.Length(), path)
	return nil
}

func load(conf *config.Config, path string) (*list, error) {
	l := newList(conf)
	var err error
	switch conf.Format {
	case config.FormatText:
		err = dump.LoadText(path, l, record.ParseLine)
	default:
		err = dump.Load(path, l, record.Codec{})
	}
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("Loaded %d items from %s, height %d", l.Length(), path, l.Height())
	return l, nil
}

// insertKeys adds an item with an empty value for every key, in order.
func insertKeys(l *list, keys ...int64) error {
	for _, k := range keys {
		if l.Find(k) {
			return fmt.Errorf("key %d: %w", k, ordlist.ErrDuplicateKey)
		}
		if err := l.Insert(record.New(k, "")); err != nil {
			return fmt.Errorf("key %d: %w", k, err)
		}
	}
	return nil
}
