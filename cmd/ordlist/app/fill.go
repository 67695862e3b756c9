package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"Ordlist/cmd/ordlist/app/config"
	"Ordlist/cmd/ordlist/app/options"
	"Ordlist/pkg/ordlist"
	"Ordlist/pkg/ordlist/record"
	"Ordlist/pkg/util/app"
	"Ordlist/pkg/util/random"
)

func newFillCommand(opts *options.Options) *app.Command {
	return app.NewCommand("fill N [FILE]", "Insert the keys 0..N-1 in a pseudo-random order and dump the list",
		app.WithCommandLong(`Fill inserts the keys 0 to N-1, shuffled with --seed, into an empty list
and writes it to FILE, by default fill.out in the dump directory. The same
seed always produces the same tree.`),
		app.WithCommandArgs(cobra.RangeArgs(1, 2)),
		app.WithCommandRunFunc(func(args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("bad item count %q", args[0])
			}
			path := dumpPath(opts.Config, "fill")
			if len(args) > 1 {
				path = args[1]
			}
			l, err := fill(opts.Config, n)
			if err != nil {
				return err
			}
			if err := save(opts.Config, path, l); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s: %d items, height %d\n", path, l.Length(), l.Height())
			return nil
		}),
	)
}

// fill stops early, keeping what was inserted, when the list reaches its
// capacity.
func fill(conf *config.Config, n int) (*list, error) {
	l := newList(conf)
	rnd := random.New(conf.Seed)
	for _, k := range rnd.Perm(n) {
		l.Find(int64(k))
		err := l.Insert(record.New(int64(k), ""))
		if errors.Is(err, ordlist.ErrOutOfMemory) {
			klog.Warningf("List is full after %d of %d items", l.Length(), n)
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}
