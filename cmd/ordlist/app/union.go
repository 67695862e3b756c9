package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Ordlist/cmd/ordlist/app/config"
	"Ordlist/cmd/ordlist/app/options"
	"Ordlist/pkg/util/app"
)

func newUnionCommand(opts *options.Options) *app.Command {
	return app.NewCommand("union A B OUT", "Write the balanced union of two dumps",
		app.WithCommandLong(`Union loads the dumps A and B and writes a list holding the keys of both
to OUT. A key present in both keeps the item of A. The written tree has
minimal height whatever the shape of A and B.`),
		app.WithCommandArgs(cobra.ExactArgs(3)),
		app.WithCommandRunFunc(func(args []string) error {
			u, err := union(opts.Config, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s: %d items, height %d\n", args[2], u.Length(), u.Height())
			return nil
		}),
	)
}

func union(conf *config.Config, a, b, out string) (*list, error) {
	la, err := load(conf, a)
	if err != nil {
		return nil, err
	}
	lb, err := load(conf, b)
	if err != nil {
		return nil, err
	}
	u, err := la.Union(lb)
	if err != nil {
		return nil, fmt.Errorf("union of %s and %s: %w", a, b, err)
	}
	if err := save(conf, out, u); err != nil {
		return nil, err
	}
	return u, nil
}
