package app

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"Ordlist/cmd/ordlist/app/options"
	"Ordlist/pkg/util/app"
)

type showOptions struct {
	reverse bool
	shape   bool
	table   bool
}

func (o *showOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.reverse, "reverse", false, "Print the items in descending key order")
	fs.BoolVar(&o.shape, "shape", false, "Print the tree as it is laid out")
	fs.BoolVar(&o.table, "table", false, "Print the items as a table")
}

func (o *showOptions) Validate() []error {
	if o.shape && (o.reverse || o.table) {
		return []error{errors.New("--shape can not be combined with --reverse or --table")}
	}
	if o.reverse && o.table {
		return []error{errors.New("--table can not be combined with --reverse")}
	}
	return nil
}

func newShowCommand(opts *options.Options) *app.Command {
	so := &showOptions{}
	return app.NewCommand("show FILE", "Load a dump and print its items",
		app.WithCommandOptions(so),
		app.WithCommandArgs(cobra.ExactArgs(1)),
		app.WithCommandRunFunc(func(args []string) error {
			l, err := load(opts.Config, args[0])
			if err != nil {
				return err
			}
			switch {
			case so.shape:
				printShape(os.Stdout, l)
			case so.table:
				printTable(os.Stdout, l)
			default:
				printList(os.Stdout, l, so.reverse)
			}
			return nil
		}),
	)
}
