package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"Ordlist/cmd/ordlist/app/config"
	"Ordlist/cmd/ordlist/app/options"
	"Ordlist/pkg/util/app"
)

func newDemoCommand(opts *options.Options) *app.Command {
	return app.NewCommand("demo", "Build the sample lists, exercise the list operations and dump every list",
		app.WithCommandArgs(cobra.NoArgs),
		app.WithCommandRunFunc(func(args []string) error {
			return runDemo(opts.Config, os.Stdout)
		}),
	)
}

type demoList struct {
	name  string
	title string
	list  *list
}

func runDemo(conf *config.Config, w io.Writer) error {
	mylist := newList(conf)
	yourlist := newList(conf)
	theirlist := newList(conf)
	thatlist := newList(conf)

	if err := insertKeys(mylist, 4, 2, 6, 1, 3, 5, 7); err != nil {
		return err
	}
	if err := insertKeys(yourlist, 8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15); err != nil {
		return err
	}
	if err := insertKeys(thatlist, 8, 9, 10, 11); err != nil {
		return err
	}

	lists := []demoList{
		{"mylist", "My list", mylist},
		{"yourlist", "Your list", yourlist},
		{"theirlist", "Their list", theirlist},
		{"thatlist", "That list", thatlist},
	}
	for _, d := range lists {
		fmt.Fprintln(w, d.title)
		printList(w, d.list, false)
	}

	fmt.Fprintln(w, "Testing copy... theirlist = mylist")
	if err := theirlist.CopyFrom(mylist); err != nil {
		return err
	}
	fmt.Fprintln(w, "My list")
	printList(w, mylist, false)
	fmt.Fprintln(w, "Their list")
	printList(w, theirlist, false)

	fmt.Fprintln(w, "Testing equality... theirlist == mylist")
	report(w, theirlist.Equals(mylist))
	fmt.Fprintln(w, "Testing inequality... yourlist != mylist")
	report(w, yourlist.NotEquals(mylist))

	fmt.Fprintln(w, "Testing union... mylist = mylist + thatlist")
	u, err := mylist.Union(thatlist)
	if err != nil {
		return err
	}
	lists[0].list = u
	printList(w, u, false)
	printShape(w, u)

	fmt.Fprintln(w, "Dumping all lists to their respective output files")
	for _, d := range lists {
		if err := save(conf, dumpPath(conf, d.name), d.list); err != nil {
			return err
		}
	}
	return nil
}

func report(w io.Writer, ok bool) {
	if ok {
		fmt.Fprintln(w, color.GreenString("PASSED."))
	} else {
		fmt.Fprintln(w, color.RedString("FAILED."))
	}
}
