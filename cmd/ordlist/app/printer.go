package app

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"github.com/xlab/treeprint"

	"Ordlist/pkg/ordlist"
	"Ordlist/pkg/ordlist/record"
)

// printList writes one item per line, in key order or reversed.
func printList(w io.Writer, l *list, reverse bool) {
	visit := func(r record.Record) {
		fmt.Fprintln(w, r)
	}
	if reverse {
		l.ForEachReverse(visit)
	} else {
		l.ForEachInOrder(visit)
	}
}

// printShape draws the tree as it is laid out, left child first.
func printShape(w io.Writer, l *list) {
	if l.IsEmpty() {
		fmt.Fprintln(w, "(empty)")
		return
	}
	var tree treeprint.Tree
	// branches[d] is the last node seen at depth d
	var branches []treeprint.Tree
	l.WalkPreOrder(func(r record.Record, depth int, side ordlist.Side) {
		if side == ordlist.Root {
			tree = treeprint.NewWithRoot(r.String())
			branches = append(branches[:0], tree)
			return
		}
		b := branches[depth-1].AddMetaBranch(side.String(), r.String())
		branches = append(branches[:depth], b)
	})
	fmt.Fprint(w, tree.String())
}

func printTable(w io.Writer, l *list) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("#", "KEY", "VALUE")
	n := 0
	for it := l.Iterator(); it.Valid(); it.Next() {
		n++
		table.AddRow(n, it.Key(), it.Item().Value)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "items: %d, height: %d\n", n, l.Height())
}
