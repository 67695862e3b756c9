package app

import (
	"Ordlist/cmd/ordlist/app/options"
	"Ordlist/pkg/util/app"
)

const commandDesc = `ordlist keeps items with unique int64 keys in an ordered list backed by
an unbalanced binary search tree, and stores lists in pre-order dump files
that reload with the same tree shape.`

func New(basename string) *app.App {
	opts := options.New()
	application := app.NewApp(
		basename,
		app.WithOptions(opts),
		app.WithConfiguration(opts.Config),
		app.WithDescription(commandDesc),
	)
	application.AddCommands(
		newDemoCommand(opts),
		newFillCommand(opts),
		newShowCommand(opts),
		newUnionCommand(opts),
	)
	return application
}
