// ordlist builds, prints and merges ordered lists stored in dump files.
package main

import (
	"Ordlist/cmd/ordlist/app"
)

func main() {
	app.New("ordlist").Run()
}
