package options

import (
	"Ordlist/cmd/ordlist/app/config"

	"github.com/spf13/pflag"
)

// Options are the global flags of every ordlist command.
type Options struct {
	Config *config.Config
}

func New() *Options {
	return &Options{
		Config: config.Default(),
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	c := o.Config
	fs.StringVar(&c.DumpDir, "dump-dir", c.DumpDir,
		"Directory the demo and fill commands write their dumps to")
	fs.StringVar(&c.Format, "format", c.Format,
		"Dump file format, binary or text")
	fs.BoolVar(&c.Compress, "compress", c.Compress,
		"Snappy compress the records of binary dumps")
	fs.IntVar(&c.Capacity, "capacity", c.Capacity,
		"Maximum number of items per list, 0 for no limit")
	fs.Uint32Var(&c.Seed, "seed", c.Seed,
		"Seed of the key generator used by fill")
}

// Validate will check the requirements of options
func (o *Options) Validate() []error {
	return o.Config.Validate()
}
