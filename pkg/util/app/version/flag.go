package version

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

const flagName = "version"
const flagShortHand = "V"

// value is the state of the --version flag: false, true or "all".
type value int

const (
	boolFalse value = 0
	boolTrue  value = 1
	allInfo   value = 3

	strAllVersionInfo string = "all"
)

var v = boolFalse

func (v *value) Set(s string) error {
	if s == strAllVersionInfo {
		*v = allInfo
		return nil
	}
	boolVal, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if boolVal {
		*v = boolTrue
	} else {
		*v = boolFalse
	}
	return nil
}

func (v *value) String() string {
	if *v == allInfo {
		return strAllVersionInfo
	}
	return strconv.FormatBool(*v == boolTrue)
}

// The type of the flag as required by the pflag.Value interface
func (v *value) Type() string {
	return "version"
}

// AddFlags registers the --version flag on fs. Every FlagSet shares the
// same value.
func AddFlags(fs *pflag.FlagSet) {
	fs.VarP(&v, flagName, flagShortHand, "Print version information and quit, --version=all prints build details.")
	// "--version" will be treated as "--version=true"
	fs.Lookup(flagName).NoOptDefVal = "true"
}

// PrintAndExitIfRequested prints the version and exits when --version was
// passed.
func PrintAndExitIfRequested(appName string) {
	switch v {
	case allInfo:
		fmt.Printf("%s\n", Get())
		os.Exit(0)
	case boolTrue:
		fmt.Printf("%s %s\n", appName, Get().GitVersion)
		os.Exit(0)
	}
}
