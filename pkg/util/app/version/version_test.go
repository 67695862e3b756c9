package version

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gotest.tools/assert"
)

func TestFlag(t *testing.T) {
	defer func() { v = boolFalse }()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)

	assert.NilError(t, fs.Parse([]string{"--version"}))
	assert.Equal(t, v, boolTrue)
	assert.Equal(t, fs.Lookup(flagName).Value.String(), "true")

	assert.NilError(t, fs.Parse([]string{"--version=all"}))
	assert.Equal(t, v, allInfo)
	assert.Equal(t, fs.Lookup(flagName).Value.String(), "all")

	assert.NilError(t, fs.Parse([]string{"-V=false"}))
	assert.Equal(t, v, boolFalse)

	assert.Assert(t, fs.Parse([]string{"--version=maybe"}) != nil)
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Assert(t, info.GoVersion != "")
	assert.Assert(t, strings.Contains(info.String(), "gitVersion:"))
	assert.Assert(t, strings.Contains(info.String(), info.Platform))
}
