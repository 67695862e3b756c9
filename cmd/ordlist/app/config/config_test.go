package config

import (
	"testing"

	"gotest.tools/assert"
)

func TestValidate(t *testing.T) {
	assert.Equal(t, len(Default().Validate()), 0)

	c := Default()
	c.Format = "xml"
	c.Capacity = -1
	assert.Equal(t, len(c.Validate()), 2)

	c = Default()
	c.Format = FormatText
	c.Compress = true
	errs := c.Validate()
	assert.Equal(t, len(errs), 1)
	assert.ErrorContains(t, errs[0], "compress")
}
