package main_test

import (
	"testing"

	"github.com/fwojciec/somnolent"
	main "github.com/fwojciec/somnolent/cmd/somnolent"
	"github.com/stretchr/testify/assert"
)

func TestCLI_Validate(t *testing.T) {
	t.Parallel()

	valid := func() main.CLI {
		return main.CLI{Token: "secret", MaxTries: 5, MaxLength: 140, Rate: 1}
	}

	t.Run("accepts complete flags", func(t *testing.T) {
		t.Parallel()

		c := valid()
		assert.NoError(t, c.Validate())
	})

	t.Run("dry run needs no token", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Token = ""
		c.DryRun = true
		assert.NoError(t, c.Validate())
	})

	tests := []struct {
		name   string
		modify func(*main.CLI)
	}{
		{"missing token", func(c *main.CLI) { c.Token = "" }},
		{"zero tries", func(c *main.CLI) { c.MaxTries = 0 }},
		{"zero length", func(c *main.CLI) { c.MaxLength = 0 }},
		{"zero rate", func(c *main.CLI) { c.Rate = 0 }},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tt.modify(&c)
			assert.Equal(t, somnolent.EINVALID, somnolent.ErrorCode(c.Validate()))
		})
	}
}
