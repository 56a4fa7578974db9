package tui

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorProfile(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	assert.Equal(t, termenv.ANSI256, colorProfile(env(nil), termenv.ANSI256))
	assert.Equal(t, termenv.TrueColor, colorProfile(env(map[string]string{"CLICOLOR_FORCE": "1"}), termenv.Ascii))
	assert.Equal(t, termenv.TrueColor, colorProfile(env(map[string]string{"COLORTERM": "truecolor"}), termenv.ANSI))
	assert.Equal(t, termenv.Ascii, colorProfile(env(map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}), termenv.TrueColor))
}
