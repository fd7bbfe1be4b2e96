package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	theme  string
	view   string
	closed int
}

func (h *fakeHost) Navigate(s string) { h.view = s }
func (h *fakeHost) ToggleTheme() {
	if h.theme == "EFSF" {
		h.theme = "ZEON"
	} else {
		h.theme = "EFSF"
	}
}
func (h *fakeHost) Theme() string  { return h.theme }
func (h *fakeHost) CloseTerminal() { h.closed++ }

func newTerm() (*Interpreter, *fakeHost) {
	h := &fakeHost{theme: "EFSF", view: "HOME"}
	return New(h, nil), h
}

func TestBootScrollback(t *testing.T) {
	term, _ := newTerm()
	assert.Equal(t, []string{"GUNDAM_OS v3.0 // INITIALIZED", "READY_FOR_INPUT..."}, term.History())
}

func TestGoto(t *testing.T) {
	term, h := newTerm()

	out := term.Exec("  GOTO Exchange ")
	assert.Equal(t, []string{"> " + "  GOTO Exchange ", "EXECUTING: NAV_TO_EXCHANGE..."}, out)
	assert.Equal(t, "EXCHANGE", h.view)
	assert.Equal(t, 1, h.closed)

	out = term.Exec("goto login")
	assert.Equal(t, "ERROR: INVALID_SECTOR_login", out[len(out)-1])
	assert.Equal(t, "EXCHANGE", h.view)

	out = term.Exec("goto")
	assert.Equal(t, "ERROR: INVALID_SECTOR_", out[len(out)-1])
}

func TestTheme(t *testing.T) {
	term, h := newTerm()

	out := term.Exec("theme")
	assert.Equal(t, "THEME_TOGGLED", out[1])
	assert.Equal(t, "ZEON", h.theme)

	term.Exec("theme zeon")
	assert.Equal(t, "ZEON", h.theme, "already zeon, no toggle")

	out = term.Exec("theme efsf")
	assert.Equal(t, "THEME_SET_TO_EFSF", out[1])
	assert.Equal(t, "EFSF", h.theme)

	out = term.Exec("theme titans")
	assert.Equal(t, "ERROR: INVALID_THEME_titans", out[1])
	assert.Equal(t, "EFSF", h.theme)
}

func TestHelpClearExitAndUnknown(t *testing.T) {
	term, h := newTerm()

	out := term.Exec("help")
	require.Len(t, out, 6)
	assert.Equal(t, "AVAILABLE_COMMANDS:", out[1])

	out = term.Exec("launch rx-78")
	assert.Equal(t, []string{"> launch rx-78", "ERROR: COMMAND_NOT_FOUND: launch"}, out)

	assert.Nil(t, term.Exec("   "))

	term.Exec("clear")
	assert.Equal(t, []string{"TERMINAL_CLEARED"}, term.History())

	term.Exec("exit")
	assert.Equal(t, 1, h.closed)
	assert.Equal(t, []string{"TERMINAL_CLEARED", "> exit"}, term.History())
}
