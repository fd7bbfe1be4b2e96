// Package terminal implements the command overlay: a whitespace-tokenised
// command language with a scrollback log. Unknown input never fails; it is
// echoed back as an ERROR line.
package terminal

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	bootLine  = "GUNDAM_OS v3.0 // INITIALIZED"
	readyLine = "READY_FOR_INPUT..."
	clearLine = "TERMINAL_CLEARED"
)

// Sectors are the views reachable through goto, in help order.
var Sectors = []string{"HOME", "SHOP", "EXCHANGE", "DEALS", "CONTACT", "PILOT", "WISHLIST", "CHECKOUT"}

var helpLines = []string{
	"AVAILABLE_COMMANDS:",
	"  goto [home|shop|exchange|deals|contact|pilot|wishlist|checkout]",
	"  theme [efsf|zeon|toggle]",
	"  clear",
	"  exit",
}

// Host is what the terminal drives.
type Host interface {
	Navigate(sector string)
	ToggleTheme()
	Theme() string
	CloseTerminal()
}

type Interpreter struct {
	host Host
	log  *zap.Logger

	mu      sync.Mutex
	history []string
}

func New(host Host, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interpreter{host: host, log: log, history: []string{bootLine, readyLine}}
}

// History returns a copy of the scrollback.
func (t *Interpreter) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.history...)
}

// Exec runs one line of input. It returns the lines the command produced,
// the echo included. Blank input is ignored.
func (t *Interpreter) Exec(input string) []string {
	cmd := strings.ToLower(strings.TrimSpace(input))
	if cmd == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	start := len(t.history)
	t.history = append(t.history, "> "+input)

	args := strings.Fields(cmd)
	verb, arg := args[0], ""
	if len(args) > 1 {
		arg = args[1]
	}

	switch verb {
	case "help":
		t.history = append(t.history, helpLines...)
	case "goto":
		t.gotoSector(arg)
	case "theme":
		t.theme(arg)
	case "clear":
		t.history = []string{clearLine}
		return []string{clearLine}
	case "exit":
		t.host.CloseTerminal()
	default:
		t.history = append(t.history, "ERROR: COMMAND_NOT_FOUND: "+verb)
	}

	t.log.Debug("terminal command", zap.String("verb", verb), zap.String("arg", arg))
	return append([]string(nil), t.history[start:]...)
}

func (t *Interpreter) gotoSector(arg string) {
	sector := strings.ToUpper(arg)
	for _, s := range Sectors {
		if s == sector {
			t.history = append(t.history, "EXECUTING: NAV_TO_"+sector+"...")
			t.host.Navigate(sector)
			t.host.CloseTerminal()
			return
		}
	}
	t.history = append(t.history, "ERROR: INVALID_SECTOR_"+arg)
}

func (t *Interpreter) theme(arg string) {
	switch arg {
	case "", "toggle":
		t.host.ToggleTheme()
		t.history = append(t.history, "THEME_TOGGLED")
	case "efsf", "zeon":
		want := strings.ToUpper(arg)
		if t.host.Theme() != want {
			t.host.ToggleTheme()
		}
		t.history = append(t.history, "THEME_SET_TO_"+want)
	default:
		t.history = append(t.history, "ERROR: INVALID_THEME_"+arg)
	}
}
