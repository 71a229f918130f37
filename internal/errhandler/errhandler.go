package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// IsInterrupt reports whether err is the user backing out of a prompt
// (Ctrl+C inside survey or huh). Interrupts end the command quietly instead
// of being reported as failures.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, terminal.InterruptErr) {
		return true
	}
	return strings.Contains(err.Error(), "interrupt") || strings.Contains(err.Error(), "aborted")
}
