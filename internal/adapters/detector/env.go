// Package detector decides whether the picker can run interactively.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Mode is how a command talks to the user.
type Mode int

const (
	// ModeAuto detects the mode from the environment.
	ModeAuto Mode = iota
	// ModeInteractive runs the full-screen picker.
	ModeInteractive
	// ModeLinear prints plain lines and never reads from the terminal.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode. The picker reads keys from
// stdin and draws on stderr, so stdout may be captured. CI environments always
// get linear output.
func DetectEnvironment() Mode {
	return Detect(term.IsTerminal)
}

// Detect is DetectEnvironment with the terminal check supplied by the caller.
func Detect(isTerminal func(fd int) bool) Mode {
	interactive := isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stderr.Fd()))
	if !interactive || IsCI() {
		return ModeLinear
	}
	return ModeInteractive
}

// IsCI reports whether the CI variable is set to a truthy value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies the user's --mode flag to the detected mode.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected Mode, userFlag string) Mode {
	switch userFlag {
	case "tui":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
