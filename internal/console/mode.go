package console

import (
	"fmt"
	"strings"
)

// Mode selects where a review result comes from.
type Mode int

const (
	// Demo returns a canned result without contacting anything.
	Demo Mode = iota
	// Live posts the code to the review backend.
	Live
	// Stub stands in for a hosted API that does not exist yet.
	Stub
)

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{Demo, Live, Stub}
}

// String returns the display label of the mode.
func (m Mode) String() string {
	switch m {
	case Demo:
		return "Demo"
	case Live:
		return "Local LLM"
	case Stub:
		return "Remote API"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Slug is the short form used in form values and CLI flags.
func (m Mode) Slug() string {
	switch m {
	case Demo:
		return "demo"
	case Live:
		return "live"
	case Stub:
		return "stub"
	default:
		return ""
	}
}

// ParseMode accepts a slug or display label, case-insensitively.
func ParseMode(label string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "demo":
		return Demo, nil
	case "live", "local llm", "local":
		return Live, nil
	case "stub", "remote api", "remote":
		return Stub, nil
	default:
		return Demo, fmt.Errorf("unknown mode %q", label)
	}
}
