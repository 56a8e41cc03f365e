package config

import "fmt"

// StrictMode controls what happens when a project-reference dependency
// points at a module the workspace does not declare. The original behavior
// was to drop such references silently; that hides a renamed or moved module
// losing its documentation links, so the default here is to warn.
type StrictMode int

const (
	// StrictWarn logs a warning for each dangling project reference and
	// continues without it.
	StrictWarn StrictMode = iota
	// StrictSkip drops dangling project references silently.
	StrictSkip
	// StrictError fails the configuration pass on the first dangling
	// project reference.
	StrictError
)

// ParseStrictMode converts a user-supplied mode string into a StrictMode.
func ParseStrictMode(s string) (StrictMode, error) {
	switch s {
	case "warn":
		return StrictWarn, nil
	case "skip":
		return StrictSkip, nil
	case "error":
		return StrictError, nil
	default:
		return StrictWarn, fmt.Errorf("invalid strict-links mode %q: must be 'warn', 'skip', or 'error'", s)
	}
}

// String returns the canonical name of the mode.
func (m StrictMode) String() string {
	switch m {
	case StrictSkip:
		return "skip"
	case StrictError:
		return "error"
	default:
		return "warn"
	}
}
