package domain

// VirtualEnvVar is the variable set by virtual environment activation scripts.
const VirtualEnvVar = "VIRTUAL_ENV"

// Environment is the snapshot of the ambient Python environment, passed explicitly
// to the engine so the safety guard never reads process state itself.
type Environment struct {
	// VirtualEnvActive reports whether a virtual environment is active.
	VirtualEnvActive bool

	// Path is the root of the active virtual environment, empty otherwise.
	Path string

	// Name is the base name of Path.
	Name string
}

// Target selects which installation a cleanup applies to.
type Target int

const (
	// TargetNone means no target was selected.
	TargetNone Target = iota
	// TargetLocal is the active virtual environment.
	TargetLocal
	// TargetGlobal is the interpreter's global site-packages.
	TargetGlobal
)

// String returns the flag-style name of the target.
func (t Target) String() string {
	switch t {
	case TargetLocal:
		return "local"
	case TargetGlobal:
		return "global"
	default:
		return "none"
	}
}

// Mode selects what the cleanup engine does with its plan.
type Mode int

const (
	// ModeInteractive prints the plan and asks before removing.
	ModeInteractive Mode = iota
	// ModeInfo reports counts only.
	ModeInfo
	// ModeDryRun prints the full plan without removing anything.
	ModeDryRun
	// ModeConfirmed removes without prompting.
	ModeConfirmed
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInfo:
		return "info"
	case ModeDryRun:
		return "dry-run"
	case ModeConfirmed:
		return "confirmed"
	default:
		return "interactive"
	}
}

// Removes reports whether the mode may call the uninstall operation.
func (m Mode) Removes() bool {
	return m == ModeInteractive || m == ModeConfirmed
}
