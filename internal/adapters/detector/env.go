// Package detector inspects the process environment for virtual environments and terminals.
package detector

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pyprune/internal/core/domain"
	"golang.org/x/term"
)

// Probe implements ports.EnvironmentProbe by reading VIRTUAL_ENV.
type Probe struct {
	getenv func(string) string
}

// New creates a Probe reading the real process environment.
func New() *Probe {
	return &Probe{getenv: os.Getenv}
}

// NewWithLookup creates a Probe reading variables through getenv.
func NewWithLookup(getenv func(string) string) *Probe {
	return &Probe{getenv: getenv}
}

// Probe reports whether a virtual environment is active.
// A blank VIRTUAL_ENV counts as unset.
func (p *Probe) Probe() domain.Environment {
	path := strings.TrimSpace(p.getenv(domain.VirtualEnvVar))
	if path == "" {
		return domain.Environment{}
	}

	return domain.Environment{
		VirtualEnvActive: true,
		Path:             path,
		Name:             filepath.Base(filepath.Clean(path)),
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
