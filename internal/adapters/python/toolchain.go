package python

import (
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
)

// Factory implements ports.ToolchainFactory for pip and CPython.
type Factory struct {
	runner ports.CommandRunner
}

// NewFactory creates a Factory sharing one command runner.
func NewFactory(runner ports.CommandRunner) *Factory {
	return &Factory{runner: runner}
}

// PackageManager returns a pip Manager for the toolchain, defaulting to plain "pip".
func (f *Factory) PackageManager(tc domain.Toolchain) ports.PackageManager {
	cmd := tc.Pip
	if len(cmd) == 0 {
		cmd = domain.DefaultPipCommand
	}
	return NewManager(f.runner, cmd)
}

// Interpreter returns an Interpreter for the toolchain, defaulting to "python3".
func (f *Factory) Interpreter(tc domain.Toolchain) ports.Interpreter {
	cmd := tc.Python
	if len(cmd) == 0 {
		cmd = domain.DefaultPythonCommand
	}
	return NewInterpreter(f.runner, cmd)
}
