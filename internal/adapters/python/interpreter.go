package python

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Interpreter implements ports.Interpreter by running "<python> --version".
type Interpreter struct {
	runner  ports.CommandRunner
	command []string
}

// NewInterpreter creates an Interpreter for the given command.
func NewInterpreter(runner ports.CommandRunner, command []string) *Interpreter {
	return &Interpreter{
		runner:  runner,
		command: slices.Clone(command),
	}
}

// Version returns the interpreter's version line, e.g. "Python 3.12.4".
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	argv := append(slices.Clone(i.command), "--version")
	out, err := i.runner.Run(ctx, argv)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInterpreterVersionFailed.Error())
	}
	return strings.TrimSpace(string(out)), nil
}
