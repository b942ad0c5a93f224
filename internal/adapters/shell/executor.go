// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultEnv keeps pip quiet and non-interactive regardless of user configuration.
var defaultEnv = map[string]string{
	"PIP_DISABLE_PIP_VERSION_CHECK": "1",
	"PIP_NO_INPUT":                  "1",
	"PYTHONIOENCODING":              "utf-8",
}

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	env    map[string]string
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		env:    defaultEnv,
	}
}

// Run executes argv and returns its standard output.
// The process environment is os.Environ() with the runner's overrides applied on top.
// Standard error of a successful command is forwarded to the logger as warnings.
// Standard error of a failed command becomes part of the returned error message.
func (r *Runner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from configuration
	cmd.Env = resolveEnvironment(os.Environ(), r.env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		cause := err
		if msg := joinLines(stderr.String()); msg != "" {
			cause = fmt.Errorf("%s (%w)", msg, err)
		}

		runErr := zerr.Wrap(cause, domain.ErrCommandFailed.Error())
		runErr = zerr.With(runErr, "command", strings.Join(argv, " "))
		runErr = zerr.With(runErr, "exit_code", exitCode)
		return stdout.Bytes(), runErr
	}

	w := &logWriter{logger: r.logger}
	_, _ = w.Write(stderr.Bytes())

	return stdout.Bytes(), nil
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	if w.logger == nil {
		return len(p), nil
	}
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			w.logger.Warn(line)
		}
	}
	return len(p), nil
}

// joinLines collapses the non-empty lines of s into a single line.
func joinLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "; ")
}

// resolveEnvironment merges overrides onto the system environment.
// The result is sorted for deterministic process environments.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
