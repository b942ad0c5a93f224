// Package linear provides a plain, line-oriented renderer for cleanup plans and reports.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/ui/output"
	"go.trai.ch/pyprune/internal/ui/style"
)

const labelWidth = 22

// Renderer implements ports.Renderer, writing human-readable text to stdout.
type Renderer struct {
	mu     sync.Mutex
	stdout io.Writer
	output *termenv.Output
}

// NewRenderer creates a new Renderer. A nil writer means os.Stdout.
func NewRenderer(stdout io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Renderer{
		stdout: stdout,
		output: output.NewWithProfile(stdout, output.ColorProfileANSI),
	}
}

// Banner prints the mode, target and environment a run operates on.
func (r *Renderer) Banner(mode domain.Mode, target domain.Target, env domain.Environment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := r.output.String(fmt.Sprintf("==> pyprune %s", mode)).Bold().String()
	r.printf("%s (target: %s)\n", title, target)
	r.field("virtual environment", describeEnvironment(env))
	r.printf("\n")
}

// Summary prints the total, protected and removable counts.
func (r *Renderer) Summary(plan *domain.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summaryLocked(plan)
}

// Plan prints the counts followed by the removable and protected lists.
func (r *Renderer) Plan(plan *domain.Plan) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summaryLocked(plan)
	r.printf("\n")

	if len(plan.Removable) == 0 {
		r.printf("Nothing to remove.\n")
	} else {
		r.printf("Packages to remove (%d):\n", len(plan.Removable))
		for _, pkg := range plan.Removable {
			r.printf("  %s %s\n", style.Bullet, pkg)
		}
	}

	if len(plan.Protected) > 0 {
		r.printf("Protected packages kept (%d):\n", len(plan.Protected))
		for _, pkg := range plan.Protected {
			r.printf("  %s %s\n", r.output.String(style.Kept).Faint(), pkg)
		}
	}
}

// Removal prints the outcome of a removal run.
func (r *Renderer) Removal(report *domain.RemovalReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("\nRemoval finished in %d batch(es)\n", report.Batches)

	removed := r.output.String(fmt.Sprintf("%d", len(report.Removed))).Foreground(termenv.ANSIGreen)
	r.field("removed", removed.String())

	failedText := fmt.Sprintf("%d", len(report.Failed))
	if len(report.Failed) > 0 {
		failedText = r.output.String(failedText).Foreground(termenv.ANSIRed).String()
	}
	r.field("failed", failedText)
	r.field("protected", fmt.Sprintf("%d", report.ProtectedCount))

	if len(report.Failed) == 0 {
		return
	}

	r.printf("Failed packages:\n")
	symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
	for _, f := range report.Failed {
		r.printf("  %s %s: %s\n", symbol, f.Package, firstLine(f.Reason))
	}
}

// Environment prints the environment report. Unknown fields are left blank.
func (r *Renderer) Environment(report *domain.EnvironmentReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s\n", r.output.String("Python environment").Bold())
	r.field("interpreter", report.InterpreterVersion)
	r.field("package manager", report.ManagerVersion)
	r.field("virtual environment", describeEnvironment(report.Environment))
	r.field("location", report.Location)

	count := ""
	if report.PackagesKnown {
		count = fmt.Sprintf("%d", report.PackageCount)
	}
	r.field("installed packages", count)

	if len(report.Sample) > 0 {
		r.printf("\nFirst %d packages:\n", len(report.Sample))
		for _, pkg := range report.Sample {
			r.printf("  %s %s\n", style.Bullet, pkg)
		}
	}

	if len(report.Warnings) > 0 {
		r.printf("\nWarnings:\n")
		symbol := r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
		for _, w := range report.Warnings {
			r.printf("  %s %s\n", symbol, w)
		}
	}
}

func (r *Renderer) summaryLocked(plan *domain.Plan) {
	r.field("installed packages", fmt.Sprintf("%d", len(plan.Installed)))
	r.field("protected", fmt.Sprintf("%d", len(plan.Protected)))
	r.field("removable", fmt.Sprintf("%d", len(plan.Removable)))
}

// field prints an aligned "label: value" line. Must be called with r.mu held.
func (r *Renderer) field(label, value string) {
	line := fmt.Sprintf("  %-*s%s", labelWidth, label+":", value)
	r.printf("%s\n", strings.TrimRight(line, " "))
}

// printf writes to stdout. Must be called with r.mu held.
func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, args...)
}

func describeEnvironment(env domain.Environment) string {
	if !env.VirtualEnvActive {
		return "inactive"
	}
	return fmt.Sprintf("active (%s, %s)", env.Name, env.Path)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
