// Package cleanup implements the package classification and batch removal engine.
package cleanup

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine computes the removable package set and removes it in batches.
// All package manager calls are made sequentially from the calling goroutine.
type Engine struct {
	manager   ports.PackageManager
	protector domain.Protector
	env       domain.Environment
	logger    ports.Logger
	batchSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithBatchSize sets the number of packages per removal batch. Values below one are ignored.
func WithBatchSize(size int) Option {
	return func(e *Engine) {
		if size >= 1 {
			e.batchSize = size
		}
	}
}

// WithLogger sets the logger used for batch progress.
func WithLogger(logger ports.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine. The environment snapshot is fixed for the engine's lifetime.
func New(
	manager ports.PackageManager,
	protector domain.Protector,
	env domain.Environment,
	opts ...Option,
) *Engine {
	e := &Engine{
		manager:   manager,
		protector: protector,
		env:       env,
		logger:    nopLogger{},
		batchSize: domain.DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Guard checks that the target is safe for the current environment.
// It has no side effects and must run before any package query.
func (e *Engine) Guard(target domain.Target) error {
	switch target {
	case domain.TargetGlobal:
		if e.env.VirtualEnvActive {
			return zerr.With(domain.ErrGlobalInVirtualEnv, "virtual_env", e.env.Path)
		}
	case domain.TargetLocal:
		if !e.env.VirtualEnvActive {
			return domain.ErrLocalOutsideVirtualEnv
		}
	case domain.TargetNone:
	}
	return nil
}

// Plan queries the installed packages and partitions them.
func (e *Engine) Plan(ctx context.Context) (*domain.Plan, error) {
	installed, err := e.manager.List(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageQueryFailed.Error())
	}
	return domain.Classify(installed, e.protector), nil
}

// Remove uninstalls every removable package in the plan, one call per package,
// grouped into batches. Failures are recorded in the report and never stop the run.
func (e *Engine) Remove(ctx context.Context, plan *domain.Plan) *domain.RemovalReport {
	report := &domain.RemovalReport{
		ProtectedCount: len(plan.Protected),
	}

	batches := domain.Batches(plan.Removable, e.batchSize)
	report.Batches = len(batches)

	for i, batch := range batches {
		e.logger.Info(fmt.Sprintf("removing batch %d/%d: %s",
			i+1, len(batches), strings.Join(domain.Names(batch), ", ")))

		for _, pkg := range batch {
			if err := e.manager.Uninstall(ctx, pkg.Name); err != nil {
				e.logger.Warn(fmt.Sprintf("could not remove %s, continuing", pkg.Name))
				report.Failed = append(report.Failed, domain.RemovalFailure{
					Package: pkg,
					Reason:  err.Error(),
				})
				continue
			}
			report.Removed = append(report.Removed, pkg)
		}
	}

	return report
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error)  {}
