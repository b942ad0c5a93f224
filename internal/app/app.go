// Package app implements the application layer for pyprune.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/pyprune/internal/engine/cleanup"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	toolchains   ports.ToolchainFactory
	probe        ports.EnvironmentProbe
	confirmer    ports.Confirmer
	renderer     ports.Renderer
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	toolchains ports.ToolchainFactory,
	probe ports.EnvironmentProbe,
	confirmer ports.Confirmer,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		toolchains:   toolchains,
		probe:        probe,
		confirmer:    confirmer,
		renderer:     renderer,
		logger:       log,
	}
}

// WithWorkDir sets the directory configuration discovery starts from.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	Target     domain.Target
	Mode       domain.Mode
}

// Clean runs the cleanup engine in the requested mode.
// Per-package removal failures are reported, not returned.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	if opts.Mode.Removes() && opts.Target == domain.TargetNone {
		return domain.ErrTargetRequired
	}

	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	env := a.probe.Probe()
	engine := cleanup.New(
		a.toolchains.PackageManager(cfg.Toolchain),
		domain.NewProtectedSet(cfg.Protection),
		env,
		cleanup.WithBatchSize(cfg.BatchSize),
		cleanup.WithLogger(a.logger),
	)

	if opts.Target != domain.TargetNone {
		if err := engine.Guard(opts.Target); err != nil {
			return err
		}
	}

	a.renderer.Banner(opts.Mode, opts.Target, env)

	plan, err := engine.Plan(ctx)
	if err != nil {
		return err
	}

	switch opts.Mode {
	case domain.ModeInfo:
		a.renderer.Summary(plan)
		return nil
	case domain.ModeDryRun:
		a.renderer.Plan(plan)
		return nil
	}

	a.renderer.Plan(plan)
	if len(plan.Removable) == 0 {
		return nil
	}

	if opts.Mode == domain.ModeInteractive {
		ok, err := a.confirmer.Confirm(fmt.Sprintf("Remove %d package(s) from the %s environment?",
			len(plan.Removable), opts.Target))
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info("cleanup aborted, no changes made")
			return nil
		}
	}

	report := engine.Remove(ctx, plan)
	a.renderer.Removal(report)

	if n := len(report.Failed); n > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d package(s) could not be removed", n, report.Attempted()))
	}
	return nil
}

// ReportOptions configuration for the Report method.
type ReportOptions struct {
	ConfigPath string
	Sample     int
}

// Report prints the environment report. Collaborator failures leave the
// affected fields empty and are logged as warnings.
func (a *App) Report(ctx context.Context, opts ReportOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	manager := a.toolchains.PackageManager(cfg.Toolchain)
	interpreter := a.toolchains.Interpreter(cfg.Toolchain)

	report := &domain.EnvironmentReport{Environment: a.probe.Probe()}

	var (
		interpVersion               string
		info                        domain.ManagerInfo
		pkgs                        []domain.Package
		interpErr, infoErr, listErr error
	)

	// Probes run concurrently. A failed probe degrades only its own fields, so
	// probes never fail the group; failures are degraded afterwards in a fixed order.
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		interpVersion, interpErr = interpreter.Version(groupCtx)
		return nil
	})
	g.Go(func() error {
		info, infoErr = manager.Info(groupCtx)
		return nil
	})
	g.Go(func() error {
		pkgs, listErr = manager.List(groupCtx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrReportInterrupted.Error())
	}

	if interpErr != nil {
		a.degrade(report, interpErr)
	} else {
		report.InterpreterVersion = interpVersion
	}

	if infoErr != nil {
		a.degrade(report, infoErr)
	} else {
		report.ManagerVersion = info.Version
		report.Location = info.Location
		if !info.JSONListing {
			a.warn(report, fmt.Sprintf("pip %s is older than %s and cannot list packages as JSON",
				info.Version, domain.MinJSONListingVersion))
		}
	}

	if listErr != nil {
		a.degrade(report, listErr)
	} else {
		report.PackageCount = len(pkgs)
		report.PackagesKnown = true
		report.Sample = pkgs[:min(max(opts.Sample, 0), len(pkgs))]
	}

	a.renderer.Environment(report)
	return nil
}

func (a *App) degrade(report *domain.EnvironmentReport, err error) {
	a.warn(report, err.Error())
}

func (a *App) warn(report *domain.EnvironmentReport, msg string) {
	a.logger.Warn(msg)
	report.Warnings = append(report.Warnings, msg)
}

func (a *App) loadConfig(path string) (*domain.Config, error) {
	cwd := a.workDir
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		cwd = wd
	}

	return a.configLoader.Load(cwd, path)
}
