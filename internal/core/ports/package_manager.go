package ports

import (
	"context"

	"go.trai.ch/pyprune/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// PackageManager is the external collaborator that owns the package database.
type PackageManager interface {
	// List returns every installed package with its version.
	List(ctx context.Context) ([]domain.Package, error)

	// Uninstall removes a single package. Each call is independent.
	Uninstall(ctx context.Context, name string) error

	// Info describes the package manager itself.
	Info(ctx context.Context) (domain.ManagerInfo, error)
}

// Interpreter is the Python interpreter the package manager belongs to.
type Interpreter interface {
	// Version returns the interpreter version string (e.g., "Python 3.12.4").
	Version(ctx context.Context) (string, error)
}

// ToolchainFactory builds collaborators for a configured toolchain.
type ToolchainFactory interface {
	PackageManager(tc domain.Toolchain) PackageManager
	Interpreter(tc domain.Toolchain) Interpreter
}
