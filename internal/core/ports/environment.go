// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pyprune/internal/core/domain"

// EnvironmentProbe inspects the ambient Python environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentProbe interface {
	// Probe returns a snapshot of the current environment. It has no side effects.
	Probe() domain.Environment
}
