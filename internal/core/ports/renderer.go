package ports

import "go.trai.ch/pyprune/internal/core/domain"

// Renderer presents reports to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Banner announces what is about to happen.
	Banner(mode domain.Mode, target domain.Target, env domain.Environment)

	// Summary prints the total, protected and removable counts.
	Summary(plan *domain.Plan)

	// Plan prints the counts followed by the full removable and protected lists.
	Plan(plan *domain.Plan)

	// Removal prints the outcome of a removal run.
	Removal(report *domain.RemovalReport)

	// Environment prints the environment report.
	Environment(report *domain.EnvironmentReport)
}
