package ports

import "context"

// CommandRunner defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes argv[0] with the remaining arguments and returns its standard output.
	//
	// A non-zero exit is returned as an error carrying the trimmed standard error.
	Run(ctx context.Context, argv []string) ([]byte, error)
}
