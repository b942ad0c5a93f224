package ports

// Confirmer asks the user a yes/no question.
//
//go:generate go run go.uber.org/mock/mockgen -source=confirmer.go -destination=mocks/mock_confirmer.go -package=mocks
type Confirmer interface {
	// Confirm returns true only for an explicit affirmative answer.
	Confirm(label string) (bool, error)
}
