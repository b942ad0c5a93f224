package domain

// EnvironmentReport is the read-only snapshot rendered by the environment reporter.
// Fields that could not be queried are left empty.
type EnvironmentReport struct {
	InterpreterVersion string
	ManagerVersion     string
	Location           string
	Environment        Environment

	// PackageCount is only meaningful when PackagesKnown is true.
	PackageCount  int
	PackagesKnown bool

	// Sample holds the first packages of the listing, in manager order.
	Sample []Package

	Warnings []string
}
