package domain

// Plan is the partition of one package snapshot into protected and removable packages.
type Plan struct {
	Installed []Package
	Protected []Package
	Removable []Package
}

// Classify partitions installed packages using the protector.
// Both output lists are sorted by lowercase name. Duplicate names (case-insensitive)
// keep only their first occurrence.
func Classify(installed []Package, protector Protector) *Plan {
	plan := &Plan{
		Installed: make([]Package, 0, len(installed)),
	}

	seen := make(map[string]struct{}, len(installed))
	for _, pkg := range installed {
		if _, dup := seen[pkg.Key()]; dup {
			continue
		}
		seen[pkg.Key()] = struct{}{}
		plan.Installed = append(plan.Installed, pkg)

		if protector.IsProtected(pkg.Name) {
			plan.Protected = append(plan.Protected, pkg)
		} else {
			plan.Removable = append(plan.Removable, pkg)
		}
	}

	SortPackages(plan.Protected)
	SortPackages(plan.Removable)
	return plan
}

// Batches splits pkgs into consecutive groups of at most size elements.
// A size below one is treated as one.
func Batches(pkgs []Package, size int) [][]Package {
	if size < 1 {
		size = 1
	}
	batches := make([][]Package, 0, (len(pkgs)+size-1)/size)
	for start := 0; start < len(pkgs); start += size {
		end := min(start+size, len(pkgs))
		batches = append(batches, pkgs[start:end])
	}
	return batches
}

// RemovalFailure records a package that could not be uninstalled.
type RemovalFailure struct {
	Package Package
	Reason  string
}

// RemovalReport summarizes a completed removal run.
type RemovalReport struct {
	Removed        []Package
	Failed         []RemovalFailure
	ProtectedCount int
	Batches        int
}

// Attempted returns the number of uninstall calls made.
func (r *RemovalReport) Attempted() int {
	return len(r.Removed) + len(r.Failed)
}
