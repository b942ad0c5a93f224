package domain

import (
	"slices"
	"strings"
)

// Package is a single installed distribution as reported by the package manager.
type Package struct {
	// Name is the distribution name as the package manager reports it (e.g., "Flask").
	Name string

	// Version is the installed version string (e.g., "2.3.3").
	Version string
}

// Key returns the case-insensitive identity of the package.
func (p Package) Key() string {
	return strings.ToLower(p.Name)
}

// String renders the package as "name (version)".
func (p Package) String() string {
	return p.Name + " (" + p.Version + ")"
}

// Names returns the names of the given packages, preserving order.
func Names(pkgs []Package) []string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name
	}
	return names
}

// SortPackages orders packages by their lowercase name.
func SortPackages(pkgs []Package) {
	slices.SortStableFunc(pkgs, func(a, b Package) int {
		return strings.Compare(a.Key(), b.Key())
	})
}

// ManagerInfo describes the package manager itself.
type ManagerInfo struct {
	// Version is the package manager version (e.g., "24.2").
	Version string

	// Location is the site-packages directory the manager installs into.
	Location string

	// Python is the interpreter tag the manager reports (e.g., "3.12").
	Python string

	// JSONListing reports whether the manager supports machine-readable listings.
	JSONListing bool
}
