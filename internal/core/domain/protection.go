package domain

import (
	"slices"
	"strings"
)

// DefaultProtectedNames lists the toolchain and platform packages never removed by default.
var DefaultProtectedNames = []string{
	"pip", "setuptools", "wheel", "distlib", "packaging", "pyobjc-core",
	"certifi", "urllib3", "charset-normalizer", "idna", "requests",
	"six", "python-dateutil", "pytz", "platformdirs", "virtualenv",
}

// DefaultProtectedPrefixes lists the package families protected by prefix.
// "pyobjc-" covers the macOS framework bindings shipped with the system interpreter.
var DefaultProtectedPrefixes = []string{"pyobjc-"}

// Protector decides whether a package name is exempt from removal.
type Protector interface {
	IsProtected(name string) bool
}

// ProtectorFunc adapts a plain function to the Protector interface.
type ProtectorFunc func(name string) bool

// IsProtected calls f(name).
func (f ProtectorFunc) IsProtected(name string) bool {
	return f(name)
}

// ProtectionRules is the declarative form of a protected set: exact names and name prefixes.
type ProtectionRules struct {
	Names    []string
	Prefixes []string
}

// DefaultProtectionRules returns a copy of the built-in protection table.
func DefaultProtectionRules() ProtectionRules {
	return ProtectionRules{
		Names:    slices.Clone(DefaultProtectedNames),
		Prefixes: slices.Clone(DefaultProtectedPrefixes),
	}
}

// ProtectedSet is a rule-based Protector. Matching is case-insensitive.
// It is immutable once built.
type ProtectedSet struct {
	names    map[string]struct{}
	prefixes []string
}

// NewProtectedSet builds a ProtectedSet from the given rules.
// Empty entries are ignored; validation happens when rules are loaded.
func NewProtectedSet(rules ProtectionRules) *ProtectedSet {
	s := &ProtectedSet{
		names:    make(map[string]struct{}, len(rules.Names)),
		prefixes: make([]string, 0, len(rules.Prefixes)),
	}
	for _, n := range rules.Names {
		n = normalizeName(n)
		if n != "" {
			s.names[n] = struct{}{}
		}
	}
	for _, p := range rules.Prefixes {
		p = normalizeName(p)
		if p != "" && !slices.Contains(s.prefixes, p) {
			s.prefixes = append(s.prefixes, p)
		}
	}
	return s
}

// IsProtected reports whether name is an exact member of the set or matches a prefix rule.
func (s *ProtectedSet) IsProtected(name string) bool {
	key := normalizeName(name)
	if _, ok := s.names[key]; ok {
		return true
	}
	for _, p := range s.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
