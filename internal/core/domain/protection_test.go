package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pyprune/internal/core/domain"
)

func TestProtectedSet_IsProtected(t *testing.T) {
	set := domain.NewProtectedSet(domain.ProtectionRules{
		Names:    []string{"pip", "SetupTools", " wheel "},
		Prefixes: []string{"PyObjC-"},
	})

	tests := []struct {
		name string
		pkg  string
		want bool
	}{
		{name: "exact match", pkg: "pip", want: true},
		{name: "case-insensitive name", pkg: "PIP", want: true},
		{name: "rule stored in mixed case", pkg: "setuptools", want: true},
		{name: "rule with surrounding space", pkg: "wheel", want: true},
		{name: "prefix match", pkg: "pyobjc-framework-Cocoa", want: true},
		{name: "prefix match in upper case", pkg: "PYOBJC-core", want: true},
		{name: "prefix without dash is not a match", pkg: "pyobjc", want: false},
		{name: "unprotected package", pkg: "flask", want: false},
		{name: "name containing a protected name", pkg: "pip-tools", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.IsProtected(tt.pkg))
		})
	}
}

func TestProtectedSet_IgnoresEmptyRules(t *testing.T) {
	set := domain.NewProtectedSet(domain.ProtectionRules{
		Names:    []string{"", "  "},
		Prefixes: []string{""},
	})

	assert.False(t, set.IsProtected(""))
	assert.False(t, set.IsProtected("anything"), "an empty prefix must not match every name")
}

func TestDefaultProtectionRules(t *testing.T) {
	rules := domain.DefaultProtectionRules()
	set := domain.NewProtectedSet(rules)

	for _, name := range domain.DefaultProtectedNames {
		assert.True(t, set.IsProtected(name), name)
	}
	assert.True(t, set.IsProtected("pyobjc-framework-Quartz"))

	// The returned rules are a copy.
	rules.Names[0] = "mutated"
	assert.Equal(t, "pip", domain.DefaultProtectedNames[0])
}

func TestProtectorFunc(t *testing.T) {
	var calls []string
	p := domain.ProtectorFunc(func(name string) bool {
		calls = append(calls, name)
		return name == "keep"
	})

	assert.True(t, p.IsProtected("keep"))
	assert.False(t, p.IsProtected("drop"))
	assert.Equal(t, []string{"keep", "drop"}, calls)
}
