// Package python provides the pip and interpreter adapters.
package python

import (
	"context"
	"encoding/json"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"
	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// pipVersionPattern matches "pip 24.2 from /path/to/site-packages/pip (python 3.12)".
var pipVersionPattern = regexp.MustCompile(`^pip (\S+) from (.+?) \(python ([^)]+)\)\s*$`)

var minJSONListingVersion = version.Must(version.NewVersion(domain.MinJSONListingVersion))

// Manager implements ports.PackageManager using the pip CLI.
type Manager struct {
	runner  ports.CommandRunner
	command []string
}

// NewManager creates a Manager invoking pip through command (e.g., ["python3", "-m", "pip"]).
func NewManager(runner ports.CommandRunner, command []string) *Manager {
	return &Manager{
		runner:  runner,
		command: slices.Clone(command),
	}
}

type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// List returns the installed packages in the order pip reports them.
func (m *Manager) List(ctx context.Context) ([]domain.Package, error) {
	out, err := m.runner.Run(ctx, m.argv("list", "--format=json", "--disable-pip-version-check"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageQueryFailed.Error())
	}

	var entries []listEntry
	if err := json.Unmarshal(out, &entries); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrPackageListParseFailed.Error())
		return nil, zerr.With(parseErr, "output", truncate(string(out), 200))
	}

	pkgs := make([]domain.Package, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		pkgs = append(pkgs, domain.Package{Name: e.Name, Version: e.Version})
	}
	return pkgs, nil
}

// Uninstall removes a single package without prompting.
func (m *Manager) Uninstall(ctx context.Context, name string) error {
	if _, err := m.runner.Run(ctx, m.argv("uninstall", "-y", name)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUninstallFailed.Error()), "package", name)
	}
	return nil
}

// Info runs "pip --version" and parses its output.
func (m *Manager) Info(ctx context.Context) (domain.ManagerInfo, error) {
	out, err := m.runner.Run(ctx, m.argv("--version"))
	if err != nil {
		return domain.ManagerInfo{}, zerr.Wrap(err, domain.ErrManagerInfoFailed.Error())
	}
	return ParseVersionOutput(string(out))
}

// ParseVersionOutput parses the output of "pip --version".
// The install location is the parent of the reported pip package directory.
func ParseVersionOutput(out string) (domain.ManagerInfo, error) {
	line := strings.TrimSpace(out)
	match := pipVersionPattern.FindStringSubmatch(line)
	if match == nil {
		return domain.ManagerInfo{}, zerr.With(domain.ErrManagerInfoFailed, "output", truncate(line, 200))
	}

	location := strings.TrimSuffix(match[2], "/pip")
	location = strings.TrimSuffix(location, `\pip`)

	return domain.ManagerInfo{
		Version:     match[1],
		Location:    location,
		Python:      match[3],
		JSONListing: SupportsJSONListing(match[1]),
	}, nil
}

// SupportsJSONListing reports whether the pip version supports "list --format=json".
// Unparseable versions are assumed to be modern.
func SupportsJSONListing(pipVersion string) bool {
	v, err := version.NewVersion(pipVersion)
	if err != nil {
		return true
	}
	return v.GreaterThanOrEqual(minJSONListingVersion)
}

func (m *Manager) argv(args ...string) []string {
	argv := make([]string, 0, len(m.command)+len(args))
	argv = append(argv, m.command...)
	return append(argv, args...)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
