// Package config provides the configuration loader for pyprune.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pyprune/internal/core/domain"
	"go.trai.ch/pyprune/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the runtime configuration.
// An explicit path must exist. Otherwise pyprune.yaml is searched for from cwd upwards,
// and the built-in defaults apply when none is found.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return l.loadPrunefile(path)
	}

	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(), nil
	}
	return l.loadPrunefile(configPath)
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadPrunefile(configPath string) (*domain.Config, error) {
	var prunefile Prunefile
	if err := readAndUnmarshalYAML(configPath, &prunefile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if prunefile.Version != "" && prunefile.Version != domain.ConfigVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", prunefile.Version),
			"path", configPath)
	}

	cfg := domain.DefaultConfig()
	cfg.Source = configPath

	if prunefile.BatchSize != nil {
		if *prunefile.BatchSize < 1 {
			return nil, zerr.With(domain.ErrInvalidBatchSize, "batch_size", *prunefile.BatchSize)
		}
		cfg.BatchSize = *prunefile.BatchSize
	}

	protection, err := resolveProtection(prunefile.Protected)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	cfg.Protection = protection

	if len(prunefile.Toolchain.Pip) > 0 {
		cfg.Toolchain.Pip = slices.Clone(prunefile.Toolchain.Pip)
	}
	if len(prunefile.Toolchain.Python) > 0 {
		cfg.Toolchain.Python = slices.Clone(prunefile.Toolchain.Python)
	}

	if l.Logger != nil {
		l.Logger.Info(fmt.Sprintf("using configuration from %s", configPath))
	}

	return cfg, nil
}

func resolveProtection(dto ProtectedDTO) (domain.ProtectionRules, error) {
	names, err := normalizeRules("names", dto.Names)
	if err != nil {
		return domain.ProtectionRules{}, err
	}
	prefixes, err := normalizeRules("prefixes", dto.Prefixes)
	if err != nil {
		return domain.ProtectionRules{}, err
	}

	rules := domain.ProtectionRules{}
	if dto.InheritDefaults == nil || *dto.InheritDefaults {
		rules = domain.DefaultProtectionRules()
	}

	rules.Names = mergeUnique(rules.Names, names)
	rules.Prefixes = mergeUnique(rules.Prefixes, prefixes)
	return rules, nil
}

func normalizeRules(field string, entries []string) ([]string, error) {
	out := make([]string, 0, len(entries))
	for i, entry := range entries {
		norm := strings.ToLower(strings.TrimSpace(entry))
		if norm == "" {
			return nil, zerr.With(domain.ErrInvalidProtectionRule, "field", fmt.Sprintf("protected.%s[%d]", field, i))
		}
		out = append(out, norm)
	}
	return out, nil
}

func mergeUnique(base, extra []string) []string {
	merged := slices.Concat(base, extra)
	slices.Sort(merged)
	return slices.Compact(merged)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
