package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dropin-dev/dropin/internal/version"
)

// settingsKeyNone disables persistence for a deployment.
const settingsKeyNone = "none"

// Load reads, defaults, and validates a dropin.yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ApplyDefaults fills derivable fields: filename from the source
// basename, settings key from the deployment name.
func ApplyDefaults(cfg *Config) {
	if cfg.SettingsFile == "" {
		cfg.SettingsFile = "dropin-settings.yaml"
	}
	for i := range cfg.Deployments {
		d := &cfg.Deployments[i]
		if d.Filename == "" && d.Source != "" {
			d.Filename = filepath.Base(d.Source)
		}
		if d.SettingsKey == "" {
			d.SettingsKey = d.Name
		}
	}
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if len(cfg.Deployments) == 0 {
		errs = append(errs, "at least one deployment is required")
	}

	names := make(map[string]bool)
	for i, d := range cfg.Deployments {
		prefix := fmt.Sprintf("deployment[%d]", i)
		if d.Name != "" {
			prefix = fmt.Sprintf("deployment '%s'", d.Name)
		}

		if d.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		} else if names[d.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate deployment name '%s'", prefix, d.Name))
		} else {
			names[d.Name] = true
		}

		if d.Source == "" {
			errs = append(errs, fmt.Sprintf("%s: 'source' is required", prefix))
		}
		if d.DestDir == "" {
			errs = append(errs, fmt.Sprintf("%s: 'dest_dir' is required", prefix))
		}
		if strings.ContainsAny(d.Filename, `/\`) {
			errs = append(errs, fmt.Sprintf("%s: 'filename' must not contain path separators", prefix))
		}

		if d.Version == "" {
			errs = append(errs, fmt.Sprintf("%s: 'version' is required", prefix))
		} else if !version.Valid(d.Version) {
			errs = append(errs, fmt.Sprintf("%s: invalid version '%s'", prefix, d.Version))
		}
	}

	return errs
}

// Persisted reports whether the deployment records its installed
// version.
func (d Deployment) Persisted() bool {
	return d.SettingsKey != "" && d.SettingsKey != settingsKeyNone
}

// EffectiveSettingsKey returns the settings key, or "" when persistence
// is disabled.
func (d Deployment) EffectiveSettingsKey() string {
	if !d.Persisted() {
		return ""
	}
	return d.SettingsKey
}
