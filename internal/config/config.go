// Package config loads the user's build configuration.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"sigs.k8s.io/yaml"

	"github.com/llvmconf/llvmconf/llvm"
	"github.com/llvmconf/llvmconf/resolve"
)

// Config is the user-facing build configuration. Values come from the
// environment first (LLVMCONF_* variables over the listed defaults),
// then from the optional YAML file, which wins.
type Config struct {
	MinVersion     string `json:"minVersion" env:"LLVMCONF_MIN_VERSION, default=9.0"`
	SoftMaxVersion string `json:"softMaxVersion" env:"LLVMCONF_SOFT_MAX_VERSION, default=14.0"`
	WithRTTI       bool   `json:"withRTTI" env:"LLVMCONF_WITH_RTTI"`
	WithExceptions bool   `json:"withExceptions" env:"LLVMCONF_WITH_EXCEPTIONS, default=true"`
	Toolchain      string `json:"toolchain" env:"LLVMCONF_TOOLCHAIN, default=gnu"`
	LogLevel       string `json:"logLevel" env:"LLVMCONF_LOG_LEVEL, default=info"`

	// Targets forces capabilities on or off by name ("on"/"off");
	// anything not listed follows detection.
	Targets map[string]string `json:"targets"`
}

// Read loads the configuration, merging the environment with the YAML
// file at path. An empty path means environment and defaults only.
func Read(ctx context.Context, path string) (*Config, error) {
	var c Config
	if err := envconfig.Process(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return &c, nil
}

// Resolve converts the loaded configuration into the resolver's input
// form, validating versions and target states.
func (c *Config) Resolve() (resolve.Config, error) {
	min, err := llvm.ParseVersion(c.MinVersion)
	if err != nil {
		return resolve.Config{}, fmt.Errorf("minVersion: %w", err)
	}
	softMax, err := llvm.ParseVersion(c.SoftMaxVersion)
	if err != nil {
		return resolve.Config{}, fmt.Errorf("softMaxVersion: %w", err)
	}

	overrides := make(map[string]resolve.Override, len(c.Targets))
	for name, state := range c.Targets {
		switch state {
		case "on", "true":
			overrides[name] = resolve.ForceOn
		case "off", "false":
			overrides[name] = resolve.ForceOff
		default:
			return resolve.Config{}, fmt.Errorf("target %s: invalid state %q, want on or off", name, state)
		}
	}

	return resolve.Config{
		MinVersion:     min,
		SoftMaxVersion: softMax,
		Overrides:      overrides,
		WithRTTI:       c.WithRTTI,
		WithExceptions: c.WithExceptions,
		Toolchain:      c.Toolchain,
	}, nil
}
