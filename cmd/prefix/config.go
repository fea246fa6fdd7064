package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zephyrtronium/prefix"
)

// Config holds settings which may come from a TOML file or from flags.
type Config struct {
	LegacySubstitution bool `toml:"legacy_substitution"`
	AllowTrailing      bool `toml:"allow_trailing"`
	MaxDepth           int  `toml:"max_depth"`
	Jobs               int  `toml:"jobs"`
}

// LoadConfig reads a config file. Keys which do not name a setting are
// errors.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if u := md.Undecoded(); len(u) != 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// merge overrides settings in cfg with those in flags for which changed
// reports true.
func (cfg *Config) merge(flags *Config, changed func(name string) bool) {
	if changed("legacy") {
		cfg.LegacySubstitution = flags.LegacySubstitution
	}
	if changed("allow-trailing") {
		cfg.AllowTrailing = flags.AllowTrailing
	}
	if changed("max-depth") {
		cfg.MaxDepth = flags.MaxDepth
	}
	if changed("jobs") {
		cfg.Jobs = flags.Jobs
	}
}

// jobs returns the evaluation concurrency limit.
func (cfg *Config) jobs() int {
	if cfg.Jobs < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return cfg.Jobs
}

func (cfg *Config) parseOptions() []prefix.ParseOption {
	if cfg.AllowTrailing {
		return []prefix.ParseOption{prefix.AllowTrailing()}
	}
	return nil
}

func (cfg *Config) contextOptions() []prefix.ContextOption {
	opts := []prefix.ContextOption{prefix.MaxDepth(cfg.MaxDepth)}
	if cfg.LegacySubstitution {
		opts = append(opts, prefix.LegacySubstitution())
	}
	return opts
}
