// Package config loads enumgen settings from enumgen.yml and ENUMGEN_*
// environment variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
)

// Config represents the enumgen configuration
type Config struct {
	SourceDir       string      `mapstructure:"source_dir"`
	OutputSuffix    string      `mapstructure:"output_suffix"`
	RuntimeImport   string      `mapstructure:"runtime_import"`
	AllowDuplicates bool        `mapstructure:"allow_duplicates"`
	PrefixConstants bool        `mapstructure:"prefix_constants"`
	Watch           WatchConfig `mapstructure:"watch"`
	Verbose         bool        `mapstructure:"verbose"`
}

// WatchConfig represents watch mode configuration
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Load loads the configuration from enumgen.yml or enumgen.yaml in the
// working directory
func Load() (*Config, error) {
	return LoadDir(".")
}

// LoadDir loads the configuration from enumgen.yml or enumgen.yaml in dir.
// A relative source_dir is resolved against dir.
func LoadDir(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("source_dir", ".")
	v.SetDefault("output_suffix", "_enum.go")
	v.SetDefault("runtime_import", codegen.DefaultRuntimeImport)
	v.SetDefault("allow_duplicates", false)
	v.SetDefault("prefix_constants", true)
	v.SetDefault("watch.debounce_ms", 100)
	v.SetDefault("verbose", false)

	v.SetConfigName("enumgen")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// ENUMGEN_SOURCE_DIR, ENUMGEN_WATCH_DEBOUNCE_MS, ...
	v.SetEnvPrefix("ENUMGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(config.SourceDir) {
		config.SourceDir = filepath.Join(dir, config.SourceDir)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	return &Config{
		SourceDir:       ".",
		OutputSuffix:    "_enum.go",
		RuntimeImport:   codegen.DefaultRuntimeImport,
		PrefixConstants: true,
		Watch:           WatchConfig{DebounceMS: 100},
	}
}

// CheckerOptions returns the semantic checker settings
func (c *Config) CheckerOptions() checker.Options {
	return checker.Options{
		AllowDuplicates: c.AllowDuplicates,
		PrefixConstants: c.PrefixConstants,
	}
}

// CodegenOptions returns the generator settings for one declaration file
func (c *Config) CodegenOptions(source string) codegen.Options {
	return codegen.Options{
		RuntimeImport:   c.RuntimeImport,
		PrefixConstants: c.PrefixConstants,
		Source:          source,
	}
}

// Debounce returns the watch debounce interval
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if !strings.HasSuffix(cfg.OutputSuffix, ".go") {
		return fmt.Errorf("output_suffix must end with '.go', got: %s", cfg.OutputSuffix)
	}
	if strings.ContainsAny(cfg.OutputSuffix, `/\`) {
		return fmt.Errorf("output_suffix must not contain a path separator, got: %s", cfg.OutputSuffix)
	}
	if cfg.RuntimeImport == "" {
		return fmt.Errorf("runtime_import must not be empty")
	}
	if cfg.Watch.DebounceMS <= 0 {
		return fmt.Errorf("watch.debounce_ms must be positive, got: %d", cfg.Watch.DebounceMS)
	}
	return nil
}
