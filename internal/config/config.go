package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ytget/safe-browser/internal/platform"
)

// File configuration locations
const (
	EnvPrefix      = "SAFEBROWSER_"
	AppDirName     = "safe-browser"
	ConfigFileName = "config.yaml"
	StoreFileName  = "allowed_urls.json"
)

// DefaultDir returns the per-user configuration directory for the app
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(dir, AppDirName)
}

// DefaultConfigPath returns the default YAML configuration path
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	exportDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		exportDir = DefaultDir()
	}

	return &Config{
		StorePath: filepath.Join(DefaultDir(), StoreFileName),
		ExportDir: exportDir,
		Renderer:  DefaultRenderer,
		Headless:  DefaultHeadless,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SAFEBROWSER_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// SAFEBROWSER_STORE_PATH -> store_path, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path is required")
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir is required")
	}
	switch c.Renderer {
	case "", RendererChrome, RendererSystem:
	default:
		return fmt.Errorf("invalid renderer %q: must be one of chrome, system", c.Renderer)
	}
	return nil
}

// HasOverrides reports whether a config file exists at path or any
// SAFEBROWSER_* variable is set
func HasOverrides(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, EnvPrefix) {
			return true
		}
	}
	return false
}
