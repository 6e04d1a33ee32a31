package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the cybersearch configuration shared by all frontends.
type Config struct {
	Server    ServerConfig             `yaml:"server"`
	Auth      AuthConfig               `yaml:"auth"`
	Logging   LoggingConfig            `yaml:"logging"`
	Browser   BrowserConfig            `yaml:"browser"`
	Profiles  map[string]ProfileConfig `yaml:"profiles"`
	Frontends FrontendsConfig          `yaml:"frontends"`
}

// ServerConfig holds HTTP server settings for the serve frontend.
type ServerConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AuthConfig holds API authentication settings.
// An empty key list disables authentication.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Format string `yaml:"format"` // console, json (default: per frontend)
	Level  string `yaml:"level"`  // debug, info, warn, error
	File   string `yaml:"file"`   // reroute output, used by the panel
}

// BrowserConfig holds URL launcher settings.
type BrowserConfig struct {
	Command  string `yaml:"command"` // overrides the per-OS default launcher
	Disabled bool   `yaml:"disabled"`
}

// ProfileConfig is a named generation parameter preset.
type ProfileConfig struct {
	Vectors int `yaml:"vectors"`
	Density int `yaml:"density"`
	Page    int `yaml:"page"`
}

// FrontendsConfig maps each frontend to its default profile.
type FrontendsConfig struct {
	CLI   string `yaml:"cli"`
	Panel string `yaml:"panel"`
	API   string `yaml:"api"`
}

// DefaultProfile is the preset used when nothing else is configured.
const DefaultProfile = "default"

// Load reads configuration from a YAML file. An empty path triggers
// discovery (./cybersearch.yaml, then the user config dir); a missing
// discovered file yields the built-in defaults. An explicit path that
// cannot be read is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigPath()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeoutSec <= 0 {
		c.Server.ReadTimeoutSec = 10
	}
	if c.Server.WriteTimeoutSec <= 0 {
		c.Server.WriteTimeoutSec = 10
	}
	if c.Server.ShutdownSec <= 0 {
		c.Server.ShutdownSec = 10
	}
	if c.Profiles == nil {
		c.Profiles = map[string]ProfileConfig{}
	}
	if _, ok := c.Profiles[DefaultProfile]; !ok {
		c.Profiles[DefaultProfile] = ProfileConfig{Vectors: 10, Density: 257, Page: 0}
	}
	if c.Frontends.CLI == "" {
		c.Frontends.CLI = DefaultProfile
	}
	if c.Frontends.Panel == "" {
		c.Frontends.Panel = DefaultProfile
	}
	if c.Frontends.API == "" {
		c.Frontends.API = DefaultProfile
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	for frontend, profile := range map[string]string{
		"frontends.cli":   c.Frontends.CLI,
		"frontends.panel": c.Frontends.Panel,
		"frontends.api":   c.Frontends.API,
	} {
		if _, ok := c.Profiles[profile]; !ok {
			return fmt.Errorf("%s references unknown profile %q", frontend, profile)
		}
	}
	return nil
}

// Profile resolves a named preset, falling back to the default profile
// for an empty name.
func (c *Config) Profile(name string) (ProfileConfig, error) {
	if name == "" {
		name = DefaultProfile
	}
	p, ok := c.Profiles[name]
	if !ok {
		return ProfileConfig{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// findConfigPath locates the config file.
func findConfigPath() string {
	// 1. Check the working directory
	if path := "cybersearch.yaml"; fileExists(path) {
		return path
	}

	// 2. Check the user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		if path := filepath.Join(dir, "cybersearch", "config.yaml"); fileExists(path) {
			return path
		}
	}

	// 3. Fallback to the working directory
	return "cybersearch.yaml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
