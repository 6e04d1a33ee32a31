package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log format")
	}

	expected := `logging.format must be "console" or "json", got "xml"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidLogFormats(t *testing.T) {
	for _, format := range []string{"", "console", "json"} {
		t.Run("format="+format, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Format = format
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid format %q: %v", format, err)
			}
		})
	}
}

func TestValidate_UnknownFrontendProfile(t *testing.T) {
	cfg := Default()
	cfg.Frontends.Panel = "missing"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown profile reference")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.Server.ReadTimeoutSec)
	}
	if cfg.Server.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.Server.WriteTimeoutSec)
	}
	if cfg.Server.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.Server.ShutdownSec)
	}

	def, ok := cfg.Profiles[DefaultProfile]
	if !ok {
		t.Fatal("default profile not injected")
	}
	if def.Vectors != 10 || def.Density != 257 || def.Page != 0 {
		t.Errorf("default profile = %+v", def)
	}

	if cfg.Frontends.CLI != DefaultProfile || cfg.Frontends.Panel != DefaultProfile || cfg.Frontends.API != DefaultProfile {
		t.Errorf("frontend defaults = %+v", cfg.Frontends)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 9000, ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Profiles: map[string]ProfileConfig{
			DefaultProfile: {Vectors: 5, Density: 300, Page: 1},
		},
		Frontends: FrontendsConfig{CLI: "custom", Panel: "custom", API: "custom"},
	}
	cfg.ApplyDefaults()

	if cfg.Server.Port != 9000 {
		t.Errorf("expected Port=9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.Server.ReadTimeoutSec)
	}
	if cfg.Profiles[DefaultProfile].Vectors != 5 {
		t.Errorf("default profile overridden: %+v", cfg.Profiles[DefaultProfile])
	}
	if cfg.Frontends.CLI != "custom" {
		t.Errorf("expected CLI profile 'custom', got %q", cfg.Frontends.CLI)
	}
}

func TestProfile(t *testing.T) {
	cfg := Default()
	cfg.Profiles["sweep"] = ProfileConfig{Vectors: 20, Density: 512, Page: 0}

	p, err := cfg.Profile("sweep")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Vectors != 20 || p.Density != 512 {
		t.Errorf("profile = %+v", p)
	}

	// empty name resolves the default profile
	p, err = cfg.Profile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Vectors != 10 {
		t.Errorf("default profile = %+v", p)
	}

	if _, err := cfg.Profile("nope"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Setenv("CYBERSEARCH_PORT", "9090")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  port: ${CYBERSEARCH_PORT:-8080}
profiles:
  paging:
    vectors: 10
    density: 257
    page: 1
frontends:
  panel: paging
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("env expansion failed: Port = %d", cfg.Server.Port)
	}
	if cfg.Frontends.Panel != "paging" {
		t.Errorf("Frontends.Panel = %q", cfg.Frontends.Panel)
	}
	if _, ok := cfg.Profiles[DefaultProfile]; !ok {
		t.Error("default profile not injected on load")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_DiscoveryFallsBackToDefaults(t *testing.T) {
	// run from a directory with no config file anywhere in the search path
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want built-in default", cfg.Server.Port)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CS_SET", "value")

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"${CS_SET}", "value"},
		{"${CS_UNSET_VAR}", ""},
		{"${CS_UNSET_VAR:-fallback}", "fallback"},
		{"${CS_SET:-fallback}", "value"},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
