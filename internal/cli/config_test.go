package cli

import (
	"os"
	"path/filepath"
	"testing"

	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{pkgconfig.EnvBaseURL, pkgconfig.EnvPartnerID, pkgconfig.EnvDepth, pkgconfig.EnvDebug} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultProfile != "default" {
		t.Errorf("DefaultProfile = %q, want default", cfg.DefaultProfile)
	}
	if cfg.Profiles["default"].BaseURL != pkgconfig.DefaultBaseURL {
		t.Errorf("default profile base URL = %q", cfg.Profiles["default"].BaseURL)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file falls back", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.DefaultProfile != "default" {
			t.Errorf("DefaultProfile = %q", cfg.DefaultProfile)
		}
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadConfig() should fail for a missing explicit path")
		}
	})

	t.Run("parses profiles", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
default_profile: prod
profiles:
  prod:
    base_url: https://tapestry.example.test/tapestry/1
    partner_id: "1234"
    default_depth: 2
    strict: true
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		p := cfg.Profiles["prod"]
		if cfg.DefaultProfile != "prod" || p.PartnerID != "1234" || !p.Strict {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if p.DefaultDepth == nil || *p.DefaultDepth != 2 {
			t.Errorf("DefaultDepth = %v, want 2", p.DefaultDepth)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "profiles: [unclosed")
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() should fail on invalid YAML")
		}
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	depth := 1
	cfg := &Config{
		DefaultProfile: "staging",
		Profiles: map[string]Profile{
			"staging": {BaseURL: "http://localhost:8080", PartnerID: "42", DefaultDepth: &depth},
		},
	}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	got := loaded.Profiles["staging"]
	if loaded.DefaultProfile != "staging" || got.PartnerID != "42" || got.DefaultDepth == nil || *got.DefaultDepth != 1 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := InitConfig(path, false); err != nil {
		t.Fatalf("InitConfig() error = %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Profiles["default"].BaseURL != DefaultConfig().Profiles["default"].BaseURL {
		t.Errorf("unexpected initial config: %+v", cfg)
	}

	if err := InitConfig(path, false); err == nil {
		t.Error("InitConfig() should refuse to overwrite an existing file")
	}
	if err := InitConfig(path, true); err != nil {
		t.Errorf("InitConfig(force) error = %v", err)
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "base url on new profile", key: "prod.base_url", value: "https://prod.example.test/t",
			check: func(t *testing.T, c *Config) {
				if c.Profiles["prod"].BaseURL != "https://prod.example.test/t" {
					t.Errorf("BaseURL = %q", c.Profiles["prod"].BaseURL)
				}
			},
		},
		{
			name: "partner id", key: "default.partner_id", value: "1234",
			check: func(t *testing.T, c *Config) {
				if c.Profiles["default"].PartnerID != "1234" {
					t.Errorf("PartnerID = %q", c.Profiles["default"].PartnerID)
				}
			},
		},
		{
			name: "default depth", key: "default.default_depth", value: "2",
			check: func(t *testing.T, c *Config) {
				if d := c.Profiles["default"].DefaultDepth; d == nil || *d != 2 {
					t.Errorf("DefaultDepth = %v, want 2", d)
				}
			},
		},
		{
			name: "strict", key: "default.strict", value: "true",
			check: func(t *testing.T, c *Config) {
				if !c.Profiles["default"].Strict {
					t.Error("Strict = false")
				}
			},
		},
		{
			name: "default profile", key: "default_profile", value: "prod",
			check: func(t *testing.T, c *Config) {
				if c.DefaultProfile != "prod" {
					t.Errorf("DefaultProfile = %q", c.DefaultProfile)
				}
			},
		},
		{name: "missing field", key: "prod", value: "x", wantErr: true},
		{name: "unknown field", key: "prod.api_key", value: "x", wantErr: true},
		{name: "depth not a number", key: "prod.default_depth", value: "deep", wantErr: true},
		{name: "depth out of range", key: "prod.default_depth", value: "-1", wantErr: true},
		{name: "strict not a bool", key: "prod.strict", value: "maybe", wantErr: true},
		{name: "empty default profile", key: "default_profile", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	depth := 3
	cfg := &Config{
		DefaultProfile: "prod",
		Profiles: map[string]Profile{
			"prod":    {BaseURL: "https://prod.example.test/t", PartnerID: "${TEST_TAPESTRY_PARTNER}", DefaultDepth: &depth},
			"staging": {BaseURL: "https://staging.example.test/t", PartnerID: "99"},
		},
	}

	t.Run("default profile with env expansion", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TEST_TAPESTRY_PARTNER", "1234")

		p, err := cfg.Resolve(Overrides{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.BaseURL != "https://prod.example.test/t" || p.PartnerID != "1234" || *p.DefaultDepth != 3 {
			t.Errorf("unexpected profile: %+v", p)
		}
	})

	t.Run("named profile", func(t *testing.T) {
		clearEnv(t)
		p, err := cfg.Resolve(Overrides{Profile: "staging"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.PartnerID != "99" {
			t.Errorf("PartnerID = %q, want 99", p.PartnerID)
		}
	})

	t.Run("unknown named profile", func(t *testing.T) {
		clearEnv(t)
		if _, err := cfg.Resolve(Overrides{Profile: "missing"}); err == nil {
			t.Error("Resolve() should fail for an unknown profile")
		}
	})

	t.Run("env overrides file and flags override env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(pkgconfig.EnvPartnerID, "from-env")
		t.Setenv(pkgconfig.EnvBaseURL, "https://env.example.test/t")
		t.Setenv(pkgconfig.EnvDepth, "5")

		p, err := cfg.Resolve(Overrides{PartnerID: "from-flag"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.PartnerID != "from-flag" {
			t.Errorf("PartnerID = %q, want from-flag", p.PartnerID)
		}
		if p.BaseURL != "https://env.example.test/t" {
			t.Errorf("BaseURL = %q, want env value", p.BaseURL)
		}
		if *p.DefaultDepth != 5 {
			t.Errorf("DefaultDepth = %d, want 5", *p.DefaultDepth)
		}
	})

	t.Run("invalid env depth", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(pkgconfig.EnvDepth, "x")
		if _, err := cfg.Resolve(Overrides{}); err == nil {
			t.Error("Resolve() should fail for a non-numeric depth")
		}
	})

	t.Run("empty config gets default base URL", func(t *testing.T) {
		clearEnv(t)
		p, err := (&Config{}).Resolve(Overrides{})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if p.BaseURL != pkgconfig.DefaultBaseURL {
			t.Errorf("BaseURL = %q", p.BaseURL)
		}
	})
}

func TestExpandEnvVar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		envKey   string
		envValue string
		expected string
	}{
		{"dollar brace syntax", "${TEST_VAR}", "TEST_VAR", "test-value", "test-value"},
		{"dollar syntax", "$TEST_VAR", "TEST_VAR", "test-value", "test-value"},
		{"embedded", "https://${TEST_HOST}/t", "TEST_HOST", "example.test", "https://example.test/t"},
		{"no variables", "plain", "", "", "plain"},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envKey != "" {
				t.Setenv(tt.envKey, tt.envValue)
			}
			if got := expandEnvVar(tt.input); got != tt.expected {
				t.Errorf("expandEnvVar(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
