// Package cli provides configuration, request file loading and output
// formatting for the tapestry command-line tool.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdziat/tapestry-go"
	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
)

// Config represents the CLI configuration file.
type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// Profile holds the endpoint settings for one Tapestry deployment.
type Profile struct {
	BaseURL      string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	PartnerID    string `yaml:"partner_id,omitempty" json:"partner_id,omitempty"`
	DefaultDepth *int   `yaml:"default_depth,omitempty" json:"default_depth,omitempty"`
	Strict       bool   `yaml:"strict,omitempty" json:"strict,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultProfile: "default",
		Profiles: map[string]Profile{
			"default": {BaseURL: pkgconfig.DefaultBaseURL},
		},
	}
}

// DefaultConfigPath returns the path to the config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tapestry", "config.yaml"), nil
}

// LoadConfig reads the configuration from path. An empty path means the
// default location, which may be absent. An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}
	if cfg.DefaultProfile == "" {
		cfg.DefaultProfile = "default"
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating the directory if needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigPath returns path, or the default location when path is empty.
func ConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return DefaultConfigPath()
}

// InitConfig writes the default configuration to path. An existing file
// is only replaced when force is set.
func InitConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	return SaveConfig(DefaultConfig(), path)
}

// Set assigns one setting. key is either "default_profile" or
// "<profile>.<field>" with field one of base_url, partner_id,
// default_depth or strict. Unknown profiles are created.
func (c *Config) Set(key, value string) error {
	if key == "default_profile" {
		if value == "" {
			return errors.New("default_profile cannot be empty")
		}
		c.DefaultProfile = value
		return nil
	}

	name, field, ok := strings.Cut(key, ".")
	if !ok || name == "" {
		return fmt.Errorf("invalid key %q, expected 'profile.field' (e.g., 'prod.partner_id')", key)
	}

	if c.Profiles == nil {
		c.Profiles = make(map[string]Profile)
	}
	p := c.Profiles[name]

	switch field {
	case "base_url":
		p.BaseURL = value
	case "partner_id":
		p.PartnerID = value
	case "default_depth":
		if value == "" {
			p.DefaultDepth = nil
			break
		}
		d, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("default_depth must be an integer: %w", err)
		}
		if err := tapestry.ValidateDepth(d); err != nil {
			return err
		}
		p.DefaultDepth = &d
	case "strict":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict must be true or false: %w", err)
		}
		p.Strict = b
	default:
		return fmt.Errorf("unknown field '%s', valid fields: base_url, partner_id, default_depth, strict", field)
	}

	c.Profiles[name] = p
	return nil
}

// Overrides are values given on the command line. Empty fields leave the
// lower-priority sources alone.
type Overrides struct {
	Profile   string
	BaseURL   string
	PartnerID string
}

// Resolve returns the effective profile.
// Priority: command flags > environment variables > config file.
func (c *Config) Resolve(o Overrides) (Profile, error) {
	name := o.Profile
	if name == "" {
		name = c.DefaultProfile
	}

	p, ok := c.Profiles[name]
	if !ok {
		if o.Profile != "" {
			return Profile{}, fmt.Errorf("profile '%s' not found in config", name)
		}
		p = Profile{}
	}

	p.BaseURL = expandEnvVar(p.BaseURL)
	p.PartnerID = expandEnvVar(p.PartnerID)

	p.BaseURL = pkgconfig.GetEnvString(pkgconfig.EnvBaseURL, p.BaseURL)
	p.PartnerID = pkgconfig.GetEnvString(pkgconfig.EnvPartnerID, p.PartnerID)
	depth, ok, err := pkgconfig.GetEnvInt(pkgconfig.EnvDepth)
	if err != nil {
		return Profile{}, fmt.Errorf("%s must be an integer: %w", pkgconfig.EnvDepth, err)
	}
	if ok {
		p.DefaultDepth = &depth
	}

	if o.BaseURL != "" {
		p.BaseURL = o.BaseURL
	}
	if o.PartnerID != "" {
		p.PartnerID = o.PartnerID
	}

	if p.BaseURL == "" {
		p.BaseURL = pkgconfig.DefaultBaseURL
	}
	return p, nil
}

// Options converts the profile into endpoint options.
func (p Profile) Options() []tapestry.ConfigOption {
	opts := []tapestry.ConfigOption{
		tapestry.WithBaseURL(p.BaseURL),
		tapestry.WithPartnerID(p.PartnerID),
		tapestry.WithStrictValidation(p.Strict),
	}
	if p.DefaultDepth != nil {
		opts = append(opts, tapestry.WithDefaultDepth(*p.DefaultDepth))
	}
	return opts
}

var envVarPattern = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// expandEnvVar expands ${VAR} and $VAR references.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "${")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "}")
		return os.Getenv(name)
	})
}
