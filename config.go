package tapestry

import (
	"fmt"
	"net/url"

	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
	pkgerrors "github.com/jdziat/tapestry-go/pkg/errors"
)

// DefaultBaseURL is the Tapestry web API endpoint used when none is configured.
const DefaultBaseURL = pkgconfig.DefaultBaseURL

// Config holds the configuration for an Endpoint.
type Config struct {
	// BaseURL is the Tapestry web API URL requests are addressed to.
	// Defaults to DefaultBaseURL.
	BaseURL string

	// PartnerID identifies the Tapestry customer. When set it is sent as
	// ta_partner_id on every request.
	PartnerID string

	// DefaultDepth is applied to requests that did not set a depth.
	// Nil means no depth is sent unless the request sets one.
	DefaultDepth *int

	// StrictValidation runs ValidateRequest before encoding a request.
	StrictValidation bool

	// Debug enables debug logging.
	Debug bool

	// Logger is used for SDK logging (printf-style).
	// For structured logging, use StructuredLogger instead.
	Logger Logger

	// StructuredLogger is used for structured SDK logging.
	// If set, this takes precedence over Logger.
	StructuredLogger StructuredLogger
}

// String returns a string representation of the config.
func (c *Config) String() string {
	depth := "unset"
	if c.DefaultDepth != nil {
		depth = fmt.Sprintf("%d", *c.DefaultDepth)
	}
	return fmt.Sprintf("Config{BaseURL: %q, PartnerID: %q, DefaultDepth: %s, StrictValidation: %t, Debug: %t}",
		c.BaseURL,
		c.PartnerID,
		depth,
		c.StrictValidation,
		c.Debug,
	)
}

// applyDefaults sets default values for unset configuration options.
func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	if c.StructuredLogger == nil {
		switch {
		case c.Logger != nil:
			c.StructuredLogger = WrapPrintfLogger(c.Logger)
		case c.Debug:
			c.StructuredLogger = newDebugLogger()
		default:
			c.StructuredLogger = NopLogger{}
		}
	}
}

// validate checks that the configuration is valid.
func (c *Config) validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return pkgerrors.NewConfigErrorWithCause("base_url", "cannot be parsed", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pkgerrors.NewConfigError("base_url", fmt.Sprintf("scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return pkgerrors.NewConfigError("base_url", "host is required")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return pkgerrors.NewConfigError("base_url", "must not carry a query or fragment")
	}

	if c.DefaultDepth != nil {
		if err := ValidateDepth(*c.DefaultDepth); err != nil {
			return pkgerrors.NewConfigErrorWithCause("default_depth", "out of range", err)
		}
	}

	return nil
}
