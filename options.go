package tapestry

// ConfigOption is a function that modifies a Config.
type ConfigOption func(*Config)

// WithBaseURL sets a custom base URL for the Tapestry web API.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithPartnerID sets the partner ID sent as ta_partner_id.
func WithPartnerID(partnerID string) ConfigOption {
	return func(c *Config) {
		c.PartnerID = partnerID
	}
}

// WithDefaultDepth sets the depth applied to requests that set none.
func WithDefaultDepth(depth int) ConfigOption {
	return func(c *Config) {
		c.DefaultDepth = &depth
	}
}

// WithStrictValidation validates every request before it is encoded.
func WithStrictValidation(strict bool) ConfigOption {
	return func(c *Config) {
		c.StrictValidation = strict
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets a printf-style logger.
//
// Example:
//
//	ep, _ := tapestry.NewEndpoint(tapestry.WithLogger(log.Default()))
func WithLogger(logger Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStructuredLogger sets a structured logger. It takes precedence
// over WithLogger.
func WithStructuredLogger(logger StructuredLogger) ConfigOption {
	return func(c *Config) {
		c.StructuredLogger = logger
	}
}
