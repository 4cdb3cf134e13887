package tapestry

import (
	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
	pkgerrors "github.com/jdziat/tapestry-go/pkg/errors"
)

// Environment variable names for configuration.
const (
	// EnvBaseURL is the environment variable for the Tapestry API base URL.
	EnvBaseURL = pkgconfig.EnvBaseURL
	// EnvPartnerID is the environment variable for the partner ID.
	EnvPartnerID = pkgconfig.EnvPartnerID
	// EnvDepth is the environment variable for the default depth.
	EnvDepth = pkgconfig.EnvDepth
	// EnvDebug is the environment variable to enable debug mode.
	EnvDebug = pkgconfig.EnvDebug
)

// ConfigFromEnv returns the options described by the TAPESTRY_*
// environment variables. Unset variables contribute nothing.
func ConfigFromEnv() ([]ConfigOption, error) {
	opts := make([]ConfigOption, 0, 4)

	if baseURL := pkgconfig.GetEnvString(EnvBaseURL, ""); baseURL != "" {
		opts = append(opts, WithBaseURL(baseURL))
	}
	if partnerID := pkgconfig.GetEnvString(EnvPartnerID, ""); partnerID != "" {
		opts = append(opts, WithPartnerID(partnerID))
	}

	depth, ok, err := pkgconfig.GetEnvInt(EnvDepth)
	if err != nil {
		return nil, pkgerrors.NewConfigErrorWithCause(EnvDepth, "must be an integer", err)
	}
	if ok {
		opts = append(opts, WithDefaultDepth(depth))
	}

	if pkgconfig.GetEnvBool(EnvDebug) {
		opts = append(opts, WithDebug(true))
	}

	return opts, nil
}

// NewEndpointFromEnv creates an Endpoint using environment variables.
// It reads TAPESTRY_BASE_URL, TAPESTRY_PARTNER_ID, TAPESTRY_DEPTH and
// TAPESTRY_DEBUG. Explicit options take precedence over the environment.
//
// Example:
//
//	ep, err := tapestry.NewEndpointFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewEndpointFromEnv(opts ...ConfigOption) (*Endpoint, error) {
	envOpts, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewEndpoint(append(envOpts, opts...)...)
}
