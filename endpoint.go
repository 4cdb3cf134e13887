package tapestry

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoint turns requests into fully addressed Tapestry web API URLs.
// It holds the per-deployment settings (base URL, partner ID, default
// depth) that do not belong on individual requests. It never performs
// network I/O.
//
// An Endpoint is immutable after construction and safe for concurrent use.
// The requests passed to it are not.
type Endpoint struct {
	config  Config
	baseURL *url.URL
	log     StructuredLogger
}

// NewEndpoint creates an Endpoint from options.
//
// Example:
//
//	ep, err := tapestry.NewEndpoint(
//	    tapestry.WithPartnerID("1234"),
//	    tapestry.WithDefaultDepth(1),
//	)
func NewEndpoint(opts ...ConfigOption) (*Endpoint, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewEndpointFromConfig(cfg)
}

// NewEndpointFromConfig creates an Endpoint from a Config.
// The Config is copied; later changes to it have no effect.
func NewEndpointFromConfig(cfg *Config) (*Endpoint, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	if c.DefaultDepth != nil {
		d := *c.DefaultDepth
		c.DefaultDepth = &d
	}

	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}

	// validate has already parsed BaseURL successfully.
	u, _ := url.Parse(c.BaseURL)

	ep := &Endpoint{
		config:  c,
		baseURL: u,
		log:     c.StructuredLogger,
	}
	ep.log.Debug("tapestry endpoint configured",
		"base_url", c.BaseURL,
		"partner_id", c.PartnerID,
		"strict", c.StrictValidation,
	)
	return ep, nil
}

// Config returns a copy of the effective configuration.
func (e *Endpoint) Config() Config {
	c := e.config
	if c.DefaultDepth != nil {
		d := *c.DefaultDepth
		c.DefaultDepth = &d
	}
	return c
}

// Values returns the complete parameter set for req: its own parameters,
// the partner ID and, when req set no depth, the configured default depth.
// The request itself is not modified.
func (e *Endpoint) Values(req *Request) (url.Values, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if e.config.StrictValidation {
		if err := ValidateRequest(req); err != nil {
			e.log.Warn("tapestry request rejected", "error", err, "code", ErrorCodeOf(err))
			return nil, fmt.Errorf("tapestry: invalid request: %w", err)
		}
	}

	v := req.Values()
	if e.config.PartnerID != "" {
		v.Set(ParamPartnerID, e.config.PartnerID)
	}
	if _, ok := req.Depth(); !ok && e.config.DefaultDepth != nil {
		v.Set(ParamDepth, strconv.Itoa(*e.config.DefaultDepth))
	}
	return v, nil
}

// URL returns the full request URL for req.
func (e *Endpoint) URL(req *Request) (string, error) {
	v, err := e.Values(req)
	if err != nil {
		return "", err
	}

	u := *e.baseURL
	u.RawQuery = v.Encode()
	s := u.String()

	e.log.Debug("tapestry request built",
		"url", s,
		"data_entries", len(req.data),
		"audiences", len(req.audiences),
	)
	return s, nil
}
