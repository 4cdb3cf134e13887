package tapestry

import (
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	pkgconfig "github.com/jdziat/tapestry-go/pkg/config"
)

// Query parameter names used when encoding a Request.
const (
	ParamPartnerID  = pkgconfig.ParamPartnerID
	ParamAddData    = pkgconfig.ParamAddData
	ParamAudiences  = pkgconfig.ParamAudiences
	ParamGetDevices = pkgconfig.ParamGetDevices
	ParamDepth      = pkgconfig.ParamDepth
)

// Values returns the request's parameters in query form:
//
//   - one ta_add_data=key:value per data entry, ordered by key
//   - ta_add_audiences with every audience comma-joined in insertion order
//   - ta_get_devices=true when ListDevices was called
//   - ta_depth when a depth was set
//
// Parameters with nothing to say are omitted.
func (r *Request) Values() url.Values {
	v := url.Values{}

	if len(r.data) > 0 {
		keys := slices.Sorted(maps.Keys(r.data))
		for _, k := range keys {
			v.Add(ParamAddData, k+pkgconfig.DataSeparator+r.data[k])
		}
	}

	if len(r.audiences) > 0 {
		v.Set(ParamAudiences, strings.Join(r.audiences, pkgconfig.AudienceSeparator))
	}

	if r.listDevices {
		v.Set(ParamGetDevices, "true")
	}

	if r.hasDepth {
		v.Set(ParamDepth, strconv.Itoa(r.depth))
	}

	return v
}

// Encode returns the URL-encoded query string ("bar=baz&foo=quux"),
// sorted by parameter name. An empty request encodes to "".
func (r *Request) Encode() string {
	return r.Values().Encode()
}

// String implements fmt.Stringer and returns Encode().
func (r *Request) String() string {
	return r.Encode()
}
