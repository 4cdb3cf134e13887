package tapestry

import (
	"maps"
	"slices"
)

// Request accumulates the parameters of a single Tapestry web API call.
// Building a request adds parameters to the query string that an
// Endpoint (or any other consumer) later serializes.
//
// Example:
//
//	req := tapestry.NewRequest().
//	    AddAudiences("aud1", "aud2", "aud3").
//	    AddData("color", "blue").
//	    AddData("make", "ford").
//	    ListDevices().
//	    SetDepth(2)
//
// A Request is owned by one goroutine at a time. It performs no
// synchronization; hand it off rather than sharing it.
type Request struct {
	data        map[string]string
	audiences   []string
	listDevices bool
	depth       int
	hasDepth    bool
}

// NewRequest creates an empty request: no data, no audiences, the
// list devices flag unset and no depth.
func NewRequest() *Request {
	return &Request{
		data:      make(map[string]string),
		audiences: make([]string, 0),
	}
}

// AddData stores value under key, replacing any earlier value for the
// same key. Keys are not validated; use NewRequestStrict to reject
// empty or malformed keys.
func (r *Request) AddData(key, value string) *Request {
	if r.data == nil {
		r.data = make(map[string]string)
	}
	r.data[key] = value
	return r
}

// AddAudiences appends each audience identifier in order. Audiences are
// never removed; repeated identifiers are kept. Calling it with no
// arguments does nothing.
func (r *Request) AddAudiences(audiences ...string) *Request {
	r.audiences = append(r.audiences, audiences...)
	return r
}

// ListDevices asks Tapestry to return the devices in the device graph.
// Calling it more than once has no further effect.
func (r *Request) ListDevices() *Request {
	r.listDevices = true
	return r
}

// SetDepth sets the traversal depth, overwriting any earlier value.
// The range is not checked here.
func (r *Request) SetDepth(depth int) *Request {
	r.depth = depth
	r.hasDepth = true
	return r
}

// Data returns a copy of the keyed data.
func (r *Request) Data() map[string]string {
	out := make(map[string]string, len(r.data))
	maps.Copy(out, r.data)
	return out
}

// Value returns the data stored under key.
func (r *Request) Value(key string) (string, bool) {
	v, ok := r.data[key]
	return v, ok
}

// Audiences returns a copy of the accumulated audiences in the order
// they were added.
func (r *Request) Audiences() []string {
	return slices.Clone(r.audiences)
}

// ListsDevices reports whether ListDevices has been called.
func (r *Request) ListsDevices() bool {
	return r.listDevices
}

// Depth returns the depth and whether one has been set.
func (r *Request) Depth() (int, bool) {
	return r.depth, r.hasDepth
}

// IsEmpty reports whether the request carries no parameters at all.
func (r *Request) IsEmpty() bool {
	return len(r.data) == 0 && len(r.audiences) == 0 && !r.listDevices && !r.hasDepth
}

// Clone returns an independent copy of the request. Mutating either
// copy does not affect the other, so a partially built request can be
// used as a template.
func (r *Request) Clone() *Request {
	return &Request{
		data:        r.Data(),
		audiences:   r.Audiences(),
		listDevices: r.listDevices,
		depth:       r.depth,
		hasDepth:    r.hasDepth,
	}
}
