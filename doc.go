// Package tapestry builds requests for the Tapestry web API, Tapad's
// audience and device graph data service.
//
// A Request accumulates the parameters of one call: keyed data, audience
// identifiers, the "list devices" flag and the traversal depth. It is a
// plain value builder; it performs no I/O.
//
// # Quick Start
//
//	req := tapestry.NewRequest().
//	    AddAudiences("aud1", "aud2", "aud3").
//	    AddData("color", "blue").
//	    AddData("make", "ford").
//	    ListDevices().
//	    SetDepth(2)
//
//	fmt.Println(req.Encode())
//	// ta_add_audiences=aud1%2Caud2%2Caud3&ta_add_data=color%3Ablue&ta_add_data=make%3Aford&ta_depth=2&ta_get_devices=true
//
// # Endpoints
//
// An Endpoint adds the per-deployment settings (base URL, partner ID,
// default depth) and produces the full URL. Sending it is left to the
// caller's HTTP client.
//
//	ep, err := tapestry.NewEndpoint(tapestry.WithPartnerID("1234"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u, err := ep.URL(req)
//
// Endpoints can also be configured from the TAPESTRY_BASE_URL,
// TAPESTRY_PARTNER_ID, TAPESTRY_DEPTH and TAPESTRY_DEBUG environment
// variables with NewEndpointFromEnv.
//
// # Validation
//
// Request accepts any input. NewRequestStrict returns a builder that
// validates every setter and reports the accumulated errors from Build:
//
//	req, err := tapestry.NewRequestStrict().
//	    AddData("color", "blue").
//	    SetDepth(2).
//	    Build().
//	    Unwrap()
//
// # Thread Safety
//
// Requests and builders are meant to be used by a single goroutine and
// then handed off; they are not synchronized. Endpoints are safe for
// concurrent use.
package tapestry
