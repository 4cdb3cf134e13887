// Package tapestrytest provides testing utilities for code that builds
// Tapestry requests.
//
// # Recording Logger
//
// RecordingLogger captures everything the SDK logs so tests can assert
// on it:
//
//	logger := tapestrytest.NewRecordingLogger()
//	ep, _ := tapestry.NewEndpoint(tapestry.WithStructuredLogger(logger))
//	// ... use ep ...
//	if !logger.Contains("tapestry request built") {
//	    t.Error("expected a debug entry")
//	}
//
// # Test Endpoint
//
// NewTestEndpoint returns an Endpoint pointed at a fixed test base URL
// with a recording logger attached:
//
//	func TestMyFeature(t *testing.T) {
//	    ep, logger := tapestrytest.NewTestEndpoint(t, tapestry.WithPartnerID("1234"))
//	    q := tapestrytest.Query(t, ep, myRequest())
//	    tapestrytest.AssertParam(t, q, tapestry.ParamPartnerID, "1234")
//	}
package tapestrytest
