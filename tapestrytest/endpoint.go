package tapestrytest

import (
	"net/url"
	"reflect"

	"github.com/jdziat/tapestry-go"
)

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Helper()
}

// TestBaseURL is the base URL used by NewTestEndpoint.
const TestBaseURL = "https://tapestry.test/tapestry/1"

// NewTestEndpoint creates an Endpoint for tests. Base options (the test
// base URL and a recording logger) are applied first, then opts.
func NewTestEndpoint(t TestingT, opts ...tapestry.ConfigOption) (*tapestry.Endpoint, *RecordingLogger) {
	t.Helper()

	logger := NewRecordingLogger()
	baseOpts := []tapestry.ConfigOption{
		tapestry.WithBaseURL(TestBaseURL),
		tapestry.WithStructuredLogger(logger),
	}

	ep, err := tapestry.NewEndpoint(append(baseOpts, opts...)...)
	if err != nil {
		t.Fatalf("Failed to create test endpoint: %v", err)
	}
	return ep, logger
}

// Query builds req's URL through ep and returns its parsed query.
func Query(t TestingT, ep *tapestry.Endpoint, req *tapestry.Request) url.Values {
	t.Helper()

	raw, err := ep.URL(req)
	if err != nil {
		t.Fatalf("URL() failed: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("URL() returned an unparsable URL %q: %v", raw, err)
	}
	return u.Query()
}

// AssertParam checks that q carries exactly the given values for name.
// With no values it checks that name is absent.
func AssertParam(t TestingT, q url.Values, name string, want ...string) {
	t.Helper()

	got := q[name]
	if len(want) == 0 {
		if len(got) != 0 {
			t.Errorf("parameter %s = %v, want absent", name, got)
		}
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parameter %s = %v, want %v", name, got, want)
	}
}
