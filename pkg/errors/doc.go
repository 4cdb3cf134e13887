// Package errors provides error types for the Tapestry Go SDK.
//
// All SDK errors implement the TapestryError interface, which exposes a
// machine-readable code:
//
//	var tapErr errors.TapestryError
//	if stdErrors.As(err, &tapErr) {
//	    log.Printf("Error code: %s", tapErr.Code())
//	}
//
// # Error Types
//
//   - ValidationError: a request parameter or builder input was rejected
//   - ConfigError: the SDK configuration is unusable
//
// # Sentinel Errors
//
//   - ErrMissingBaseURL, ErrInvalidConfig: configuration errors
//   - ErrNilRequest: a nil request was passed to an encoder
//
// Use errors.Is() for sentinel error comparison:
//
//	if stdErrors.Is(err, errors.ErrNilRequest) {
//	    // Handle missing request
//	}
package errors
