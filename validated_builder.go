package tapestry

// BuildResult wraps a result with its validation state.
// This pattern forces callers to handle validation by requiring
// explicit unwrapping of the result.
type BuildResult[T any] struct {
	value T
	err   error
}

// Unwrap returns the value and error, forcing error handling.
// This is the recommended way to use BuildResult.
//
// Example:
//
//	req, err := tapestry.NewRequestStrict().
//	    AddData("color", "blue").
//	    Build().
//	    Unwrap()
//	if err != nil {
//	    log.Printf("invalid request: %v", err)
//	    return
//	}
func (r BuildResult[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Must returns the value or panics if there's an error.
// Use only in tests or when validation is guaranteed.
func (r BuildResult[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Ok returns true if there was no error.
func (r BuildResult[T]) Ok() bool {
	return r.err == nil
}

// Err returns the error, if any.
func (r BuildResult[T]) Err() error {
	return r.err
}

// Value returns the value without checking for errors.
// Prefer Unwrap() for safe access.
func (r BuildResult[T]) Value() T {
	return r.value
}

// NewBuildResult creates a new BuildResult with a value.
func NewBuildResult[T any](value T, err error) BuildResult[T] {
	return BuildResult[T]{value: value, err: err}
}

// BuildResultError creates a BuildResult with only an error.
func BuildResultError[T any](err error) BuildResult[T] {
	var zero T
	return BuildResult[T]{value: zero, err: err}
}

// BuildResultOk creates a BuildResult with only a value.
func BuildResultOk[T any](value T) BuildResult[T] {
	return BuildResult[T]{value: value, err: nil}
}

// ValidatedRequestBuilder wraps Request with validation on every setter.
// Invalid input is not applied; the error is recorded and reported by
// Build. Valid input is applied exactly as Request would apply it.
type ValidatedRequestBuilder struct {
	Validator
	req *Request
}

// NewRequestStrict creates a request builder that validates its input.
func NewRequestStrict() *ValidatedRequestBuilder {
	return &ValidatedRequestBuilder{req: NewRequest()}
}

// AddData stores value under key after validating both.
func (b *ValidatedRequestBuilder) AddData(key, value string) *ValidatedRequestBuilder {
	if err := ValidateDataKey(key); err != nil {
		b.AddError(err)
		return b
	}
	if err := ValidateDataValue(key, value); err != nil {
		b.AddError(err)
		return b
	}
	b.req.AddData(key, value)
	return b
}

// AddAudiences appends every valid audience. Invalid ones are recorded
// as errors and skipped.
func (b *ValidatedRequestBuilder) AddAudiences(audiences ...string) *ValidatedRequestBuilder {
	for _, aud := range audiences {
		if err := ValidateAudience(aud); err != nil {
			b.AddError(err)
			continue
		}
		b.req.AddAudiences(aud)
	}
	return b
}

// ListDevices sets the list devices flag.
func (b *ValidatedRequestBuilder) ListDevices() *ValidatedRequestBuilder {
	b.req.ListDevices()
	return b
}

// SetDepth sets the depth after checking it is within [0, MaxDepth].
func (b *ValidatedRequestBuilder) SetDepth(depth int) *ValidatedRequestBuilder {
	if err := ValidateDepth(depth); err != nil {
		b.AddError(err)
		return b
	}
	b.req.SetDepth(depth)
	return b
}

// Build returns the request, or every validation error recorded so far.
// The builder can keep being used after Build; later calls to Build
// return independent copies.
func (b *ValidatedRequestBuilder) Build() BuildResult[*Request] {
	if err := b.CombinedError(); err != nil {
		return BuildResultError[*Request](err)
	}
	return BuildResultOk(b.req.Clone())
}
