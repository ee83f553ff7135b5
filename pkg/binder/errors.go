package binder

import "errors"

// Common binding errors
var (
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")
	ErrInvalidTarget      = errors.New("invalid binding target")

	// ErrBinderNotApplicable is returned by binders that have nothing to read
	// from the request. The handler wrapper skips them.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")
)
