package domain

import "errors"

var (
	// ErrInvalidSelection is returned for an unknown window or category key, or a resolved filter whose fields disagree.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrDegenerateAggregate is returned when the included categories carry no weight.
	ErrDegenerateAggregate = errors.New("degenerate aggregate")
	// ErrCatalogLoad is returned when reference data is missing or malformed.
	ErrCatalogLoad = errors.New("catalog load failure")
	// ErrNotFound is returned by catalog lookups for a key the catalog does not hold.
	ErrNotFound = errors.New("not found")
)
