package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnknownSection is returned when a section identifier is not one of the dashboard sections
	ErrUnknownSection = errors.New("unknown dashboard section")

	// ErrAnalysisInProgress is returned when a panel is triggered again while its previous run is pending
	ErrAnalysisInProgress = errors.New("analysis already in progress")

	// ErrResultNotFound is returned when a panel has not published a result for the session
	ErrResultNotFound = errors.New("no result published for panel")

	// ErrProductNotFound is returned when a catalog id does not exist
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
