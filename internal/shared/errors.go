package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrNoAccessToken    = fmt.Errorf("no access token set")
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrConflictingParams = fmt.Errorf("conflicting parameters")
	ErrUnknownEnum       = fmt.Errorf("unknown enumerated value")
	ErrInvalidArgument   = fmt.Errorf("invalid argument")
	ErrMissingArgument   = fmt.Errorf("missing required argument")
)
