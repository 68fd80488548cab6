package domain

import "errors"

// Expected, user-facing outcomes. The API error handler maps each to a
// deterministic HTTP status; none of them indicates an internal fault.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidQuery    = errors.New("invalid search query")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrUnknownProduct  = errors.New("unknown product")
)
