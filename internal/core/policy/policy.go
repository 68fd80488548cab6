// Package policy implements the access decision procedure.
//
// Authorize is a pure function of (identity, action, resource ownership): it
// has no side effects, never panics for well-formed inputs, and must be
// evaluated for every individual resource access, not only per route. Routes
// gate the cheap checks early; services re-run the full decision against the
// fetched resource so a missing per-instance check cannot slip through.
package policy

import (
	"github.com/uteeni/storefront-api/internal/core/domain"
)

// Action identifies an operation being authorized.
type Action string

const (
	ActionListProducts   Action = "products:list"
	ActionSearchProducts Action = "products:search"
	ActionReadOrder      Action = "orders:read"
	ActionCreateOrder    Action = "orders:create"
	ActionListUsers      Action = "users:list"
	ActionReadSelf       Action = "identity:read"
)

// requiresAuth lists actions unavailable to anonymous callers.
var requiresAuth = map[Action]bool{
	ActionReadOrder:   true,
	ActionCreateOrder: true,
	ActionListUsers:   true,
	ActionReadSelf:    true,
}

// requiresAdmin lists actions restricted to the admin role.
var requiresAdmin = map[Action]bool{
	ActionListUsers: true,
}

// Reason explains a deny. The API layer maps each to an HTTP status.
type Reason string

const (
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
)

// Owned is implemented by resources bound to a single owning identity.
type Owned interface {
	OwnedBy() int64
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err converts a deny into its domain error; an allow yields nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	default:
		return domain.ErrForbidden
	}
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Authorize decides whether identity may perform action on resource.
// Rules are evaluated in order: authentication requirement, role
// requirement, then per-instance ownership (owner or admin). A nil resource
// skips the ownership rule only; callers holding a concrete resource must
// pass it.
func Authorize(identity *domain.Identity, action Action, resource Owned) Decision {
	if requiresAuth[action] && identity == nil {
		return deny(ReasonUnauthenticated)
	}

	if requiresAdmin[action] && !identity.IsAdmin() {
		return deny(ReasonForbidden)
	}

	if resource != nil && !identity.IsAdmin() {
		if identity == nil || identity.ID != resource.OwnedBy() {
			return deny(ReasonForbidden)
		}
	}

	return allow()
}
