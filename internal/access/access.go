// Package access holds the single decision function every resource service
// consults before a mutation or restricted read. Keeping the role and
// ownership rules in one pure function stops individual routes from drifting
// apart in how they enforce them.
package access

import "GameReviewAPI/internal/model"

type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
)

type Kind string

const (
	KindUser     Kind = "user"
	KindCategory Kind = "category"
	KindGame     Kind = "game"
	KindReview   Kind = "review"
	KindComment  Kind = "comment"
	KindReport   Kind = "report"
)

// Actor is the authenticated principal extracted from a session token.
// A nil *Actor means the request carried no valid token.
type Actor struct {
	ID   string
	Role string
}

func (a *Actor) isAdmin() bool {
	return a != nil && a.Role == model.RoleAdmin
}

type Reason int

const (
	ReasonNone Reason = iota
	// ReasonUnauthenticated maps to 401 at the boundary.
	ReasonUnauthenticated
	// ReasonForbidden maps to 403 at the boundary.
	ReasonForbidden
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(r Reason) Decision {
	return Decision{Reason: r}
}

// Err converts a denial into the shared error taxonomy. Allowed decisions
// yield nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonUnauthenticated {
		return model.ErrUnauthenticated
	}
	return model.ErrAccessDenied
}

// publicReads lists the resource kinds whose unscoped reads need no token:
// game list/detail, category list, and the comments under a review. Reads
// scoped to an owner (profile, "my reviews", "my comments") never take this
// path because they carry an ownerID.
var publicReads = map[Kind]bool{
	KindGame:     true,
	KindCategory: true,
	KindComment:  true,
}

// Decide evaluates whether actor may perform action on a resource of the
// given kind. ownerID is the owner column fetched fresh from storage for the
// target row, or nil when the kind has no owner semantics for this action.
// requiresAdmin marks the admin-curated operations (category and game
// mutation, user administration, report listing).
//
// The rules run strictly in order; Decide is pure and never touches I/O, so
// identical inputs always produce identical decisions.
func Decide(actor *Actor, action Action, kind Kind, ownerID *string, requiresAdmin bool) Decision {
	// 1. Public reads are allowed for anyone, token or not.
	if action == ActionRead && ownerID == nil && !requiresAdmin && publicReads[kind] {
		return Allow()
	}

	// 2. Everything else needs an authenticated actor.
	if actor == nil {
		return Deny(ReasonUnauthenticated)
	}

	// 3. Admin-curated operations.
	if requiresAdmin {
		if !actor.isAdmin() {
			return Deny(ReasonForbidden)
		}
		return Allow()
	}

	// 4. Ownership-scoped operations: the actor must own the row, unless
	// they are an admin.
	if ownerID != nil {
		if actor.ID == *ownerID || actor.isAdmin() {
			return Allow()
		}
		return Deny(ReasonForbidden)
	}

	// 5. Authenticated action with no role or ownership constraint
	// (create review/comment, update own profile).
	return Allow()
}
