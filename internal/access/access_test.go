package access

import (
	"testing"

	"GameReviewAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestDecidePublicReads(t *testing.T) {
	tests := []struct {
		name  string
		actor *Actor
		kind  Kind
	}{
		{"anonymous game list", nil, KindGame},
		{"anonymous category list", nil, KindCategory},
		{"anonymous comment list", nil, KindComment},
		{"authenticated game list", &Actor{ID: "u1", Role: "user"}, KindGame},
		{"admin game list", &Actor{ID: "a1", Role: "admin"}, KindGame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, ActionRead, tt.kind, nil, false)
			assert.True(t, d.Allowed)
			assert.NoError(t, d.Err())
		})
	}
}

func TestDecideAnonymousDeniedForNonPublic(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		kind   Kind
	}{
		{"create review", ActionCreate, KindReview},
		{"create comment", ActionCreate, KindComment},
		{"update user", ActionUpdate, KindUser},
		{"delete review", ActionDelete, KindReview},
		{"read reports", ActionRead, KindReport},
		{"read user profile", ActionRead, KindUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(nil, tt.action, tt.kind, nil, false)
			assert.False(t, d.Allowed)
			assert.Equal(t, ReasonUnauthenticated, d.Reason)
			assert.ErrorIs(t, d.Err(), model.ErrUnauthenticated)
		})
	}
}

func TestDecideAdminRequired(t *testing.T) {
	user := &Actor{ID: "u1", Role: "user"}
	admin := &Actor{ID: "a1", Role: "admin"}

	actions := []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
	kinds := []Kind{KindCategory, KindGame, KindUser, KindReport}

	for _, action := range actions {
		for _, kind := range kinds {
			d := Decide(user, action, kind, nil, true)
			assert.False(t, d.Allowed, "user must be denied %v on %v", action, kind)
			assert.Equal(t, ReasonForbidden, d.Reason)
			assert.ErrorIs(t, d.Err(), model.ErrAccessDenied)

			d = Decide(admin, action, kind, nil, true)
			assert.True(t, d.Allowed, "admin must be allowed %v on %v", action, kind)
		}
	}

	// Ownership fields never override a role requirement.
	d := Decide(user, ActionUpdate, KindGame, strptr(user.ID), true)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbidden, d.Reason)

	// Anonymous on an admin action is unauthenticated, not forbidden.
	d = Decide(nil, ActionDelete, KindCategory, nil, true)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)
}

func TestDecideOwnership(t *testing.T) {
	owner := &Actor{ID: "u1", Role: "user"}
	other := &Actor{ID: "u2", Role: "user"}
	admin := &Actor{ID: "a1", Role: "admin"}
	ownerID := strptr("u1")

	for _, action := range []Action{ActionUpdate, ActionDelete} {
		assert.True(t, Decide(owner, action, KindReview, ownerID, false).Allowed)
		assert.True(t, Decide(admin, action, KindReview, ownerID, false).Allowed)

		d := Decide(other, action, KindReview, ownerID, false)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonForbidden, d.Reason)

		d = Decide(nil, action, KindReview, ownerID, false)
		assert.False(t, d.Allowed)
		assert.Equal(t, ReasonUnauthenticated, d.Reason)
	}
}

func TestDecideOwnershipScopedRead(t *testing.T) {
	// "my comments" is an owner-scoped read even though the comment kind has
	// a public unscoped read (comments under a review).
	ownerID := strptr("u1")

	d := Decide(nil, ActionRead, KindComment, ownerID, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonUnauthenticated, d.Reason)

	d = Decide(&Actor{ID: "u2", Role: "user"}, ActionRead, KindComment, ownerID, false)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbidden, d.Reason)

	assert.True(t, Decide(&Actor{ID: "u1", Role: "user"}, ActionRead, KindComment, ownerID, false).Allowed)
	assert.True(t, Decide(&Actor{ID: "a1", Role: "admin"}, ActionRead, KindComment, ownerID, false).Allowed)
}

func TestDecideAuthenticatedUnconstrained(t *testing.T) {
	user := &Actor{ID: "u1", Role: "user"}
	assert.True(t, Decide(user, ActionCreate, KindReview, nil, false).Allowed)
	assert.True(t, Decide(user, ActionCreate, KindComment, nil, false).Allowed)
	assert.True(t, Decide(user, ActionUpdate, KindUser, nil, false).Allowed)
	assert.True(t, Decide(user, ActionCreate, KindReport, nil, false).Allowed)
}

func TestDecideIsPure(t *testing.T) {
	actor := &Actor{ID: "u2", Role: "user"}
	ownerID := strptr("u1")
	first := Decide(actor, ActionDelete, KindReview, ownerID, false)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Decide(actor, ActionDelete, KindReview, ownerID, false))
	}
}
