package services

import (
	"context"
	"testing"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCommentService(t *testing.T) (*CommentService, *fakeCommentStore) {
	t.Helper()
	reviews := newFakeReviewStore()
	reviews.reviews["review-1"] = &model.Review{ID: "review-1", GameID: "game-1", UserID: "user-1", Rating: 4}
	comments := newFakeCommentStore()
	return NewCommentService(comments, reviews), comments
}

func TestListCommentsPublic(t *testing.T) {
	svc, comments := seedCommentService(t)
	ctx := context.Background()
	comments.comments["c1"] = &model.Comment{ID: "c1", ReviewID: "review-1", UserID: "user-2", CommentText: "agreed"}

	// No token required for reading a thread.
	list, err := svc.ListForReview(ctx, nil, "review-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListForReview(ctx, nil, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, "review not found", err.Error())
}

func TestCreateComment(t *testing.T) {
	svc, _ := seedCommentService(t)
	ctx := context.Background()
	actor := &access.Actor{ID: "user-2", Role: model.RoleUser}

	cm, err := svc.CreateComment(ctx, actor, "review-1", "well said")
	require.NoError(t, err)
	assert.Equal(t, "review-1", cm.ReviewID)
	assert.Equal(t, "user-2", cm.UserID)

	_, err = svc.CreateComment(ctx, nil, "review-1", "drive-by")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = svc.CreateComment(ctx, actor, "review-1", "  ")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.CreateComment(ctx, actor, "missing", "text")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateComment(t *testing.T) {
	svc, _ := seedCommentService(t)
	ctx := context.Background()
	owner := &access.Actor{ID: "user-2", Role: model.RoleUser}
	other := &access.Actor{ID: "user-3", Role: model.RoleUser}

	cm, err := svc.CreateComment(ctx, owner, "review-1", "first take")
	require.NoError(t, err)

	_, err = svc.UpdateComment(ctx, other, cm.ID, "hijack")
	assert.ErrorIs(t, err, model.ErrAccessDenied)

	updated, err := svc.UpdateComment(ctx, owner, cm.ID, "second take")
	require.NoError(t, err)
	assert.Equal(t, "second take", updated.CommentText)

	_, err = svc.UpdateComment(ctx, owner, "missing", "text")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteComment(t *testing.T) {
	svc, comments := seedCommentService(t)
	ctx := context.Background()
	owner := &access.Actor{ID: "user-2", Role: model.RoleUser}
	other := &access.Actor{ID: "user-3", Role: model.RoleUser}
	admin := &access.Actor{ID: "admin-1", Role: model.RoleAdmin}

	cm, err := svc.CreateComment(ctx, owner, "review-1", "keep or kill")
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, other, cm.ID)
	assert.ErrorIs(t, err, model.ErrAccessDenied)

	require.NoError(t, svc.DeleteComment(ctx, admin, cm.ID))
	assert.NotContains(t, comments.comments, cm.ID)

	err = svc.DeleteComment(ctx, owner, cm.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
