package services

import (
	"context"
	"testing"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesPublic(t *testing.T) {
	store := newFakeCategoryStore()
	store.categories["cat-1"] = &model.Category{ID: "cat-1", Name: "RPG"}
	svc := NewCategoryService(store)

	list, err := svc.ListCategories(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCategoryMutationsAdminOnly(t *testing.T) {
	store := newFakeCategoryStore()
	svc := NewCategoryService(store)
	ctx := context.Background()
	admin := &access.Actor{ID: "admin-1", Role: model.RoleAdmin}
	user := &access.Actor{ID: "user-1", Role: model.RoleUser}

	_, err := svc.CreateCategory(ctx, nil, "RPG")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
	_, err = svc.CreateCategory(ctx, user, "RPG")
	assert.ErrorIs(t, err, model.ErrAccessDenied)

	cat, err := svc.CreateCategory(ctx, admin, "  RPG  ")
	require.NoError(t, err)
	assert.Equal(t, "RPG", cat.Name)

	_, err = svc.CreateCategory(ctx, admin, "RPG")
	assert.ErrorIs(t, err, model.ErrConflict)

	_, err = svc.UpdateCategory(ctx, user, cat.ID, "Roguelike")
	assert.ErrorIs(t, err, model.ErrAccessDenied)

	updated, err := svc.UpdateCategory(ctx, admin, cat.ID, "Roguelike")
	require.NoError(t, err)
	assert.Equal(t, "Roguelike", updated.Name)

	err = svc.DeleteCategory(ctx, user, cat.ID)
	assert.ErrorIs(t, err, model.ErrAccessDenied)

	require.NoError(t, svc.DeleteCategory(ctx, admin, cat.ID))
	err = svc.DeleteCategory(ctx, admin, cat.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCategoryValidation(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryStore())
	ctx := context.Background()
	admin := &access.Actor{ID: "admin-1", Role: model.RoleAdmin}

	_, err := svc.CreateCategory(ctx, admin, "   ")
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.UpdateCategory(ctx, admin, "cat-1", "")
	assert.ErrorIs(t, err, model.ErrValidation)
}
