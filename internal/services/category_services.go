package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
)

type CategoryService struct {
	Repo CategoryStore
}

func NewCategoryService(repo CategoryStore) *CategoryService {
	return &CategoryService{Repo: repo}
}

// ListCategories is public.
func (s *CategoryService) ListCategories(ctx context.Context, actor *access.Actor) ([]model.Category, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindCategory, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	return s.Repo.List(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, actor *access.Actor, name string) (*model.Category, error) {
	if d := access.Decide(actor, access.ActionCreate, access.KindCategory, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	cat := &model.Category{ID: uuid.NewString(), Name: name}
	if err := s.Repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, actor *access.Actor, id, name string) (*model.Category, error) {
	if d := access.Decide(actor, access.ActionUpdate, access.KindCategory, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	return s.Repo.Update(ctx, id, name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, actor *access.Actor, id string) error {
	if d := access.Decide(actor, access.ActionDelete, access.KindCategory, nil, true); !d.Allowed {
		return d.Err()
	}
	return s.Repo.Delete(ctx, id)
}
