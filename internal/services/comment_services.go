package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
)

type CommentService struct {
	Repo    CommentStore
	Reviews ReviewStore
}

func NewCommentService(repo CommentStore, reviews ReviewStore) *CommentService {
	return &CommentService{Repo: repo, Reviews: reviews}
}

// ListForReview returns a review's comments. Intentionally public.
func (s *CommentService) ListForReview(ctx context.Context, actor *access.Actor, reviewID string) ([]model.Comment, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindComment, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	ok, err := s.Reviews.Exists(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("review %w", model.ErrNotFound)
	}
	return s.Repo.ListByReview(ctx, reviewID)
}

func (s *CommentService) CreateComment(ctx context.Context, actor *access.Actor, reviewID, text string) (*model.Comment, error) {
	if d := access.Decide(actor, access.ActionCreate, access.KindComment, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment_text is required", model.ErrValidation)
	}
	ok, err := s.Reviews.Exists(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("review %w", model.ErrNotFound)
	}
	cm := &model.Comment{
		ID:          uuid.NewString(),
		ReviewID:    reviewID,
		UserID:      actor.ID,
		CommentText: text,
	}
	if err := s.Repo.Create(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, actor *access.Actor, id, text string) (*model.Comment, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := access.Decide(actor, access.ActionUpdate, access.KindComment, &existing.UserID, false); !d.Allowed {
		return nil, d.Err()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment_text is required", model.ErrValidation)
	}
	return s.Repo.Update(ctx, id, text)
}

func (s *CommentService) DeleteComment(ctx context.Context, actor *access.Actor, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d := access.Decide(actor, access.ActionDelete, access.KindComment, &existing.UserID, false); !d.Allowed {
		return d.Err()
	}
	return s.Repo.Delete(ctx, id)
}
