package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
)

type ReviewService struct {
	Repo  ReviewStore
	Games GameStore
}

func NewReviewService(repo ReviewStore, games GameStore) *ReviewService {
	return &ReviewService{Repo: repo, Games: games}
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation)
	}
	return nil
}

// CreateReview requires authentication; any user may review any game. The
// owner recorded on the row is always the actor, never a client-supplied id.
func (s *ReviewService) CreateReview(ctx context.Context, actor *access.Actor, gameID string, rating int, text string) (*model.Review, error) {
	if d := access.Decide(actor, access.ActionCreate, access.KindReview, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: review_text is required", model.ErrValidation)
	}
	ok, err := s.Games.Exists(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("game %w", model.ErrNotFound)
	}
	r := &model.Review{
		ID:         uuid.NewString(),
		GameID:     gameID,
		UserID:     actor.ID,
		Rating:     rating,
		ReviewText: text,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateReview resolves the stored owner first: an absent row is 404 for
// everyone, an existing row owned by someone else is 403.
func (s *ReviewService) UpdateReview(ctx context.Context, actor *access.Actor, id string, rating int, text string) (*model.Review, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := access.Decide(actor, access.ActionUpdate, access.KindReview, &existing.UserID, false); !d.Allowed {
		return nil, d.Err()
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: review_text is required", model.ErrValidation)
	}
	return s.Repo.Update(ctx, id, rating, text)
}

func (s *ReviewService) DeleteReview(ctx context.Context, actor *access.Actor, id string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d := access.Decide(actor, access.ActionDelete, access.KindReview, &existing.UserID, false); !d.Allowed {
		return d.Err()
	}
	return s.Repo.Delete(ctx, id)
}
