package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
)

type GameService struct {
	Repo       GameStore
	Categories CategoryStore
	Reviews    ReviewStore
}

func NewGameService(repo GameStore, categories CategoryStore, reviews ReviewStore) *GameService {
	return &GameService{Repo: repo, Categories: categories, Reviews: reviews}
}

// ListGames is public; search matches titles case-insensitively and
// categoryID narrows to one category. Either filter may be empty.
func (s *GameService) ListGames(ctx context.Context, actor *access.Actor, search, categoryID string) ([]model.GameDetail, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindGame, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	return s.Repo.List(ctx, strings.TrimSpace(search), strings.TrimSpace(categoryID))
}

// GetGame returns the game with its category name, read-time average rating
// and reviews. Public.
func (s *GameService) GetGame(ctx context.Context, actor *access.Actor, id string) (*model.GameDetail, []model.Review, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindGame, nil, false); !d.Allowed {
		return nil, nil, d.Err()
	}
	game, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.Reviews.ListByGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return game, reviews, nil
}

// CreateGame is admin only. The creating admin is recorded as owner_id for
// display; ownership grants no extra rights on games, which stay
// admin-curated.
func (s *GameService) CreateGame(ctx context.Context, actor *access.Actor, g *model.Game) (*model.Game, error) {
	if d := access.Decide(actor, access.ActionCreate, access.KindGame, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if g.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", model.ErrValidation)
	}
	if g.CategoryID != nil {
		if _, err := s.Categories.GetByID(ctx, *g.CategoryID); err != nil {
			return nil, fmt.Errorf("category %w", model.ErrNotFound)
		}
	}
	g.ID = uuid.NewString()
	g.OwnerID = &actor.ID
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GameService) UpdateGame(ctx context.Context, actor *access.Actor, g *model.Game) (*model.Game, error) {
	if d := access.Decide(actor, access.ActionUpdate, access.KindGame, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if g.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", model.ErrValidation)
	}
	if g.CategoryID != nil {
		if _, err := s.Categories.GetByID(ctx, *g.CategoryID); err != nil {
			return nil, fmt.Errorf("category %w", model.ErrNotFound)
		}
	}
	return s.Repo.Update(ctx, g)
}

func (s *GameService) DeleteGame(ctx context.Context, actor *access.Actor, id string) error {
	if d := access.Decide(actor, access.ActionDelete, access.KindGame, nil, true); !d.Allowed {
		return d.Err()
	}
	return s.Repo.Delete(ctx, id)
}
