package services

import (
	"context"

	"GameReviewAPI/internal/model"
)

// Store interfaces consumed by the services. The pgx implementations live in
// internal/repository; tests substitute in-memory fakes. Implementations
// return model.ErrNotFound for absent rows and model.ErrConflict for
// uniqueness violations.

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id, username, email string) (*model.User, error)
	UpdateRole(ctx context.Context, id, role string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type CategoryStore interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id, name string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type GameStore interface {
	Create(ctx context.Context, g *model.Game) error
	GetByID(ctx context.Context, id string) (*model.GameDetail, error)
	List(ctx context.Context, search, categoryID string) ([]model.GameDetail, error)
	Update(ctx context.Context, g *model.Game) (*model.Game, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type ReviewStore interface {
	Create(ctx context.Context, r *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	ListByGame(ctx context.Context, gameID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	Update(ctx context.Context, id string, rating int, text string) (*model.Review, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, cm *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	ListByReview(ctx context.Context, reviewID string) ([]model.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Comment, error)
	Update(ctx context.Context, id, text string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

type ReportStore interface {
	Create(ctx context.Context, rp *model.Report) error
	List(ctx context.Context) ([]model.Report, error)
}
