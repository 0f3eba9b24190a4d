package services

import (
	"context"
	"fmt"
	"strings"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"
)

type UserService struct {
	Users    UserStore
	Reviews  ReviewStore
	Comments CommentStore
}

func NewUserService(users UserStore, reviews ReviewStore, comments CommentStore) *UserService {
	return &UserService{Users: users, Reviews: reviews, Comments: comments}
}

// GetProfile returns the authenticated user's own row.
func (s *UserService) GetProfile(ctx context.Context, actor *access.Actor) (*model.User, error) {
	if actor == nil {
		return nil, model.ErrUnauthenticated
	}
	u, err := s.Users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, actor *access.Actor, username, email string) (*model.User, error) {
	if d := access.Decide(actor, access.ActionUpdate, access.KindUser, nil, false); !d.Allowed {
		return nil, d.Err()
	}
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", model.ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", model.ErrValidation)
	}
	u, err := s.Users.UpdateProfile(ctx, actor.ID, username, email)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// ListUsers is the admin dashboard user listing.
func (s *UserService) ListUsers(ctx context.Context, actor *access.Actor) ([]model.User, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindUser, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// ChangeRole sets a user's role; admin only.
func (s *UserService) ChangeRole(ctx context.Context, actor *access.Actor, userID, role string) (*model.User, error) {
	if d := access.Decide(actor, access.ActionUpdate, access.KindUser, nil, true); !d.Allowed {
		return nil, d.Err()
	}
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be %q or %q", model.ErrValidation, model.RoleUser, model.RoleAdmin)
	}
	u, err := s.Users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// DeleteUser removes an account; admin only.
func (s *UserService) DeleteUser(ctx context.Context, actor *access.Actor, userID string) error {
	if d := access.Decide(actor, access.ActionDelete, access.KindUser, nil, true); !d.Allowed {
		return d.Err()
	}
	return s.Users.Delete(ctx, userID)
}

// ListUserReviews returns a user's reviews; visible to that user and admins.
func (s *UserService) ListUserReviews(ctx context.Context, actor *access.Actor, userID string) ([]model.Review, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindReview, &userID, false); !d.Allowed {
		return nil, d.Err()
	}
	return s.Reviews.ListByUser(ctx, userID)
}

// ListUserComments returns a user's comments; visible to that user and admins.
func (s *UserService) ListUserComments(ctx context.Context, actor *access.Actor, userID string) ([]model.Comment, error) {
	if d := access.Decide(actor, access.ActionRead, access.KindComment, &userID, false); !d.Allowed {
		return nil, d.Err()
	}
	return s.Comments.ListByUser(ctx, userID)
}
