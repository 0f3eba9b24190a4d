package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"GameReviewAPI/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLen = 8
	MaxUsernameLen = 100
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Compared against on the unknown-email branch so login takes the same
	// time whether or not the email is registered.
	dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
)

type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

// LocalValidator is the default email check when the external reputation
// service is not configured.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator { return &LocalValidator{} }

func (v *LocalValidator) Validate(ctx context.Context, email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", model.ErrValidation)
	}
	return nil
}

// AuthService owns registration and login, including password hashing and
// verification. Password hashes never leave this service.
type AuthService struct {
	Users      UserStore
	Validator  EmailValidator
	BcryptCost int
}

func NewAuthService(users UserStore, validator EmailValidator, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{Users: users, Validator: validator, BcryptCost: bcryptCost}
}

// Register creates a user with role "user". Duplicate username or email is a
// conflict; the caller maps it to a 400.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", model.ErrValidation)
	}
	if len(username) > MaxUsernameLen {
		return nil, fmt.Errorf("%w: username too long", model.ErrValidation)
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", model.ErrValidation, MinPasswordLen)
	}
	if err := s.Validator.Validate(ctx, email); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// Login verifies the password against the stored bcrypt hash. Both an
// unknown email and a wrong password come back as ErrInvalidCredentials so
// the response cannot be used to probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, model.ErrInvalidCredentials
		}
		// Storage failures stay opaque 500s, never a credential response.
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return u, nil
}
