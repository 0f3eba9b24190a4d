package middleware

import (
	"net/http"
	"strings"
	"time"

	"GameReviewAPI/internal/access"
	"GameReviewAPI/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Claims defines the JWT payload: the user id rides in the registered
// Subject claim, the role in a private claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator issues and validates session tokens. The signing secret and
// TTL are fixed at construction and read-only afterwards; tokens are never
// persisted or revoked server-side, so validity is purely signature + expiry.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// IssueToken creates a signed token for the given user id and role.
func (a *Authenticator) IssueToken(userID, role string) (string, error) {
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "game-review-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

func (a *Authenticator) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrAccessDenied
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, model.ErrAccessDenied
	}
	return claims, nil
}

// Require returns middleware that rejects requests without a valid token.
// A missing Authorization header or missing bearer token is 401; a token
// that is present but fails signature or expiry checks is 403. The split
// matches the behavior clients already depend on.
func (a *Authenticator) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing authorization header"})
			}
			claims, err := a.parse(tokenString)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid or expired token"})
			}
			c.Set("auth_claims", claims)
			return next(c)
		}
	}
}

// TryGetActor parses the Authorization header if present. Returns nil for
// absent or invalid tokens; public routes use it to personalize without
// requiring auth. It does not re-check the user against storage: a token
// outlives account changes until its expiry.
func (a *Authenticator) TryGetActor(c echo.Context) *access.Actor {
	tokenString, ok := bearerToken(c)
	if !ok {
		return nil
	}
	claims, err := a.parse(tokenString)
	if err != nil {
		return nil
	}
	return &access.Actor{ID: claims.Subject, Role: claims.Role}
}

func bearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.Fields(auth)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", false
	}
	return parts[1], true
}

// GetActor returns the actor attached by Require, or nil.
func GetActor(c echo.Context) *access.Actor {
	v := c.Get("auth_claims")
	if v == nil {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return &access.Actor{ID: claims.Subject, Role: claims.Role}
}
