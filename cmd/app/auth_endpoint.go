package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerAuthRoutes mounts registration and login.
//
// Public:
//
//	POST /register -> 201 public user fields
//	POST /login    -> 200 {token, user}
func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, auth *middleware.Authenticator) {
	g.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		user, err := authSvc.Register(c.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, user)
	})

	g.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return writeError(c, err)
		}
		token, err := auth.IssueToken(user.ID, user.Role)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user": echo.Map{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	})
}
