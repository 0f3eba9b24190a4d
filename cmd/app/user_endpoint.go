package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type updateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

// registerUserRoutes mounts the profile and user-administration endpoints.
// All of them require a token; role and ownership checks happen in the
// service via the access core.
//
//	GET    /users/me           -> own profile
//	PUT    /users/me           -> update own profile
//	GET    /users/:id/reviews  -> self or admin
//	GET    /users/:id/comments -> self or admin
//	GET    /users              -> admin
//	PUT    /users/:id/role     -> admin
//	DELETE /users/:id          -> admin
func registerUserRoutes(g *echo.Group, userSvc *services.UserService, auth *middleware.Authenticator) {
	protected := g.Group("/users")
	protected.Use(auth.Require())

	protected.GET("/me", func(c echo.Context) error {
		user, err := userSvc.GetProfile(c.Request().Context(), middleware.GetActor(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	protected.PUT("/me", func(c echo.Context) error {
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		user, err := userSvc.UpdateProfile(c.Request().Context(), middleware.GetActor(c), req.Username, req.Email)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	protected.GET("/:id/reviews", func(c echo.Context) error {
		reviews, err := userSvc.ListUserReviews(c.Request().Context(), middleware.GetActor(c), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, reviews)
	})

	protected.GET("/:id/comments", func(c echo.Context) error {
		comments, err := userSvc.ListUserComments(c.Request().Context(), middleware.GetActor(c), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, comments)
	})

	protected.GET("", func(c echo.Context) error {
		users, err := userSvc.ListUsers(c.Request().Context(), middleware.GetActor(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, users)
	})

	protected.PUT("/:id/role", func(c echo.Context) error {
		req := new(changeRoleRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		user, err := userSvc.ChangeRole(c.Request().Context(), middleware.GetActor(c), c.Param("id"), req.Role)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, user)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := userSvc.DeleteUser(c.Request().Context(), middleware.GetActor(c), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
