package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createCommentRequest struct {
	ReviewID    string `json:"review_id"`
	CommentText string `json:"comment_text"`
}

type updateCommentRequest struct {
	CommentText string `json:"comment_text"`
}

// registerCommentRoutes mounts comment endpoints. All require a token;
// update/delete are owner-or-admin.
func registerCommentRoutes(g *echo.Group, commentSvc *services.CommentService, auth *middleware.Authenticator) {
	protected := g.Group("/comments")
	protected.Use(auth.Require())

	protected.POST("", func(c echo.Context) error {
		req := new(createCommentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		comment, err := commentSvc.CreateComment(c.Request().Context(), middleware.GetActor(c), req.ReviewID, req.CommentText)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, comment)
	})

	protected.PUT("/:id", func(c echo.Context) error {
		req := new(updateCommentRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		comment, err := commentSvc.UpdateComment(c.Request().Context(), middleware.GetActor(c), c.Param("id"), req.CommentText)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, comment)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := commentSvc.DeleteComment(c.Request().Context(), middleware.GetActor(c), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
