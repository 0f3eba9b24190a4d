package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createReviewRequest struct {
	GameID     string `json:"game_id"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

type updateReviewRequest struct {
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
}

// registerReviewRoutes mounts review endpoints.
//
// Public:
//
//	GET /reviews/:id/comments -> list (intentionally unauthenticated)
//
// Authenticated:
//
//	POST   /reviews      -> 201
//	PUT    /reviews/:id  -> owner or admin
//	DELETE /reviews/:id  -> owner or admin, 204
func registerReviewRoutes(g *echo.Group, reviewSvc *services.ReviewService, commentSvc *services.CommentService, auth *middleware.Authenticator) {
	g.GET("/reviews/:id/comments", func(c echo.Context) error {
		comments, err := commentSvc.ListForReview(c.Request().Context(), auth.TryGetActor(c), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, comments)
	})

	protected := g.Group("/reviews")
	protected.Use(auth.Require())

	protected.POST("", func(c echo.Context) error {
		req := new(createReviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		review, err := reviewSvc.CreateReview(c.Request().Context(), middleware.GetActor(c), req.GameID, req.Rating, req.ReviewText)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, review)
	})

	protected.PUT("/:id", func(c echo.Context) error {
		req := new(updateReviewRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		review, err := reviewSvc.UpdateReview(c.Request().Context(), middleware.GetActor(c), c.Param("id"), req.Rating, req.ReviewText)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, review)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := reviewSvc.DeleteReview(c.Request().Context(), middleware.GetActor(c), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
