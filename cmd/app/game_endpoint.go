package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/model"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type gameRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CategoryID  *string `json:"category_id,omitempty"`
	ImageURL    string  `json:"image_url"`
}

// registerGameRoutes mounts game endpoints.
//
// Public:
//
//	GET /games      -> list (?search=&category=)
//	GET /games/:id  -> {game, reviews}
//
// Admin (games are admin-curated):
//
//	POST   /games
//	PUT    /games/:id
//	DELETE /games/:id  -> 204
func registerGameRoutes(g *echo.Group, gameSvc *services.GameService, auth *middleware.Authenticator) {
	g.GET("/games", func(c echo.Context) error {
		games, err := gameSvc.ListGames(
			c.Request().Context(),
			auth.TryGetActor(c),
			c.QueryParam("search"),
			c.QueryParam("category"),
		)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, games)
	})

	g.GET("/games/:id", func(c echo.Context) error {
		game, reviews, err := gameSvc.GetGame(c.Request().Context(), auth.TryGetActor(c), c.Param("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"game":    game,
			"reviews": reviews,
		})
	})

	protected := g.Group("/games")
	protected.Use(auth.Require())

	protected.POST("", func(c echo.Context) error {
		req := new(gameRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		game, err := gameSvc.CreateGame(c.Request().Context(), middleware.GetActor(c), &model.Game{
			Title:       req.Title,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, game)
	})

	protected.PUT("/:id", func(c echo.Context) error {
		req := new(gameRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		game, err := gameSvc.UpdateGame(c.Request().Context(), middleware.GetActor(c), &model.Game{
			ID:          c.Param("id"),
			Title:       req.Title,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, game)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := gameSvc.DeleteGame(c.Request().Context(), middleware.GetActor(c), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
