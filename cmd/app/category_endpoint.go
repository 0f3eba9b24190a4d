package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name string `json:"name"`
}

// registerCategoryRoutes mounts category endpoints.
//
// Public:
//
//	GET /categories -> list
//
// Admin:
//
//	POST   /categories
//	PUT    /categories/:id
//	DELETE /categories/:id   -> 204
func registerCategoryRoutes(g *echo.Group, catSvc *services.CategoryService, auth *middleware.Authenticator) {
	g.GET("/categories", func(c echo.Context) error {
		cats, err := catSvc.ListCategories(c.Request().Context(), auth.TryGetActor(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, cats)
	})

	protected := g.Group("/categories")
	protected.Use(auth.Require())

	protected.POST("", func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		cat, err := catSvc.CreateCategory(c.Request().Context(), middleware.GetActor(c), req.Name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, cat)
	})

	protected.PUT("/:id", func(c echo.Context) error {
		req := new(categoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		cat, err := catSvc.UpdateCategory(c.Request().Context(), middleware.GetActor(c), c.Param("id"), req.Name)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, cat)
	})

	protected.DELETE("/:id", func(c echo.Context) error {
		if err := catSvc.DeleteCategory(c.Request().Context(), middleware.GetActor(c), c.Param("id")); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
