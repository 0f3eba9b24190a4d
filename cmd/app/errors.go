package main

import (
	"errors"
	"net/http"
	"unicode"

	"GameReviewAPI/internal/model"

	"github.com/labstack/echo/v4"
)

// writeError maps the service error taxonomy to the HTTP contract. Denials
// are propagated verbatim; storage and transport failures collapse to a
// generic 500 so no driver detail reaches the client.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	case errors.Is(err, model.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
	case errors.Is(err, model.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied"})
	case errors.Is(err, model.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": capitalize(err.Error())})
	case errors.Is(err, model.ErrConflict), errors.Is(err, model.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": capitalize(err.Error())})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
