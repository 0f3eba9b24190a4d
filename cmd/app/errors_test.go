package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"GameReviewAPI/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"invalid credentials", model.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"unauthenticated", model.ErrUnauthenticated, http.StatusUnauthorized, "Authentication required"},
		{"access denied", model.ErrAccessDenied, http.StatusForbidden, "Access denied"},
		{"not found carries the resource", fmt.Errorf("game %w", model.ErrNotFound), http.StatusNotFound, "Game not found"},
		{"review not found", fmt.Errorf("review %w", model.ErrNotFound), http.StatusNotFound, "Review not found"},
		{"conflict", fmt.Errorf("user %w", model.ErrConflict), http.StatusBadRequest, "User already exists"},
		{"validation", fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation), http.StatusBadRequest, "Invalid input: rating must be between 1 and 5"},
		{"unexpected error is opaque", errors.New("connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, writeError(c, tc.err))
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantBody, body["message"])
		})
	}
}
