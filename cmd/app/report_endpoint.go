package main

import (
	"net/http"

	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createReportRequest struct {
	ReviewID  *string `json:"review_id,omitempty"`
	CommentID *string `json:"comment_id,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// registerReportRoutes mounts content-report endpoints.
//
//	POST /reports -> authenticated, 201
//	GET  /reports -> admin
func registerReportRoutes(g *echo.Group, reportSvc *services.ReportService, auth *middleware.Authenticator) {
	protected := g.Group("/reports")
	protected.Use(auth.Require())

	protected.POST("", func(c echo.Context) error {
		req := new(createReportRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		report, err := reportSvc.CreateReport(c.Request().Context(), middleware.GetActor(c), req.ReviewID, req.CommentID, req.Reason)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, report)
	})

	protected.GET("", func(c echo.Context) error {
		reports, err := reportSvc.ListReports(c.Request().Context(), middleware.GetActor(c))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, reports)
	})
}
