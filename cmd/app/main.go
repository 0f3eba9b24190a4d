package main

import (
	"context"
	"log"

	"GameReviewAPI/external/abstractapi"
	"GameReviewAPI/external/resend"

	"GameReviewAPI/internal/config"
	"GameReviewAPI/internal/db"
	"GameReviewAPI/internal/middleware"
	"GameReviewAPI/internal/repository"
	"GameReviewAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/kelseyhightower/envconfig"
)

type secrets struct {
	ResendAPIKey        string `envconfig:"RESEND_API_KEY"`
	AbstractEmailAPIKey string `envconfig:"ABSTRACT_EMAIL_API_KEY"`
}

func main() {
	ctx := context.Background()

	// ======================
	// CONFIG
	// ======================
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	var sec secrets
	if err := envconfig.Process("", &sec); err != nil {
		log.Fatal(err)
	}

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatal(err)
	}

	// ======================
	// EXTERNALS
	// ======================
	var emailValidator services.EmailValidator
	if cfg.UseEmailReputation {
		emailValidator, err = abstractapi.NewAbstractReputationValidator(sec.AbstractEmailAPIKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var reportMailer services.ReportMailer
	if cfg.ReportNotifyEmail != "" {
		mailer, err := resend.NewResendMailer(sec.ResendAPIKey, "GameReview<onboarding@resend.dev>")
		if err != nil {
			log.Fatal(err)
		}
		reportMailer = mailer
	}

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// ======================
	// SERVICES
	// ======================
	auth := middleware.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, emailValidator, cfg.BcryptCost)
	userSvc := services.NewUserService(userRepo, reviewRepo, commentRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	gameSvc := services.NewGameService(gameRepo, categoryRepo, reviewRepo)
	reviewSvc := services.NewReviewService(reviewRepo, gameRepo)
	commentSvc := services.NewCommentService(commentRepo, reviewRepo)
	reportSvc := services.NewReportService(reportRepo, reviewRepo, commentRepo, reportMailer, cfg.ReportNotifyEmail)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, auth)
	registerUserRoutes(api, userSvc, auth)
	registerCategoryRoutes(api, categorySvc, auth)
	registerGameRoutes(api, gameSvc, auth)
	registerReviewRoutes(api, reviewSvc, commentSvc, auth)
	registerCommentRoutes(api, commentSvc, auth)
	registerReportRoutes(api, reportSvc, auth)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
