package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"clubsite/config"
	authadapter "clubsite/internal/adapters/auth"
	emailadapter "clubsite/internal/adapters/email"
	delivery "clubsite/internal/delivery/http"
	"clubsite/internal/delivery/http/controllers"
	"clubsite/internal/delivery/http/middleware"
	"clubsite/internal/repository/jsonstore"
	"clubsite/internal/services"

	_ "clubsite/docs"
)

const serviceTimeout = 10 * time.Second

// @title Club Site API
// @version 1.0
// @description REST backend for the club website: events, team, projects, and admin user management.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	logger.Info("starting api",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"dataDir", cfg.DataDir,
	)

	// Repositories (flat-file JSON store)
	eventRepo, err := jsonstore.NewEventRepository(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open events store", "error", err)
		os.Exit(1)
	}
	memberRepo, err := jsonstore.NewMemberRepository(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open teams store", "error", err)
		os.Exit(1)
	}
	projectRepo, err := jsonstore.NewProjectRepository(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open projects store", "error", err)
		os.Exit(1)
	}
	userRepo, err := jsonstore.NewUserRepository(cfg.DataDir)
	if err != nil {
		logger.Error("failed to open users store", "error", err)
		os.Exit(1)
	}

	// Adapters
	hasher := authadapter.NewBcryptHasher(10)
	tokens := authadapter.NewJWTCodec(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	teamService := services.NewTeamService(memberRepo, serviceTimeout)
	projectService := services.NewProjectService(projectRepo, userRepo, serviceTimeout)
	userService := services.NewUserService(userRepo, hasher, emailService, logger, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, tokens, cfg.JWTExpiry, logger, serviceTimeout)

	if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	mux := delivery.NewRouter(delivery.RouterConfig{
		Events:   controllers.NewEventController(logger, eventService),
		Team:     controllers.NewTeamController(logger, teamService),
		Projects: controllers.NewProjectController(logger, projectService),
		Users:    controllers.NewUserController(logger, userService),
		Auth:     controllers.NewAuthController(logger, authService),
		Verifier: tokens,
		MediaDir: cfg.MediaDir,
	})

	handler := middleware.CORS([]string{cfg.FrontendURL},
		middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("api server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
