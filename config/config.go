package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// DataDir is the directory holding one JSON document per collection.
	DataDir string
	// MediaDir is served statically under /media.
	MediaDir string

	JWTSecret string
	JWTExpiry time.Duration

	// FrontendURL is the single origin allowed by CORS.
	FrontendURL string

	// Seed admin credentials, ensured on startup.
	AdminEmail    string
	AdminPassword string

	Email EmailConfig
}

// EmailConfig holds mailer configuration. Provider "ses" uses AWS SES,
// anything else falls back to a no-op mailer.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:   env,
		Port:          os.Getenv("PORT"),
		DataDir:       os.Getenv("DATA_DIR"),
		MediaDir:      os.Getenv("MEDIA_DIR"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("SES_REGION"),
			SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
		},
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "db"
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = "media"
	}
	if cfg.FrontendURL == "" {
		cfg.FrontendURL = "http://localhost:5173"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	// The admin dashboard has no refresh flow, so tokens are long-lived.
	cfg.JWTExpiry = 30 * 24 * time.Hour
	if s := os.Getenv("JWT_EXPIRY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			cfg.JWTExpiry = d
		} else {
			log.Printf("Warning: invalid JWT_EXPIRY %q, using default", s)
		}
	}

	return cfg, nil
}
