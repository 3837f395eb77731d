package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

type authService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	tokenExpiry    time.Duration
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewAuthService(userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		hasher:         hasher,
		issuer:         issuer,
		tokenExpiry:    tokenExpiry,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// AdminLogin authenticates against the stored hash and issues a token. An
// unknown email and a wrong password are indistinguishable to the caller;
// only a valid non-admin account gets the distinct ErrForbidden.
func (s *authService) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if user.Role != domain.RoleAdmin {
		return nil, "", domain.ErrForbidden
	}

	token, err := s.issuer.Issue(user.ID, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.GetByID(ctx, userID)
}

// EnsureAdmin seeds the configured admin account at startup. A missing
// account is created; an existing one is converged so a changed password or
// demoted role in the store never locks the admin out.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if email == "" || password == "" {
		return nil
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		admin := &domain.User{
			ID:           uuid.NewString(),
			Name:         "Admin",
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			IsVerified:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.userRepo.Create(ctx, admin); err != nil {
			return err
		}
		s.logger.Info("admin user created", "email", email)
		return nil
	}

	patch := domain.UserPatch{}
	if user.Role != domain.RoleAdmin {
		role := domain.RoleAdmin
		patch.Role = &role
	}
	if s.hasher.Compare(user.PasswordHash, password) != nil {
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}
	if patch.Role == nil && patch.PasswordHash == nil {
		return nil
	}
	if _, err := s.userRepo.Update(ctx, user.ID, patch); err != nil {
		return err
	}
	s.logger.Info("admin user converged", "email", email)
	return nil
}
