package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewUserService(userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		hasher:         hasher,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, input domain.NewUserInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		RollNo:       input.RollNo,
		Semester:     input.Semester,
		Role:         role,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// The account exists either way; a failed welcome email is logged, not
	// surfaced.
	if err := s.emailService.SendWelcome(ctx, &domain.WelcomeEmailData{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}); err != nil {
		s.logger.Warn("welcome email failed", "email", user.Email, "error", err)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidInput
	}
	if input.Email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *input.Email)
		if err == nil && existing.ID != id {
			return nil, domain.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	patch := domain.UserPatch{
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		RollNo:   input.RollNo,
		Semester: input.Semester,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	return s.userRepo.Update(ctx, id, patch)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.Delete(ctx, id)
}
