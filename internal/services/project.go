package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

type projectService struct {
	projectRepo    domain.ProjectRepository
	userRepo       domain.UserRepository
	contextTimeout time.Duration
}

func NewProjectService(projectRepo domain.ProjectRepository, userRepo domain.UserRepository, timeout time.Duration) domain.ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		contextTimeout: timeout,
	}
}

// ListProjects returns all projects with contributor user IDs resolved to
// names. An ID that no longer matches a user is passed through as-is with no
// name rather than dropped, so stale references stay visible.
func (s *projectService) ListProjects(ctx context.Context) ([]*domain.ProjectView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*domain.ProjectView, 0, len(projects))
	for _, p := range projects {
		view := &domain.ProjectView{Project: *p}
		view.Contributors = make([]domain.ContributorRef, 0, len(p.Contributors))
		for _, id := range p.Contributors {
			ref := domain.ContributorRef{ID: id}
			user, err := s.userRepo.GetByID(ctx, id)
			if err == nil {
				ref.Name = user.Name
			} else if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			view.Contributors = append(view.Contributors, ref)
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *projectService) CreateProject(ctx context.Context, project *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if project.Title == "" {
		return domain.ErrInvalidInput
	}

	project.ID = uuid.NewString()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	return s.projectRepo.Create(ctx, project)
}
