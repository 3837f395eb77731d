package domain

import (
	"context"
	"time"
)

// Project represents one club project. Contributors holds user IDs.
// swagger:model Project
type Project struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ShortDesc string `json:"shortDesc"`
	LongDesc  string `json:"longDesc"`

	Contributors []string `json:"contributors"`
	RepoURL      string   `json:"repoUrl,omitempty"`
	Tags         []string `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContributorRef is a resolved contributor in project listings. When the
// stored user ID no longer resolves, Name is empty and ID carries the raw
// value through unchanged.
type ContributorRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// ProjectView is a project with contributors resolved to user names for
// public listings.
// swagger:model ProjectView
type ProjectView struct {
	Project
	Contributors []ContributorRef `json:"contributors"`
}

// ProjectRepository defines the interface for project storage.
type ProjectRepository interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, project *Project) error
}

// ProjectService defines the business logic for projects.
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*ProjectView, error)
	CreateProject(ctx context.Context, project *Project) error
}
