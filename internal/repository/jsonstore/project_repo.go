package jsonstore

import (
	"context"
	"path/filepath"
	"sync"

	"clubsite/internal/domain"
)

// projectDocument is the persisted shape of projects.json.
type projectDocument struct {
	Projects []*domain.Project `json:"projects"`
}

type projectRepository struct {
	path string

	mu       sync.RWMutex
	projects []*domain.Project
}

// NewProjectRepository loads dataDir/projects.json and returns a repository
// backed by it.
func NewProjectRepository(dataDir string) (domain.ProjectRepository, error) {
	r := &projectRepository{path: filepath.Join(dataDir, "projects.json")}
	var doc projectDocument
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, err
	}
	r.projects = doc.Projects
	return r, nil
}

func (r *projectRepository) flushLocked() error {
	return saveDocument(r.path, projectDocument{Projects: r.projects})
}

func (r *projectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, project)
	return r.flushLocked()
}
