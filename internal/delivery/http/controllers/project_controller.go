package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

type ProjectController struct {
	Logger  *slog.Logger
	Service domain.ProjectService
}

func NewProjectController(logger *slog.Logger, svc domain.ProjectService) *ProjectController {
	return &ProjectController{
		Logger:  logger,
		Service: svc,
	}
}

// ListProjects godoc
// @Summary List projects
// @Description List all projects with contributor user IDs resolved to names.
// @Tags projects
// @Produce json
// @Success 200 {array} domain.ProjectView
// @Failure 500 {object} helpers.MessageResponse
// @Router /projects [get]
func (c *ProjectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := c.Service.ListProjects(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list projects failed", "err", err)
		helpers.WriteServiceError(w, err, "Project not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body domain.Project true "Project data; id and timestamps are server-generated"
// @Success 201 {object} domain.Project
// @Failure 400 {object} helpers.MessageResponse
// @Router /projects [post]
func (c *ProjectController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var project domain.Project
	if !helpers.DecodeAndValidate(w, r, &project) {
		return
	}
	if err := c.Service.CreateProject(r.Context(), &project); err != nil {
		c.Logger.ErrorContext(r.Context(), "create project failed", "err", err)
		helpers.WriteServiceError(w, err, "Project not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, project)
}
