package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

type TeamController struct {
	Logger  *slog.Logger
	Service domain.TeamService
}

func NewTeamController(logger *slog.Logger, svc domain.TeamService) *TeamController {
	return &TeamController{
		Logger:  logger,
		Service: svc,
	}
}

// ArchiveResponse is the paginated body of GET /team/archive.
type ArchiveResponse struct {
	Data []*domain.Member       `json:"data"`
	Meta helpers.PaginationMeta `json:"meta"`
}

// ListMembers godoc
// @Summary List team members
// @Tags team
// @Produce json
// @Success 200 {array} domain.Member
// @Failure 500 {object} helpers.MessageResponse
// @Router /team [get]
func (c *TeamController) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := c.Service.ListMembers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list members failed", "err", err)
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, members)
}

// GetMember godoc
// @Summary Get one team member
// @Tags team
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} domain.Member
// @Failure 404 {object} helpers.MessageResponse
// @Router /team/{id} [get]
func (c *TeamController) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := c.Service.GetMember(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, member)
}

// ListArchive godoc
// @Summary List archived committee members
// @Description Members from past committee years, oldest committee first, paginated.
// @Tags team
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} controllers.ArchiveResponse
// @Failure 500 {object} helpers.MessageResponse
// @Router /team/archive [get]
func (c *TeamController) ListArchive(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	members, total, err := c.Service.ListArchive(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list archive failed", "err", err)
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ArchiveResponse{
		Data: members,
		Meta: helpers.NewPaginationMeta(params.Page, params.Limit, total),
	})
}

// CreateMember godoc
// @Summary Add a team member
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param member body domain.Member true "Member data; id and timestamps are server-generated"
// @Success 201 {object} domain.Member
// @Failure 400 {object} helpers.MessageResponse
// @Router /team [post]
func (c *TeamController) CreateMember(w http.ResponseWriter, r *http.Request) {
	var member domain.Member
	if !helpers.DecodeAndValidate(w, r, &member) {
		return
	}
	if err := c.Service.CreateMember(r.Context(), &member); err != nil {
		c.Logger.ErrorContext(r.Context(), "create member failed", "err", err)
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, member)
}

// UpdateMember godoc
// @Summary Update a team member
// @Description Partial update: only fields present in the body are changed.
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param member body domain.MemberPatch true "Fields to update"
// @Success 200 {object} domain.Member
// @Failure 404 {object} helpers.MessageResponse
// @Router /team/{id} [put]
func (c *TeamController) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var patch domain.MemberPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	member, err := c.Service.UpdateMember(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, member)
}

// DeleteMember godoc
// @Summary Remove a team member
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /team/{id} [delete]
func (c *TeamController) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteMember(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, err, "Team member not found")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Team member removed")
}
