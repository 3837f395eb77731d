package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	RollNo   string `json:"rollNo"`
	Semester string `json:"semester"`
}

// Validate implements Validator.
func (c CreateUserRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// UpdateUserRequest is the request body for PUT /users/{id}. All fields are
// optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	RollNo   *string `json:"rollNo"`
	Semester *string `json:"semester"`
	Password *string `json:"password"`
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.User
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Router /users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListUsers(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list users failed", "err", err)
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get one user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.MessageResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.Service.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// CreateUser godoc
// @Summary Create a user
// @Description Create a user account. The password is hashed before storage and a welcome email is sent best-effort.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.MessageResponse
// @Router /users [post]
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.CreateUser(r.Context(), domain.NewUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		RollNo:   req.RollNo,
		Semester: req.Semester,
	})
	if err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partial update: only fields present in the body are changed. A new password is re-hashed.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.UpdateUser(r.Context(), r.PathValue("id"), domain.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		RollNo:   req.RollNo,
		Semester: req.Semester,
		Password: req.Password,
	})
	if err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "User removed")
}
