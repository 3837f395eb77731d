package controllers

import (
	"log/slog"
	"net/http"

	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/delivery/http/middleware"
	"clubsite/internal/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	if l.Email == "" || l.Password == "" {
		return []string{"Email and password are required"}
	}
	return nil
}

// LoginResponse is the success body for POST /auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticate an admin account and issue a bearer token. Non-admin accounts are rejected with 403 even when the credentials are valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, token, err := c.Service.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := c.Service.GetMe(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, err, "User not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
