package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"clubsite/internal/delivery/http/controllers"
	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/delivery/http/middleware"
	"clubsite/internal/domain"
)

// RouterConfig bundles the controllers and the token verifier the router
// wires together.
type RouterConfig struct {
	Events   *controllers.EventController
	Team     *controllers.TeamController
	Projects *controllers.ProjectController
	Users    *controllers.UserController
	Auth     *controllers.AuthController

	Verifier domain.TokenVerifier
	MediaDir string
}

// NewRouter initializes the HTTP router with all application routes. Reads are
// public; mutations require an admin bearer token.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(cfg.Verifier)
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireAdmin()(h))
	}

	// Events
	mux.HandleFunc("GET /events", cfg.Events.ListEvents)
	mux.HandleFunc("GET /events/{key}", cfg.Events.GetEvent)
	mux.HandleFunc("POST /events", admin(cfg.Events.CreateEvent))
	mux.HandleFunc("PUT /events/{id}", admin(cfg.Events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", admin(cfg.Events.DeleteEvent))
	mux.HandleFunc("POST /events/{id}/rsvp", cfg.Events.RSVP)

	// Team. The literal /team/archive pattern takes precedence over the
	// /team/{id} wildcard.
	mux.HandleFunc("GET /team", cfg.Team.ListMembers)
	mux.HandleFunc("GET /team/archive", cfg.Team.ListArchive)
	mux.HandleFunc("GET /team/{id}", cfg.Team.GetMember)
	mux.HandleFunc("POST /team", admin(cfg.Team.CreateMember))
	mux.HandleFunc("PUT /team/{id}", admin(cfg.Team.UpdateMember))
	mux.HandleFunc("DELETE /team/{id}", admin(cfg.Team.DeleteMember))

	// Projects
	mux.HandleFunc("GET /projects", cfg.Projects.ListProjects)
	mux.HandleFunc("POST /projects", admin(cfg.Projects.CreateProject))

	// Users (admin only)
	mux.HandleFunc("GET /users", admin(cfg.Users.ListUsers))
	mux.HandleFunc("GET /users/{id}", admin(cfg.Users.GetUser))
	mux.HandleFunc("POST /users", admin(cfg.Users.CreateUser))
	mux.HandleFunc("PUT /users/{id}", admin(cfg.Users.UpdateUser))
	mux.HandleFunc("DELETE /users/{id}", admin(cfg.Users.DeleteUser))

	// Auth
	mux.HandleFunc("POST /auth/login", cfg.Auth.Login)
	mux.HandleFunc("GET /auth/me", auth(cfg.Auth.Me))

	// Static media (event covers, member photos)
	if cfg.MediaDir != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(cfg.MediaDir))))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Liveness
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteMessage(w, http.StatusOK, "API is running")
	})

	return mux
}
