package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/book2screen/book2screen/internal/platform/middleware"
	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
	"github.com/book2screen/book2screen/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /admin route group. Every endpoint requires an
// admin session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Route("/adaptations", func(r chi.Router) {
		r.Post("/", handler.saveAdaptation)
		r.Put("/{id}", handler.saveAdaptation)
		r.Delete("/{id}", handler.deleteAdaptation)
		r.Get("/{id}/draft", handler.adaptationDraft)
	})

	router.Route("/authors", func(r chi.Router) {
		r.Post("/", handler.saveAuthor)
		r.Put("/{id}", handler.saveAuthor)
		r.Delete("/{id}", handler.deleteAuthor)
		r.Get("/{id}/draft", handler.authorDraft)
	})

	return router
}

// saveAdaptation handles POST /admin/adaptations and
// PUT /admin/adaptations/{id}. The body is the raw form draft; a path
// ID, when present, wins over the one in the body.
func (handler *Handler) saveAdaptation(writer http.ResponseWriter, request *http.Request) {
	var draft AdaptationDraft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if id := requestutil.Param(request, "id"); id != "" {
		draft.ID = id
	}

	item, err := handler.service.SaveAdaptation(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if draft.ID == "" {
		respond.Created(writer, item)
		return
	}
	respond.OK(writer, item)
}

// deleteAdaptation handles DELETE /admin/adaptations/{id}.
func (handler *Handler) deleteAdaptation(writer http.ResponseWriter, request *http.Request) {
	handler.service.DeleteAdaptation(request.Context(), requestutil.ID(request, "id"))
	respond.NoContent(writer)
}

// adaptationDraft handles GET /admin/adaptations/{id}/draft.
func (handler *Handler) adaptationDraft(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.AdaptationDraftFor(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}

// saveAuthor handles POST /admin/authors and PUT /admin/authors/{id}.
func (handler *Handler) saveAuthor(writer http.ResponseWriter, request *http.Request) {
	var draft AuthorDraft
	if err := requestutil.DecodeJSON(request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if id := requestutil.Param(request, "id"); id != "" {
		draft.ID = id
	}

	item, err := handler.service.SaveAuthor(request.Context(), draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if draft.ID == "" {
		respond.Created(writer, item)
		return
	}
	respond.OK(writer, item)
}

// deleteAuthor handles DELETE /admin/authors/{id}.
func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	handler.service.DeleteAuthor(request.Context(), requestutil.ID(request, "id"))
	respond.NoContent(writer)
}

// authorDraft handles GET /admin/authors/{id}/draft.
func (handler *Handler) authorDraft(writer http.ResponseWriter, request *http.Request) {
	draft, err := handler.service.AuthorDraftFor(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, draft)
}
