package place

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/book2screen/book2screen/internal/platform/respond"
	"github.com/book2screen/book2screen/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public /places route group.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	return router
}

// list handles GET /places?types=Fair,Library.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	types := query.StringSlice(request.URL.Query().Get("types"))
	respond.OK(writer, handler.service.List(request.Context(), types))
}
