package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the public /authors route group. Mutations go through
// the admin routes instead.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listAuthors)
	router.Get("/{id}", handler.getAuthor)

	return router
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListAuthors(request.Context()))
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	item, err := handler.service.GetAuthor(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}
