package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/book2screen/book2screen/internal/platform/middleware"
	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /progress route group. Everything here is derived
// from the active reader's ledger, so a session is required throughout.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Get("/", handler.allRecords)
	router.Get("/stats", handler.stats)
	router.Get("/favorites", handler.favorites)
	router.Get("/log", handler.log)

	router.Post("/{id}/toggle/{flag}", handler.toggleFlag)
	router.Post("/{id}/completion", handler.toggleCompletion)

	return router
}

// allRecords handles GET /progress.
func (handler *Handler) allRecords(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.AllRecords(request.Context()))
}

// stats handles GET /progress/stats.
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Stats(request.Context()))
}

// favorites handles GET /progress/favorites.
func (handler *Handler) favorites(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Favorites(request.Context()))
}

// log handles GET /progress/log.
func (handler *Handler) log(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Log(request.Context()))
}

// toggleFlag handles POST /progress/{id}/toggle/{flag}.
func (handler *Handler) toggleFlag(writer http.ResponseWriter, request *http.Request) {
	itemID := requestutil.ID(request, "id")
	flag := Flag(requestutil.Param(request, "flag"))

	record, err := handler.service.ToggleFlag(request.Context(), itemID, flag)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

// toggleCompletion handles POST /progress/{id}/completion.
func (handler *Handler) toggleCompletion(writer http.ResponseWriter, request *http.Request) {
	itemID := requestutil.ID(request, "id")

	record, err := handler.service.ToggleCompletion(request.Context(), itemID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}
