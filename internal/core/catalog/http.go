package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/book2screen/book2screen/internal/platform/middleware"
	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
	"github.com/book2screen/book2screen/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /adaptations route group. The per-item review
// routes are injected as a plain handler so this package stays
// decoupled from the review ledger.
//
// The famous-novels listing is public; browsing, detail, and
// recommendations require a session, mirroring the login gate on the
// catalog pages.
func (handler *Handler) Routes(itemReviews http.Handler) chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/famous", handler.listFamous)

	// Session required
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/", handler.browse)
		r.Get("/{id}", handler.getAdaptation)
		r.Get("/{id}/recommendations", handler.recommendations)
		r.Mount("/{id}/reviews", itemReviews)
	})

	return router
}

// browse handles GET /adaptations?q=&genre=&show_completed=.
func (handler *Handler) browse(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	query := Query{
		Text:          params.Get("q"),
		Genre:         params.Get("genre"),
		ShowCompleted: convert.ToBool(params.Get("show_completed")),
	}

	respond.OK(writer, handler.service.Browse(request.Context(), query))
}

// listFamous handles GET /adaptations/famous.
func (handler *Handler) listFamous(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ListFamous(request.Context()))
}

// getAdaptation handles GET /adaptations/{id}.
func (handler *Handler) getAdaptation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	item, err := handler.service.GetAdaptation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

// recommendations handles GET /adaptations/{id}/recommendations.
func (handler *Handler) recommendations(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	related, err := handler.service.Recommendations(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, related)
}
