package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/book2screen/book2screen/internal/platform/request"
	"github.com/book2screen/book2screen/internal/platform/respond"
	"github.com/book2screen/book2screen/internal/platform/validate"
	"github.com/book2screen/book2screen/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the global /reviews route group.
//
// The ledger is readable and writable without a session, matching the
// public reviews page where anyone may submit under a free-text name.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.add)

	return router
}

// ItemRoutes returns the route group mounted under
// /adaptations/{id}/reviews. The session gate comes from the parent
// group.
func (handler *Handler) ItemRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listByItem)
	router.Post("/", handler.addForItem)

	return router
}

type submitRequest struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Date     string `json:"date"`
}

// list handles GET /reviews with an optional ?user= filter. The
// unfiltered ledger is paginated; the per-user view is small enough to
// return whole.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	if userName := request.URL.Query().Get("user"); userName != "" {
		respond.OK(writer, handler.service.ByUser(request.Context(), userName))
		return
	}

	params := pagination.FromRequest(request)
	all := handler.service.ListAll(request.Context())

	offset := min(params.Offset(), len(all))
	end := min(offset+params.Limit, len(all))

	respond.Paginated(writer, all[offset:end], pagination.NewMeta(params.Page, params.Limit, len(all)))
}

// add handles POST /reviews.
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	added := handler.service.Add(request.Context(), Review{
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
		ItemID:   input.ItemID,
		ItemName: input.ItemName,
		Date:     input.Date,
	})
	respond.Created(writer, added)
}

// listByItem handles GET /adaptations/{id}/reviews.
func (handler *Handler) listByItem(writer http.ResponseWriter, request *http.Request) {
	itemID := requestutil.ID(request, "id")
	respond.OK(writer, handler.service.ByItem(request.Context(), itemID))
}

// addForItem handles POST /adaptations/{id}/reviews. The item ID comes
// from the URL, overriding whatever the body carries.
func (handler *Handler) addForItem(writer http.ResponseWriter, request *http.Request) {
	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	added := handler.service.Add(request.Context(), Review{
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  input.Comment,
		ItemID:   requestutil.ID(request, "id"),
		ItemName: input.ItemName,
		Date:     input.Date,
	})
	respond.Created(writer, added)
}
