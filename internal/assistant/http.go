package assistant

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

// Routes returns the /assistant route group. The chat widget is shown
// to every visitor, so the endpoints are public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/messages", handler.transcript)
	router.Post("/messages", handler.send)

	return router
}

// transcript handles GET /assistant/messages.
func (handler *Handler) transcript(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Transcript(request.Context()))
}

type sendRequest struct {
	Text string `json:"text"`
}

// send handles POST /assistant/messages.
func (handler *Handler) send(writer http.ResponseWriter, request *http.Request) {
	var payload sendRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reply, err := handler.service.Send(request.Context(), payload.Text)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, reply)
}
