package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService client.Service
}

func NewClientHandler(clientService client.Service) ClientHandler {
	return &ClientHandlerImpl{clientService: clientService}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req client.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.clientService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create client error", "client_id", req.ClientID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", resp)
}

// Get implements ClientHandler.
func (h *ClientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.Get(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.clientService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
