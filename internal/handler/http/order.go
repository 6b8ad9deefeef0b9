package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/retouchhive/office-backend/internal/domain/order"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	ExtendDeadline(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type OrderHandlerImpl struct {
	orderService order.Service
}

func NewOrderHandler(orderService order.Service) OrderHandler {
	return &OrderHandlerImpl{orderService: orderService}
}

// Create implements OrderHandler.
func (h *OrderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create order error", "order_id", req.OrderID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created", resp)
}

// Get implements OrderHandler.
func (h *OrderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orderService.Get(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements OrderHandler.
func (h *OrderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := order.ListFilter{}
	if v := q.Get("client_id"); v != "" {
		filter.ClientID = &v
	}
	if v := q.Get("status"); v != "" {
		status := order.Status(v)
		filter.Status = &status
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	resp, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetStatus implements OrderHandler.
func (h *OrderHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req order.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrderID = chi.URLParam(r, "orderID")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.orderService.SetStatus(r.Context(), req)
	if err != nil {
		slog.Error("Set order status error", "order_id", req.OrderID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order status updated", resp)
}

// ExtendDeadline implements OrderHandler.
func (h *OrderHandlerImpl) ExtendDeadline(w http.ResponseWriter, r *http.Request) {
	var req order.ExtendDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OrderID = chi.URLParam(r, "orderID")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.orderService.ExtendDeadline(r.Context(), req)
	if err != nil {
		slog.Error("Extend order deadline error", "order_id", req.OrderID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order deadline extended", resp)
}

// Restore implements OrderHandler.
func (h *OrderHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	resp, err := h.orderService.Restore(r.Context(), orderID)
	if err != nil {
		slog.Error("Restore order error", "order_id", orderID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Order restored", resp)
}
