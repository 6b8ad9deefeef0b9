package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/domain/order"
)

type OrderServiceImpl struct {
	orderRepository  order.Repository
	clientRepository client.Repository
}

func NewOrderService(orderRepository order.Repository, clientRepository client.Repository) order.Service {
	return &OrderServiceImpl{
		orderRepository:  orderRepository,
		clientRepository: clientRepository,
	}
}

func toResponse(o order.Order) order.OrderResponse {
	resp := order.OrderResponse{
		ID:          o.ID,
		OrderID:     o.OrderID,
		ClientID:    o.ClientID,
		Title:       o.Title,
		Details:     o.Details,
		ImageQty:    o.ImageQty,
		Price:       o.Price,
		OrderStatus: string(o.OrderStatus),
		IsLocked:    o.IsLocked,
	}
	if o.Deadline != nil {
		d := o.Deadline.Format(time.RFC3339)
		resp.Deadline = &d
	}
	return resp
}

// Create implements order.Service. The order lands in the client's
// order history at the same time.
func (s *OrderServiceImpl) Create(ctx context.Context, req order.CreateRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	if _, err := s.clientRepository.GetByClientID(ctx, req.ClientID); err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return order.OrderResponse{}, order.ErrClientNotFound
		}
		return order.OrderResponse{}, err
	}

	o := order.Order{
		OrderID:     req.OrderID,
		ClientID:    req.ClientID,
		Title:       req.Title,
		Details:     req.Details,
		ImageQty:    req.ImageQty,
		Price:       req.Price,
		OrderStatus: order.StatusPending,
	}
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return order.OrderResponse{}, fmt.Errorf("invalid deadline: %w", err)
		}
		o.Deadline = &d
	}

	created, err := s.orderRepository.Create(ctx, o)
	if err != nil {
		return order.OrderResponse{}, err
	}

	if err := s.clientRepository.AppendOrderHistory(ctx, client.OrderHistoryEntry{
		ClientID: req.ClientID,
		OrderID:  req.OrderID,
		Note:     req.Details,
	}); err != nil {
		return order.OrderResponse{}, fmt.Errorf("failed to append order history: %w", err)
	}

	return toResponse(created), nil
}

// Get implements order.Service.
func (s *OrderServiceImpl) Get(ctx context.Context, orderID string) (order.OrderResponse, error) {
	o, err := s.orderRepository.GetByOrderID(ctx, orderID)
	if err != nil {
		return order.OrderResponse{}, err
	}
	return toResponse(o), nil
}

// List implements order.Service.
func (s *OrderServiceImpl) List(ctx context.Context, filter order.ListFilter) (order.ListOrdersResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	orders, total, err := s.orderRepository.List(ctx, filter)
	if err != nil {
		return order.ListOrdersResponse{}, err
	}

	resp := order.ListOrdersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Orders:     make([]order.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toResponse(o))
	}
	return resp, nil
}

// SetStatus implements order.Service. Completed and Cancel set the
// lock; a locked order rejects any further status change until it is
// reopened.
func (s *OrderServiceImpl) SetStatus(ctx context.Context, req order.SetStatusRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}
	target := order.Status(req.Status)

	o, err := s.orderRepository.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return order.OrderResponse{}, err
	}

	if err := o.CanTransition(target); err != nil {
		return order.OrderResponse{}, err
	}

	locked := target.Locks()
	if err := s.orderRepository.SetStatus(ctx, req.OrderID, target, locked); err != nil {
		return order.OrderResponse{}, err
	}

	o.OrderStatus = target
	o.IsLocked = locked
	return toResponse(o), nil
}

// ExtendDeadline implements order.Service.
func (s *OrderServiceImpl) ExtendDeadline(ctx context.Context, req order.ExtendDeadlineRequest) (order.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return order.OrderResponse{}, fmt.Errorf("invalid deadline: %w", err)
	}

	if err := s.orderRepository.Reopen(ctx, req.OrderID, &deadline); err != nil {
		return order.OrderResponse{}, err
	}
	return s.Get(ctx, req.OrderID)
}

// Restore implements order.Service. Restoring reopens the order with
// its deadline untouched.
func (s *OrderServiceImpl) Restore(ctx context.Context, orderID string) (order.OrderResponse, error) {
	if err := s.orderRepository.Reopen(ctx, orderID, nil); err != nil {
		return order.OrderResponse{}, err
	}
	return s.Get(ctx, orderID)
}
