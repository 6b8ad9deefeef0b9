package client

import (
	"context"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepository client.Repository
}

func NewClientService(clientRepository client.Repository) client.Service {
	return &ClientServiceImpl{clientRepository: clientRepository}
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Name:      c.Name,
		Country:   c.Country,
		Email:     c.Email,
		Messenger: c.Messenger,
	}
}

// Create implements client.Service.
func (s *ClientServiceImpl) Create(ctx context.Context, req client.CreateRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepository.Create(ctx, client.Client{
		ClientID:  req.ClientID,
		Name:      req.Name,
		Country:   req.Country,
		Email:     req.Email,
		Messenger: req.Messenger,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}
	return toResponse(created), nil
}

// Get implements client.Service. The detail view folds in both history
// logs.
func (s *ClientServiceImpl) Get(ctx context.Context, clientID string) (client.ClientDetailResponse, error) {
	c, err := s.clientRepository.GetByClientID(ctx, clientID)
	if err != nil {
		return client.ClientDetailResponse{}, err
	}

	orderHistory, err := s.clientRepository.ListOrderHistory(ctx, clientID)
	if err != nil {
		return client.ClientDetailResponse{}, err
	}
	paymentHistory, err := s.clientRepository.ListPaymentHistory(ctx, clientID)
	if err != nil {
		return client.ClientDetailResponse{}, err
	}

	detail := client.ClientDetailResponse{
		Client:         toResponse(c),
		OrderHistory:   make([]client.OrderHistoryResponse, 0, len(orderHistory)),
		PaymentHistory: make([]client.PaymentHistoryResponse, 0, len(paymentHistory)),
	}
	for _, entry := range orderHistory {
		detail.OrderHistory = append(detail.OrderHistory, client.OrderHistoryResponse{
			OrderID:   entry.OrderID,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, entry := range paymentHistory {
		detail.PaymentHistory = append(detail.PaymentHistory, client.PaymentHistoryResponse{
			Amount:    entry.Amount,
			Month:     entry.Month,
			Year:      entry.Year,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return detail, nil
}

// List implements client.Service.
func (s *ClientServiceImpl) List(ctx context.Context) ([]client.ClientResponse, error) {
	clients, err := s.clientRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}
