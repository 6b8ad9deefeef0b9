package client

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByClientID(ctx context.Context, clientID string) (Client, error)
	List(ctx context.Context) ([]Client, error)

	AppendOrderHistory(ctx context.Context, entry OrderHistoryEntry) error
	AppendPaymentHistory(ctx context.Context, entry PaymentHistoryEntry) error
	ListOrderHistory(ctx context.Context, clientID string) ([]OrderHistoryEntry, error)
	ListPaymentHistory(ctx context.Context, clientID string) ([]PaymentHistoryEntry, error)
}
