package client

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (ClientResponse, error)
	Get(ctx context.Context, clientID string) (ClientDetailResponse, error)
	List(ctx context.Context) ([]ClientResponse, error)
}
