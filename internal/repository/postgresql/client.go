package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.Repository {
	return &clientRepositoryImpl{db: db}
}

// Create implements client.Repository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO clients (client_id, name, country, email, messenger)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, client_id, name, country, email, messenger, created_at
	`

	var created client.Client
	err := q.QueryRow(ctx, insertQuery, c.ClientID, c.Name, c.Country, c.Email, c.Messenger).Scan(
		&created.ID,
		&created.ClientID,
		&created.Name,
		&created.Country,
		&created.Email,
		&created.Messenger,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return client.Client{}, client.ErrClientIDExists
		}
		return client.Client{}, err
	}

	return created, nil
}

// GetByClientID implements client.Repository.
func (r *clientRepositoryImpl) GetByClientID(ctx context.Context, clientID string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	var c client.Client
	err := q.QueryRow(ctx,
		`SELECT id, client_id, name, country, email, messenger, created_at FROM clients WHERE client_id = $1`,
		clientID,
	).Scan(&c.ID, &c.ClientID, &c.Name, &c.Country, &c.Email, &c.Messenger, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, err
	}

	return c, nil
}

// List implements client.Repository.
func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, client_id, name, country, email, messenger, created_at FROM clients ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []client.Client{}
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Name, &c.Country, &c.Email, &c.Messenger, &c.CreatedAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// AppendOrderHistory implements client.Repository.
func (r *clientRepositoryImpl) AppendOrderHistory(ctx context.Context, entry client.OrderHistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO client_order_history (client_id, order_id, note) VALUES ($1, $2, $3)`,
		entry.ClientID, entry.OrderID, entry.Note,
	)
	return err
}

// AppendPaymentHistory implements client.Repository.
func (r *clientRepositoryImpl) AppendPaymentHistory(ctx context.Context, entry client.PaymentHistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO client_payment_history (client_id, amount, month, year, note) VALUES ($1, $2, $3, $4, $5)`,
		entry.ClientID, entry.Amount, entry.Month, entry.Year, entry.Note,
	)
	return err
}

// ListOrderHistory implements client.Repository.
func (r *clientRepositoryImpl) ListOrderHistory(ctx context.Context, clientID string) ([]client.OrderHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, client_id, order_id, note, created_at FROM client_order_history WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []client.OrderHistoryEntry{}
	for rows.Next() {
		var e client.OrderHistoryEntry
		if err := rows.Scan(&e.ID, &e.ClientID, &e.OrderID, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListPaymentHistory implements client.Repository.
func (r *clientRepositoryImpl) ListPaymentHistory(ctx context.Context, clientID string) ([]client.PaymentHistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, client_id, amount, month, year, note, created_at FROM client_payment_history WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []client.PaymentHistoryEntry{}
	for rows.Next() {
		var e client.PaymentHistoryEntry
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Amount, &e.Month, &e.Year, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
