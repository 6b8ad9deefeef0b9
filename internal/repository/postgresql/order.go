package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retouchhive/office-backend/internal/domain/order"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.Repository {
	return &orderRepositoryImpl{db: db}
}

const orderColumns = `id, order_id, client_id, title, details, image_qty, price,
	deadline, order_status, is_locked, created_at, updated_at`

func scanOrder(row pgx.Row) (order.Order, error) {
	var o order.Order
	err := row.Scan(
		&o.ID,
		&o.OrderID,
		&o.ClientID,
		&o.Title,
		&o.Details,
		&o.ImageQty,
		&o.Price,
		&o.Deadline,
		&o.OrderStatus,
		&o.IsLocked,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

// Create implements order.Repository.
func (r *orderRepositoryImpl) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO local_orders (order_id, client_id, title, details, image_qty, price, deadline, order_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	created, err := scanOrder(q.QueryRow(ctx, insertQuery,
		o.OrderID,
		o.ClientID,
		o.Title,
		o.Details,
		o.ImageQty,
		o.Price,
		o.Deadline,
		string(o.OrderStatus),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return order.Order{}, order.ErrOrderIDExists
		}
		return order.Order{}, err
	}

	return created, nil
}

// GetByOrderID implements order.Repository.
func (r *orderRepositoryImpl) GetByOrderID(ctx context.Context, orderID string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOrder(q.QueryRow(ctx, `SELECT `+orderColumns+` FROM local_orders WHERE order_id = $1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, err
	}
	return o, nil
}

// List implements order.Repository.
func (r *orderRepositoryImpl) List(ctx context.Context, filter order.ListFilter) ([]order.Order, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.ClientID != nil && *filter.ClientID != "" {
		where += fmt.Sprintf(` AND client_id = $%d`, idx)
		args = append(args, *filter.ClientID)
		idx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(` AND order_status = $%d`, idx)
		args = append(args, string(*filter.Status))
		idx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM local_orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	selectQuery := `SELECT ` + orderColumns + ` FROM local_orders` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		selectQuery += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, idx, idx+1)
		args = append(args, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []order.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// SetStatus implements order.Repository.
func (r *orderRepositoryImpl) SetStatus(ctx context.Context, orderID string, status order.Status, locked bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE local_orders SET order_status = $1, is_locked = $2, updated_at = NOW() WHERE order_id = $3`,
		string(status), locked, orderID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Reopen implements order.Repository. Both extend-deadline and restore
// land here: the lock clears and the status resets to Pending.
func (r *orderRepositoryImpl) Reopen(ctx context.Context, orderID string, deadline *time.Time) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE local_orders
		SET order_status = $1, is_locked = FALSE,
			deadline = COALESCE($2, deadline), updated_at = NOW()
		WHERE order_id = $3
	`

	tag, err := q.Exec(ctx, updateQuery, string(order.StatusPending), deadline, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}
