package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/retouchhive/office-backend/internal/domain/leave"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

// GetBalance implements leave.Repository.
func (r *leaveRepositoryImpl) GetBalance(ctx context.Context, email string) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	var b leave.Balance
	err := q.QueryRow(ctx,
		`SELECT id, email, casual_leave, updated_at FROM leave_balances WHERE email = $1`,
		email,
	).Scan(&b.ID, &b.Email, &b.CasualLeave, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Missing row reads as a zero balance.
			return leave.Balance{Email: email, CasualLeave: 0}, nil
		}
		return leave.Balance{}, err
	}
	return b, nil
}

// SetBalance implements leave.Repository.
func (r *leaveRepositoryImpl) SetBalance(ctx context.Context, email string, casualLeave int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO leave_balances (email, casual_leave)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET casual_leave = EXCLUDED.casual_leave, updated_at = NOW()
	`, email, casualLeave)
	return err
}

// DecrementBalance implements leave.Repository. The guard in the WHERE
// clause keeps the balance from going negative under concurrent
// approvals.
func (r *leaveRepositoryImpl) DecrementBalance(ctx context.Context, email string, days int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE leave_balances SET casual_leave = casual_leave - $1, updated_at = NOW() WHERE email = $2 AND casual_leave >= $1`,
		days, email,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrInsufficientBalance
	}
	return nil
}

// Insert implements leave.Repository.
func (r *leaveRepositoryImpl) Insert(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO applied_leaves (email, from_date, to_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, from_date, to_date, days, reason, status, created_at, updated_at
	`

	var created leave.Application
	err := q.QueryRow(ctx, insertQuery,
		app.Email, app.FromDate, app.ToDate, app.Days, app.Reason, string(app.Status),
	).Scan(
		&created.ID,
		&created.Email,
		&created.FromDate,
		&created.ToDate,
		&created.Days,
		&created.Reason,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.Application{}, err
	}
	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	var app leave.Application
	err := q.QueryRow(ctx,
		`SELECT id, email, from_date, to_date, days, reason, status, created_at, updated_at FROM applied_leaves WHERE id = $1`,
		id,
	).Scan(
		&app.ID,
		&app.Email,
		&app.FromDate,
		&app.ToDate,
		&app.Days,
		&app.Reason,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, err
	}
	return app, nil
}

// HasPending implements leave.Repository.
func (r *leaveRepositoryImpl) HasPending(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applied_leaves WHERE email = $1 AND status = $2)`,
		email, string(leave.StatusPending),
	).Scan(&exists)
	return exists, err
}

// SetStatus implements leave.Repository.
func (r *leaveRepositoryImpl) SetStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE applied_leaves SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) listApplications(ctx context.Context, whereQuery string, arg any) ([]leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, email, from_date, to_date, days, reason, status, created_at, updated_at FROM applied_leaves `+whereQuery+` ORDER BY created_at DESC`,
		arg,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []leave.Application{}
	for rows.Next() {
		var app leave.Application
		if err := rows.Scan(
			&app.ID, &app.Email, &app.FromDate, &app.ToDate,
			&app.Days, &app.Reason, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// ListByEmail implements leave.Repository.
func (r *leaveRepositoryImpl) ListByEmail(ctx context.Context, email string) ([]leave.Application, error) {
	return r.listApplications(ctx, `WHERE email = $1`, email)
}

// ListByStatus implements leave.Repository.
func (r *leaveRepositoryImpl) ListByStatus(ctx context.Context, status leave.Status) ([]leave.Application, error) {
	return r.listApplications(ctx, `WHERE status = $1`, string(status))
}
