package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/retouchhive/office-backend/internal/domain/shift"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// Upsert implements shift.Repository. Re-assigning a shift replaces
// the existing (email, is_ot) row in place.
func (r *shiftRepositoryImpl) Upsert(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO shift_assignments (email, shift_name, entry_time, is_ot)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email, is_ot)
		DO UPDATE SET shift_name = EXCLUDED.shift_name, entry_time = EXCLUDED.entry_time
		RETURNING id, email, shift_name, entry_time, is_ot, created_at
	`

	var saved shift.Assignment
	err := q.QueryRow(ctx, upsertQuery, a.Email, string(a.ShiftName), a.EntryTime, a.IsOT).Scan(
		&saved.ID,
		&saved.Email,
		&saved.ShiftName,
		&saved.EntryTime,
		&saved.IsOT,
		&saved.CreatedAt,
	)
	if err != nil {
		return shift.Assignment{}, err
	}

	return saved, nil
}

// GetByEmail implements shift.Repository.
func (r *shiftRepositoryImpl) GetByEmail(ctx context.Context, email string, isOT bool) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, email, shift_name, entry_time, is_ot, created_at
		FROM shift_assignments
		WHERE email = $1 AND is_ot = $2
	`

	var a shift.Assignment
	err := q.QueryRow(ctx, selectQuery, email, isOT).Scan(
		&a.ID,
		&a.Email,
		&a.ShiftName,
		&a.EntryTime,
		&a.IsOT,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, err
	}

	return a, nil
}

// List implements shift.Repository.
func (r *shiftRepositoryImpl) List(ctx context.Context, isOT bool) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, email, shift_name, entry_time, is_ot, created_at
		FROM shift_assignments
		WHERE is_ot = $1
		ORDER BY email
	`, isOT)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []shift.Assignment{}
	for rows.Next() {
		var a shift.Assignment
		if err := rows.Scan(&a.ID, &a.Email, &a.ShiftName, &a.EntryTime, &a.IsOT, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, email string, isOT bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE email = $1 AND is_ot = $2`, email, isOT)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}
