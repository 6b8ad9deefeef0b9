package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// InsertRecord implements attendance.Repository. The unique index on
// (email, date, kind) turns a second punch of the same kind into
// ErrDuplicateRecord, so there is no read-then-write race.
func (r *attendanceRepositoryImpl) InsertRecord(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendance_records (email, date, kind, occurred_at, late_duration, worked_duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, date, kind, occurred_at, late_duration, worked_duration, created_at
	`

	var created attendance.Record
	err := q.QueryRow(ctx, insertQuery,
		rec.Email,
		rec.Date,
		string(rec.Kind),
		rec.OccurredAt,
		rec.LateDuration,
		rec.WorkedDuration,
	).Scan(
		&created.ID,
		&created.Email,
		&created.Date,
		&created.Kind,
		&created.OccurredAt,
		&created.LateDuration,
		&created.WorkedDuration,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, err
	}

	return created, nil
}

// GetRecord implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetRecord(ctx context.Context, email string, date time.Time, kind attendance.RecordKind) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `
		SELECT id, email, date, kind, occurred_at, late_duration, worked_duration, created_at
		FROM attendance_records
		WHERE email = $1 AND date = $2 AND kind = $3
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, selectQuery, email, date, string(kind)).Scan(
		&rec.ID,
		&rec.Email,
		&rec.Date,
		&rec.Kind,
		&rec.OccurredAt,
		&rec.LateDuration,
		&rec.WorkedDuration,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, err
	}

	return rec, nil
}

// DeleteOTRecords implements attendance.Repository. Clearing both OT
// punches lets the employee run another overtime session the same day
// after re-enrolling.
func (r *attendanceRepositoryImpl) DeleteOTRecords(ctx context.Context, email string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM attendance_records WHERE email = $1 AND date = $2 AND kind IN ($3, $4)`,
		email, date, string(attendance.KindOTStart), string(attendance.KindOTStop),
	)
	return err
}

// UpsertSnapshot implements attendance.Repository. Each caller only
// fills its own slice of the row, so the update uses COALESCE to keep
// fields the caller left empty.
func (r *attendanceRepositoryImpl) UpsertSnapshot(ctx context.Context, snap attendance.Snapshot) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO attendance_snapshots (
			email, date, full_name, designation, phone, photo_url,
			check_in_time, late_check_in, check_out_time,
			working_duration, working_seconds, ot_duration, ot_seconds
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (email, date) DO UPDATE SET
			full_name        = COALESCE(EXCLUDED.full_name, attendance_snapshots.full_name),
			designation      = COALESCE(EXCLUDED.designation, attendance_snapshots.designation),
			phone            = COALESCE(EXCLUDED.phone, attendance_snapshots.phone),
			photo_url        = COALESCE(EXCLUDED.photo_url, attendance_snapshots.photo_url),
			check_in_time    = COALESCE(EXCLUDED.check_in_time, attendance_snapshots.check_in_time),
			late_check_in    = COALESCE(EXCLUDED.late_check_in, attendance_snapshots.late_check_in),
			check_out_time   = COALESCE(EXCLUDED.check_out_time, attendance_snapshots.check_out_time),
			working_duration = COALESCE(EXCLUDED.working_duration, attendance_snapshots.working_duration),
			working_seconds  = GREATEST(EXCLUDED.working_seconds, attendance_snapshots.working_seconds),
			ot_duration      = COALESCE(EXCLUDED.ot_duration, attendance_snapshots.ot_duration),
			ot_seconds       = attendance_snapshots.ot_seconds + EXCLUDED.ot_seconds,
			updated_at       = NOW()
	`

	_, err := q.Exec(ctx, upsertQuery,
		snap.Email,
		snap.Date,
		snap.FullName,
		snap.Designation,
		snap.Phone,
		snap.PhotoURL,
		snap.CheckInTime,
		snap.LateCheckIn,
		snap.CheckOutTime,
		snap.WorkingDuration,
		snap.WorkingSeconds,
		snap.OTDuration,
		snap.OTSeconds,
	)
	return err
}

const snapshotColumns = `id, email, date, full_name, designation, phone, photo_url,
	check_in_time, late_check_in, check_out_time, working_duration, working_seconds,
	ot_duration, ot_seconds, updated_at`

func scanSnapshot(row pgx.Row) (attendance.Snapshot, error) {
	var snap attendance.Snapshot
	err := row.Scan(
		&snap.ID,
		&snap.Email,
		&snap.Date,
		&snap.FullName,
		&snap.Designation,
		&snap.Phone,
		&snap.PhotoURL,
		&snap.CheckInTime,
		&snap.LateCheckIn,
		&snap.CheckOutTime,
		&snap.WorkingDuration,
		&snap.WorkingSeconds,
		&snap.OTDuration,
		&snap.OTSeconds,
		&snap.UpdatedAt,
	)
	return snap, err
}

// GetSnapshot implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetSnapshot(ctx context.Context, email string, date time.Time) (attendance.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	selectQuery := `SELECT ` + snapshotColumns + ` FROM attendance_snapshots WHERE email = $1 AND date = $2`

	snap, err := scanSnapshot(q.QueryRow(ctx, selectQuery, email, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Snapshot{}, attendance.ErrSnapshotNotFound
		}
		return attendance.Snapshot{}, err
	}
	return snap, nil
}

// ListSnapshots implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListSnapshots(ctx context.Context, filter attendance.SnapshotFilter) ([]attendance.Snapshot, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []any{}
	idx := 1

	addFilter := func(clause string, value any) {
		where += fmt.Sprintf(clause, idx)
		args = append(args, value)
		idx++
	}

	if filter.Email != nil && *filter.Email != "" {
		addFilter(` AND email = $%d`, *filter.Email)
	}
	if filter.Date != nil && *filter.Date != "" {
		addFilter(` AND date = $%d`, *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		addFilter(` AND date >= $%d`, *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		addFilter(` AND date <= $%d`, *filter.EndDate)
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance_snapshots`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	selectQuery := `SELECT ` + snapshotColumns + ` FROM attendance_snapshots` + where + ` ORDER BY date DESC, email`
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

	snapshots := []attendance.Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, 0, err
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return snapshots, total, nil
}
