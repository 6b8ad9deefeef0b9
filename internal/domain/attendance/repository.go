package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// InsertRecord writes one punch event. A unique-index conflict on
	// (email, date, kind) surfaces as ErrDuplicateRecord; that conflict
	// IS the duplicate-punch rejection path.
	InsertRecord(ctx context.Context, rec Record) (Record, error)

	GetRecord(ctx context.Context, email string, date time.Time, kind RecordKind) (Record, error)
	DeleteOTRecords(ctx context.Context, email string, date time.Time) error

	// UpsertSnapshot merges the given fields into the (email, date)
	// snapshot row, inserting it if absent.
	UpsertSnapshot(ctx context.Context, snap Snapshot) error

	GetSnapshot(ctx context.Context, email string, date time.Time) (Snapshot, error)
	ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]Snapshot, int64, error)
}
