package attendance

import "context"

type Service interface {
	// CheckIn evaluates the caller's shift window at the current Dhaka
	// wall-clock time and records the punch.
	CheckIn(ctx context.Context, req PunchRequest) (CheckInResponse, error)

	// CheckOut computes worked duration from the same-day check-in.
	CheckOut(ctx context.Context, req PunchRequest) (CheckOutResponse, error)

	// StartOT and StopOT require an OT-list enrollment; StopOT consumes it.
	StartOT(ctx context.Context, req PunchRequest) (OTResponse, error)
	StopOT(ctx context.Context, req PunchRequest) (OTResponse, error)

	ListSnapshots(ctx context.Context, filter SnapshotFilter) (ListSnapshotsResponse, error)
}
