package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/shift"
)

type stubShiftRepository struct {
	shift.Repository
	assignment shift.Assignment
	err        error
}

func (s *stubShiftRepository) GetByEmail(_ context.Context, _ string, _ bool) (shift.Assignment, error) {
	return s.assignment, s.err
}

type stubAttendanceRepository struct {
	attendance.Repository
	insertErr error
	records   []attendance.Record
	snapshots []attendance.Snapshot
}

func (s *stubAttendanceRepository) InsertRecord(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	if s.insertErr != nil {
		return attendance.Record{}, s.insertErr
	}
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *stubAttendanceRepository) UpsertSnapshot(_ context.Context, snap attendance.Snapshot) error {
	s.snapshots = append(s.snapshots, snap)
	return nil
}

type stubEmployeeRepository struct {
	employee.Repository
	profile employee.Employee
}

func (s *stubEmployeeRepository) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return s.profile, nil
}

func newTestAttendanceService(records *stubAttendanceRepository, shifts *stubShiftRepository, punchTime time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepository: records,
		shiftRepository:      shifts,
		employeeRepository:   &stubEmployeeRepository{profile: employee.Employee{FullName: "Test Employee"}},
		location:             time.FixedZone("Asia/Dhaka", 6*3600),
		now:                  func() time.Time { return punchTime },
	}
}

func TestCheckInDuplicatePunch(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	records := &stubAttendanceRepository{insertErr: attendance.ErrDuplicateRecord}
	shifts := &stubShiftRepository{assignment: shift.Assignment{ShiftName: shift.Morning}}
	svc := newTestAttendanceService(records, shifts, time.Date(2026, 3, 9, 6, 0, 0, 0, dhaka))

	_, err := svc.CheckIn(context.Background(), attendance.PunchRequest{Email: "worker@retouchhive.com"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	// The conflict surfaces before the dashboard snapshot is touched.
	assert.Empty(t, records.snapshots)
}

func TestCheckInNoShiftAssigned(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	records := &stubAttendanceRepository{}
	shifts := &stubShiftRepository{err: shift.ErrAssignmentNotFound}
	svc := newTestAttendanceService(records, shifts, time.Date(2026, 3, 9, 6, 0, 0, 0, dhaka))

	_, err := svc.CheckIn(context.Background(), attendance.PunchRequest{Email: "worker@retouchhive.com"})
	assert.ErrorIs(t, err, attendance.ErrNoShiftAssigned)
	assert.Empty(t, records.records)
}

func TestCheckInRecordsLateness(t *testing.T) {
	dhaka := time.FixedZone("Asia/Dhaka", 6*3600)
	records := &stubAttendanceRepository{}
	shifts := &stubShiftRepository{assignment: shift.Assignment{ShiftName: shift.Morning}}
	svc := newTestAttendanceService(records, shifts, time.Date(2026, 3, 9, 6, 30, 0, 0, dhaka))

	resp, err := svc.CheckIn(context.Background(), attendance.PunchRequest{Email: "worker@retouchhive.com"})
	require.NoError(t, err)

	require.NotNil(t, resp.LateCheckIn)
	assert.Equal(t, "0h 30m", *resp.LateCheckIn)
	assert.Equal(t, "2026-03-09", resp.Date)

	require.Len(t, records.records, 1)
	assert.Equal(t, attendance.KindCheckIn, records.records[0].Kind)
	require.Len(t, records.snapshots, 1)
	require.NotNil(t, records.snapshots[0].FullName)
	assert.Equal(t, "Test Employee", *records.snapshots[0].FullName)
}
