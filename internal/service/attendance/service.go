package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	attendanceRepository attendance.Repository
	shiftRepository      shift.Repository
	employeeRepository   employee.Repository
	location             *time.Location
	now                  func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.Repository,
	shiftRepository shift.Repository,
	employeeRepository employee.Repository,
	location *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepository: attendanceRepository,
		shiftRepository:      shiftRepository,
		employeeRepository:   employeeRepository,
		location:             location,
		now:                  time.Now,
	}
}

// localNow returns the current wall-clock time in the business
// timezone plus its date truncated to midnight.
func (s *AttendanceServiceImpl) localNow() (time.Time, time.Time) {
	now := s.now().In(s.location)
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return now, date
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.PunchRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	assignment, err := s.shiftRepository.GetByEmail(ctx, req.Email, false)
	if err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return attendance.CheckInResponse{}, attendance.ErrNoShiftAssigned
		}
		return attendance.CheckInResponse{}, err
	}

	now, date := s.localNow()

	late, err := evaluateCheckIn(assignment.ShiftName, now)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	_, err = s.attendanceRepository.InsertRecord(ctx, attendance.Record{
		Email:        req.Email,
		Date:         date,
		Kind:         attendance.KindCheckIn,
		OccurredAt:   now,
		LateDuration: late,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.CheckInResponse{}, err
	}

	checkInTime := now.Format("03:04:05 PM")
	snap := attendance.Snapshot{
		Email:       req.Email,
		Date:        date,
		CheckInTime: &checkInTime,
		LateCheckIn: late,
	}
	// Profile fields ride along so the dashboard never joins employees.
	if emp, empErr := s.employeeRepository.GetByEmail(ctx, req.Email); empErr == nil {
		snap.FullName = &emp.FullName
		snap.Designation = emp.Designation
		snap.Phone = emp.Phone
		snap.PhotoURL = emp.PhotoURL
	}
	if err := s.attendanceRepository.UpsertSnapshot(ctx, snap); err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to update snapshot: %w", err)
	}

	return attendance.CheckInResponse{
		Email:       req.Email,
		Date:        date.Format("2006-01-02"),
		CheckInTime: checkInTime,
		LateCheckIn: late,
	}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.PunchRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now, date := s.localNow()

	checkIn, err := s.attendanceRepository.GetRecord(ctx, req.Email, date, attendance.KindCheckIn)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.CheckOutResponse{}, err
	}

	worked := now.Sub(checkIn.OccurredAt)
	workedStr := FormatDuration(worked)

	_, err = s.attendanceRepository.InsertRecord(ctx, attendance.Record{
		Email:          req.Email,
		Date:           date,
		Kind:           attendance.KindCheckOut,
		OccurredAt:     now,
		WorkedDuration: &workedStr,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.CheckOutResponse{}, err
	}

	checkOutTime := now.Format("03:04:05 PM")
	err = s.attendanceRepository.UpsertSnapshot(ctx, attendance.Snapshot{
		Email:           req.Email,
		Date:            date,
		CheckOutTime:    &checkOutTime,
		WorkingDuration: &workedStr,
		WorkingSeconds:  int64(worked / time.Second),
	})
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update snapshot: %w", err)
	}

	return attendance.CheckOutResponse{
		Email:           req.Email,
		Date:            date.Format("2006-01-02"),
		CheckOutTime:    checkOutTime,
		WorkingDuration: workedStr,
	}, nil
}

// StartOT implements attendance.Service. Overtime requires a live
// OT-list enrollment; the enrollment survives until StopOT consumes it.
func (s *AttendanceServiceImpl) StartOT(ctx context.Context, req attendance.PunchRequest) (attendance.OTResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OTResponse{}, err
	}

	if _, err := s.shiftRepository.GetByEmail(ctx, req.Email, true); err != nil {
		if errors.Is(err, shift.ErrAssignmentNotFound) {
			return attendance.OTResponse{}, shift.ErrNotEnrolledInOT
		}
		return attendance.OTResponse{}, err
	}

	now, date := s.localNow()

	_, err := s.attendanceRepository.InsertRecord(ctx, attendance.Record{
		Email:      req.Email,
		Date:       date,
		Kind:       attendance.KindOTStart,
		OccurredAt: now,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.OTResponse{}, attendance.ErrOTAlreadyStarted
		}
		return attendance.OTResponse{}, err
	}

	return attendance.OTResponse{
		Email: req.Email,
		Date:  date.Format("2006-01-02"),
		Time:  now.Format("03:04:05 PM"),
	}, nil
}

// StopOT implements attendance.Service. The OT enrollment is removed
// afterward, making each enrollment a single overtime session ticket.
func (s *AttendanceServiceImpl) StopOT(ctx context.Context, req attendance.PunchRequest) (attendance.OTResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OTResponse{}, err
	}

	now, date := s.localNow()

	start, err := s.attendanceRepository.GetRecord(ctx, req.Email, date, attendance.KindOTStart)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.OTResponse{}, attendance.ErrOTNotStarted
		}
		return attendance.OTResponse{}, err
	}

	otWorked := now.Sub(start.OccurredAt)
	otStr := FormatDuration(otWorked)

	_, err = s.attendanceRepository.InsertRecord(ctx, attendance.Record{
		Email:          req.Email,
		Date:           date,
		Kind:           attendance.KindOTStop,
		OccurredAt:     now,
		WorkedDuration: &otStr,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateRecord) {
			return attendance.OTResponse{}, attendance.ErrOTAlreadyStopped
		}
		return attendance.OTResponse{}, err
	}

	err = s.attendanceRepository.UpsertSnapshot(ctx, attendance.Snapshot{
		Email:      req.Email,
		Date:       date,
		OTDuration: &otStr,
		OTSeconds:  int64(otWorked / time.Second),
	})
	if err != nil {
		return attendance.OTResponse{}, fmt.Errorf("failed to update snapshot: %w", err)
	}

	// Consume the OT ticket.
	if err := s.shiftRepository.Delete(ctx, req.Email, true); err != nil && !errors.Is(err, shift.ErrAssignmentNotFound) {
		return attendance.OTResponse{}, fmt.Errorf("failed to remove OT enrollment: %w", err)
	}

	return attendance.OTResponse{
		Email:      req.Email,
		Date:       date.Format("2006-01-02"),
		Time:       now.Format("03:04:05 PM"),
		OTDuration: &otStr,
	}, nil
}

// ListSnapshots implements attendance.Service.
func (s *AttendanceServiceImpl) ListSnapshots(ctx context.Context, filter attendance.SnapshotFilter) (attendance.ListSnapshotsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListSnapshotsResponse{}, err
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	snapshots, total, err := s.attendanceRepository.ListSnapshots(ctx, filter)
	if err != nil {
		return attendance.ListSnapshotsResponse{}, err
	}

	resp := attendance.ListSnapshotsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Snapshots:  make([]attendance.SnapshotResponse, 0, len(snapshots)),
	}
	for _, snap := range snapshots {
		resp.Snapshots = append(resp.Snapshots, attendance.SnapshotResponse{
			Email:           snap.Email,
			Date:            snap.Date.Format("2006-01-02"),
			FullName:        snap.FullName,
			Designation:     snap.Designation,
			Phone:           snap.Phone,
			PhotoURL:        snap.PhotoURL,
			CheckInTime:     snap.CheckInTime,
			LateCheckIn:     snap.LateCheckIn,
			CheckOutTime:    snap.CheckOutTime,
			WorkingDuration: snap.WorkingDuration,
			OTDuration:      snap.OTDuration,
		})
	}
	return resp, nil
}
