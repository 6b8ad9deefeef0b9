package shift

import (
	"context"
	"errors"

	"github.com/retouchhive/office-backend/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepository shift.Repository
}

func NewShiftService(shiftRepository shift.Repository) shift.Service {
	return &ShiftServiceImpl{shiftRepository: shiftRepository}
}

func toResponse(a shift.Assignment) shift.AssignmentResponse {
	return shift.AssignmentResponse{
		ID:        a.ID,
		Email:     a.Email,
		ShiftName: string(a.ShiftName),
		EntryTime: a.EntryTime,
		IsOT:      a.IsOT,
	}
}

// Assign implements shift.Service. Re-assigning replaces the previous
// shift for the employee.
func (s *ShiftServiceImpl) Assign(ctx context.Context, req shift.AssignRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	saved, err := s.shiftRepository.Upsert(ctx, shift.Assignment{
		Email:     req.Email,
		ShiftName: shift.Name(req.ShiftName),
		EntryTime: req.EntryTime,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return toResponse(saved), nil
}

// Get implements shift.Service.
func (s *ShiftServiceImpl) Get(ctx context.Context, email string) (shift.AssignmentResponse, error) {
	a, err := s.shiftRepository.GetByEmail(ctx, email, false)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return toResponse(a), nil
}

// List implements shift.Service.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.AssignmentResponse, error) {
	assignments, err := s.shiftRepository.List(ctx, false)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}

// Remove implements shift.Service.
func (s *ShiftServiceImpl) Remove(ctx context.Context, email string) error {
	return s.shiftRepository.Delete(ctx, email, false)
}

// EnrollOT implements shift.Service. The overtime row is separate from
// the regular assignment so both can exist for one employee.
func (s *ShiftServiceImpl) EnrollOT(ctx context.Context, req shift.EnrollOTRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.shiftRepository.GetByEmail(ctx, req.Email, true); err == nil {
		return shift.AssignmentResponse{}, shift.ErrAlreadyEnrolled
	} else if !errors.Is(err, shift.ErrAssignmentNotFound) {
		return shift.AssignmentResponse{}, err
	}

	saved, err := s.shiftRepository.Upsert(ctx, shift.Assignment{
		Email:     req.Email,
		ShiftName: "OT list",
		IsOT:      true,
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return toResponse(saved), nil
}

// ListOT implements shift.Service.
func (s *ShiftServiceImpl) ListOT(ctx context.Context) ([]shift.AssignmentResponse, error) {
	assignments, err := s.shiftRepository.List(ctx, true)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toResponse(a))
	}
	return responses, nil
}
