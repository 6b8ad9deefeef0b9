package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/leave"
	"github.com/retouchhive/office-backend/internal/domain/notice"
	"github.com/retouchhive/office-backend/internal/pkg/database"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
	"github.com/retouchhive/office-backend/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db                 *database.DB
	leaveRepository    leave.Repository
	employeeRepository employee.Repository
	noticeService      notice.Service
}

func NewLeaveService(
	db *database.DB,
	leaveRepository leave.Repository,
	employeeRepository employee.Repository,
	noticeService notice.Service,
) leave.Service {
	return &LeaveServiceImpl{
		db:                 db,
		leaveRepository:    leaveRepository,
		employeeRepository: employeeRepository,
		noticeService:      noticeService,
	}
}

func toResponse(app leave.Application) leave.ApplicationResponse {
	return leave.ApplicationResponse{
		ID:       app.ID,
		Email:    app.Email,
		FromDate: app.FromDate.Format("2006-01-02"),
		ToDate:   app.ToDate.Format("2006-01-02"),
		Days:     app.Days,
		Reason:   app.Reason,
		Status:   string(app.Status),
	}
}

// Apply implements leave.Service. The requested span must fit inside
// the remaining casual leave, and only one application can be pending
// at a time.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.ApplicationResponse{}, err
	}
	days := req.RequestedDays()

	balance, err := s.leaveRepository.GetBalance(ctx, req.Email)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if balance.CasualLeave < days {
		return leave.ApplicationResponse{}, leave.ErrInsufficientBalance
	}

	pending, err := s.leaveRepository.HasPending(ctx, req.Email)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if pending {
		return leave.ApplicationResponse{}, leave.ErrPendingExists
	}

	from, _ := time.Parse("2006-01-02", req.FromDate)
	to, _ := time.Parse("2006-01-02", req.ToDate)

	created, err := s.leaveRepository.Insert(ctx, leave.Application{
		Email:    req.Email,
		FromDate: from,
		ToDate:   to,
		Days:     days,
		Reason:   req.Reason,
		Status:   leave.StatusPending,
	})
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	return toResponse(created), nil
}

// Decide implements leave.Service. Approval decrements the balance and
// flips the employee to On Leave inside one transaction; the employee
// notification goes out afterward in either case.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.ApplicationResponse, error) {
	app, err := s.leaveRepository.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return leave.ApplicationResponse{}, err
	}
	if app.Status != leave.StatusPending {
		return leave.ApplicationResponse{}, leave.ErrAlreadyProcessed
	}

	newStatus := leave.StatusDeclined
	if req.Approve {
		newStatus = leave.StatusApproved
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepository.SetStatus(txCtx, app.ID, newStatus); err != nil {
			return err
		}
		if !req.Approve {
			return nil
		}

		if err := s.leaveRepository.DecrementBalance(txCtx, app.Email, app.Days); err != nil {
			return err
		}
		return s.employeeRepository.SetStatus(txCtx, app.Email, employee.StatusOnLeave)
	})
	if err != nil {
		return leave.ApplicationResponse{}, err
	}

	message := fmt.Sprintf("Your leave application for %s to %s has been %s.",
		app.FromDate.Format("2006-01-02"), app.ToDate.Format("2006-01-02"), newStatus)
	if err := s.noticeService.Notify(ctx, app.Email, "Leave Application Update", message); err != nil {
		slog.Error("failed to write leave notification", "email", app.Email, "error", err)
	}

	app.Status = newStatus
	return toResponse(app), nil
}

// GetBalance implements leave.Service.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, email string) (leave.BalanceResponse, error) {
	balance, err := s.leaveRepository.GetBalance(ctx, email)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return leave.BalanceResponse{Email: email, CasualLeave: balance.CasualLeave}, nil
}

// SetBalance implements leave.Service.
func (s *LeaveServiceImpl) SetBalance(ctx context.Context, email string, casualLeave int) error {
	if casualLeave < 0 {
		return validator.ValidationErrors{{Field: "casual_leave", Message: "casual_leave cannot be negative"}}
	}
	return s.leaveRepository.SetBalance(ctx, email, casualLeave)
}

// ListMine implements leave.Service.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, email string) ([]leave.ApplicationResponse, error) {
	apps, err := s.leaveRepository.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, toResponse(app))
	}
	return responses, nil
}

// ListPending implements leave.Service.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.ApplicationResponse, error) {
	apps, err := s.leaveRepository.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, toResponse(app))
	}
	return responses, nil
}
