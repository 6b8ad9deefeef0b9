package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/user"
	"github.com/retouchhive/office-backend/internal/pkg/database"
	"github.com/retouchhive/office-backend/internal/pkg/email"
	"github.com/retouchhive/office-backend/internal/pkg/jwt"
	"github.com/retouchhive/office-backend/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db                 *database.DB
	employeeRepository employee.Repository
	userRepository     user.Repository
	jwtService         jwt.Service
	emailService       email.EmailService
	frontendURL        string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.Repository,
	userRepository user.Repository,
	jwtService jwt.Service,
	emailService email.EmailService,
	frontendURL string,
) employee.Service {
	return &EmployeeServiceImpl{
		db:                 db,
		employeeRepository: employeeRepository,
		userRepository:     userRepository,
		jwtService:         jwtService,
		emailService:       emailService,
		frontendURL:        frontendURL,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Email:        emp.Email,
		FullName:     emp.FullName,
		Designation:  emp.Designation,
		Phone:        emp.Phone,
		Address:      emp.Address,
		PhotoURL:     emp.PhotoURL,
		Status:       string(emp.Status),
	}
	if emp.JoiningDate != nil {
		d := emp.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &d
	}
	return resp
}

// Register implements employee.Service. The employee row and its auth
// identity are created together; the activation email goes out after
// the transaction commits so a failed registration never emails anyone.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		FullName:     req.FullName,
		Designation:  req.Designation,
		Phone:        req.Phone,
		Address:      req.Address,
		Status:       employee.StatusPending,
	}
	if req.JoiningDate != nil && *req.JoiningDate != "" {
		d, _ := time.Parse("2006-01-02", *req.JoiningDate)
		emp.JoiningDate = &d
	}

	var created employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.employeeRepository.Create(txCtx, emp)
		if txErr != nil {
			return txErr
		}

		_, txErr = s.userRepository.Create(txCtx, user.User{
			Email: req.Email,
			Role:  user.RoleEmployee,
		})
		return txErr
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateActivationToken(req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate activation token: %w", err)
	}

	activationLink := fmt.Sprintf("%s/activate?token=%s", s.frontendURL, token)
	expires := time.Unix(expiresAt, 0).Format("Jan 2, 2006 15:04 MST")
	if err := s.emailService.SendActivation(req.Email, req.FullName, activationLink, expires); err != nil {
		// Registration stands even when the email bounces; HR can
		// re-trigger the invite.
		slog.Error("failed to send activation email", "email", req.Email, "error", err)
	}

	return toResponse(created), nil
}

// Get implements employee.Service.
func (s *EmployeeServiceImpl) Get(ctx context.Context, emailAddr string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepository.GetByEmail(ctx, emailAddr)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, status *employee.Status) (employee.ListEmployeesResponse, error) {
	employees, total, err := s.employeeRepository.List(ctx, status)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		TotalCount: total,
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, toResponse(emp))
	}
	return resp, nil
}

// UpdateProfile implements employee.Service. Only the fields present
// in the request change.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.PhotoURL != nil {
		emp.PhotoURL = req.PhotoURL
	}

	if err := s.employeeRepository.UpdateProfile(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// SetStatus implements employee.Service.
func (s *EmployeeServiceImpl) SetStatus(ctx context.Context, req employee.SetStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepository.SetStatus(ctx, req.Email, employee.Status(req.Status))
}

// SetSalaryPin implements employee.Service.
func (s *EmployeeServiceImpl) SetSalaryPin(ctx context.Context, req employee.SetSalaryPinRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}
	return s.employeeRepository.SetSalaryPinHash(ctx, req.Email, string(hash))
}

// VerifySalaryPin implements employee.Service.
func (s *EmployeeServiceImpl) VerifySalaryPin(ctx context.Context, emailAddr string, pin string) error {
	emp, err := s.employeeRepository.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if emp.SalaryPinHash == nil {
		return employee.ErrSalaryPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.SalaryPinHash), []byte(pin)); err != nil {
		return employee.ErrSalaryPinMismatch
	}
	return nil
}
