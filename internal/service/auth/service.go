package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/retouchhive/office-backend/internal/domain/auth"
	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/user"
	"github.com/retouchhive/office-backend/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepository     user.Repository
	employeeRepository employee.Repository
	jwtService         jwt.Service
}

func NewAuthService(userRepository user.Repository, employeeRepository employee.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		userRepository:     userRepository,
		employeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	// A pending account has no password until activation.
	if userData.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrAccountNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	emp, err := s.employeeRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if err == nil && emp.Status == employee.StatusDeactivate {
		return auth.LoginResponse{}, employee.ErrEmployeeDeactivated
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(userData.Email, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       userData.Email,
		Role:        string(userData.Role),
	}, nil
}

// Activate implements auth.Service. The activation token from the
// onboarding email is the proof of identity; no password exists before
// this point.
func (s *AuthServiceImpl) Activate(ctx context.Context, req auth.ActivateRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	email, err := s.jwtService.ValidateActivationToken(req.Token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepository.GetByEmail(ctx, email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if emp.Status != employee.StatusPending {
		return auth.LoginResponse{}, employee.ErrAlreadyActivated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepository.SetPassword(ctx, email, string(hash)); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to set password: %w", err)
	}
	if err := s.employeeRepository.SetStatus(ctx, email, employee.StatusActive); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to activate employee: %w", err)
	}

	userData, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(email, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Email:       email,
		Role:        string(userData.Role),
	}, nil
}
