package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/retouchhive/office-backend/internal/domain/user"
)

type Service interface {
	// GenerateSessionToken issues the 24h bearer token used for every
	// authenticated request. The email claim is the identity; role is
	// re-checked per route group.
	GenerateSessionToken(email string, role user.Role) (token string, expiresAt int64, err error)

	// GenerateActivationToken issues the 7d token embedded in the
	// onboarding email link.
	GenerateActivationToken(email string) (token string, expiresAt int64, err error)

	// ValidateActivationToken verifies an activation token and returns
	// the email it was issued for.
	ValidateActivationToken(tokenString string) (email string, err error)

	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	sessionExpiration    string
	activationExpiration string
	tokenAuth            *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, sessionExpiration string, activationExpiration string) Service {
	return &JWTService{
		sessionExpiration:    sessionExpiration,
		activationExpiration: activationExpiration,
		tokenAuth:            jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateSessionToken(email string, role user.Role) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.sessionExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"role":  string(role),
		"type":  "access",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateActivationToken(email string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.activationExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"email": email,
		"type":  "activation",
		"exp":   expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateActivationToken(tokenString string) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "activation" {
		return "", jwt.ErrInvalidJWT()
	}

	emailVal, ok := token.Get("email")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return email, nil
}
