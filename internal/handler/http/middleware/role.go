package middleware

import (
	"net/http"

	"github.com/retouchhive/office-backend/internal/domain/user"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

// RequireRole admits only the given roles. Role comparison is
// case-insensitive, matching how roles are stored.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := user.ParseRole(ClaimedRole(r))
			if !role.In(roles...) {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireManagement admits admin, hr-admin and developer.
func RequireManagement(next http.Handler) http.Handler {
	return RequireRole(user.ManagementRoles...)(next)
}

// SelfOrManagement lets an employee act on their own email while
// management roles can act on anyone's. target extracts the email the
// request is about.
func SelfOrManagement(target func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := user.ParseRole(ClaimedRole(r))
			if role.In(user.ManagementRoles...) {
				next.ServeHTTP(w, r)
				return
			}

			if target(r) != ClaimedEmail(r) {
				response.HandleError(w, user.ErrSelfAccessMismatch)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
