package response

import (
	"errors"
	"net/http"

	"github.com/retouchhive/office-backend/internal/domain/attendance"
	"github.com/retouchhive/office-backend/internal/domain/auth"
	"github.com/retouchhive/office-backend/internal/domain/client"
	"github.com/retouchhive/office-backend/internal/domain/employee"
	"github.com/retouchhive/office-backend/internal/domain/leave"
	"github.com/retouchhive/office-backend/internal/domain/ledger"
	"github.com/retouchhive/office-backend/internal/domain/notice"
	"github.com/retouchhive/office-backend/internal/domain/order"
	"github.com/retouchhive/office-backend/internal/domain/shift"
	"github.com/retouchhive/office-backend/internal/domain/user"
	"github.com/retouchhive/office-backend/internal/pkg/iprn"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Business
// rejections surface as 4xx with the sentinel's message; anything
// unmapped is a 500 with no internals leaked.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountNotActive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, user.ErrAccessDenied), errors.Is(err, user.ErrSelfAccessMismatch):
		Forbidden(w, err.Error())

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmailExists), errors.Is(err, user.ErrEmailExists):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrAlreadyActivated):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeDeactivated):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrSalaryPinNotSet):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrSalaryPinMismatch):
		Forbidden(w, err.Error())

	// Shift
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, shift.ErrAlreadyEnrolled):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrNotEnrolledInOT):
		Forbidden(w, err.Error())

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCheckedOut),
		errors.Is(err, attendance.ErrOTAlreadyStarted),
		errors.Is(err, attendance.ErrOTAlreadyStopped),
		errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotEligible):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrOTNotStarted),
		errors.Is(err, attendance.ErrNoShiftAssigned):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrSnapshotNotFound), errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, err.Error())

	// Orders and clients
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, order.ErrClientNotFound),
		errors.Is(err, client.ErrClientNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, order.ErrOrderLocked):
		Conflict(w, err.Error())
	case errors.Is(err, order.ErrUnknownStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, order.ErrOrderIDExists), errors.Is(err, client.ErrClientIDExists):
		Conflict(w, err.Error())

	// Ledger
	case errors.Is(err, ledger.ErrInsufficientBalance), errors.Is(err, ledger.ErrInsufficientProfit):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, ledger.ErrEarningNotFound), errors.Is(err, ledger.ErrExpenseNotFound),
		errors.Is(err, ledger.ErrBucketNotFound), errors.Is(err, ledger.ErrBalanceNotFound):
		NotFound(w, err.Error())

	// Leave
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, leave.ErrInsufficientBalance):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, leave.ErrPendingExists), errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, err.Error())

	// Notices
	case errors.Is(err, notice.ErrNoticeNotFound), errors.Is(err, notice.ErrNotificationNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, notice.ErrAttachmentNotPDF):
		BadRequest(w, err.Error(), nil)

	// OTP
	case errors.Is(err, iprn.ErrOTPNotFound):
		NotFound(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
