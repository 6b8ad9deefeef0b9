package http

import (
	"log/slog"
	"net/http"

	"github.com/retouchhive/office-backend/internal/handler/http/response"
	"github.com/retouchhive/office-backend/internal/pkg/iprn"
)

type OTPHandler interface {
	Fetch(w http.ResponseWriter, r *http.Request)
}

type OTPHandlerImpl struct {
	iprnClient *iprn.Client
}

func NewOTPHandler(iprnClient *iprn.Client) OTPHandler {
	return &OTPHandlerImpl{iprnClient: iprnClient}
}

type otpResponse struct {
	Number string `json:"number"`
	Code   string `json:"code"`
}

// Fetch implements OTPHandler. It scrapes the SMS provider for the
// latest verification code addressed to the given number.
func (h *OTPHandlerImpl) Fetch(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		response.BadRequest(w, "number is required", nil)
		return
	}

	code, err := h.iprnClient.FetchOTP(r.Context(), number)
	if err != nil {
		slog.Error("Fetch OTP error", "number", number, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, otpResponse{Number: number, Code: code})
}
