package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/retouchhive/office-backend/internal/domain/ledger"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
)

type LedgerHandler interface {
	AddExpense(w http.ResponseWriter, r *http.Request)
	AddBalance(w http.ResponseWriter, r *http.Request)
	AddEarning(w http.ResponseWriter, r *http.Request)
	ChangeEarningStatus(w http.ResponseWriter, r *http.Request)
	UpdateEarning(w http.ResponseWriter, r *http.Request)
	ListEarnings(w http.ResponseWriter, r *http.Request)
	ShareProfit(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
	GetMonthlyProfit(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
	ListExpenses(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.Service
}

func NewLedgerHandler(ledgerService ledger.Service) LedgerHandler {
	return &LedgerHandlerImpl{ledgerService: ledgerService}
}

// monthYearQuery reads the month and year query params shared by the
// monthly endpoints. A missing or junk year parses to zero and fails
// service-side validation.
func monthYearQuery(r *http.Request) (string, int) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return r.URL.Query().Get("month"), year
}

// AddExpense implements LedgerHandler.
func (h *LedgerHandlerImpl) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req ledger.AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.ledgerService.AddExpense(r.Context(), req); err != nil {
		slog.Error("Add expense error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense recorded", nil)
}

// AddBalance implements LedgerHandler.
func (h *LedgerHandlerImpl) AddBalance(w http.ResponseWriter, r *http.Request) {
	var req ledger.AddBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.ledgerService.AddBalance(r.Context(), req); err != nil {
		slog.Error("Add balance error", "target", req.Target, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Balance updated", nil)
}

// AddEarning implements LedgerHandler.
func (h *LedgerHandlerImpl) AddEarning(w http.ResponseWriter, r *http.Request) {
	var req ledger.AddEarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.ledgerService.AddEarning(r.Context(), req)
	if err != nil {
		slog.Error("Add earning error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Earning recorded", resp)
}

// ChangeEarningStatus implements LedgerHandler.
func (h *LedgerHandlerImpl) ChangeEarningStatus(w http.ResponseWriter, r *http.Request) {
	var req ledger.ChangeEarningStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EarningID = chi.URLParam(r, "earningID")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.ledgerService.ChangeEarningStatus(r.Context(), req)
	if err != nil {
		slog.Error("Change earning status error", "earning_id", req.EarningID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Earning status updated", resp)
}

// UpdateEarning implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateEarning(w http.ResponseWriter, r *http.Request) {
	var req ledger.UpdateEarningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EarningID = chi.URLParam(r, "earningID")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.ledgerService.UpdateEarning(r.Context(), req)
	if err != nil {
		slog.Error("Update earning error", "earning_id", req.EarningID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Earning updated", resp)
}

// ListEarnings implements LedgerHandler.
func (h *LedgerHandlerImpl) ListEarnings(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	resp, err := h.ledgerService.ListEarnings(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ShareProfit implements LedgerHandler.
func (h *LedgerHandlerImpl) ShareProfit(w http.ResponseWriter, r *http.Request) {
	var req ledger.ShareProfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.ledgerService.ShareProfit(r.Context(), req)
	if err != nil {
		slog.Error("Share profit error", "recipient", req.Recipient, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profit shared", resp)
}

// GetBalances implements LedgerHandler.
func (h *LedgerHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	resp, err := h.ledgerService.GetBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMonthlyProfit implements LedgerHandler.
func (h *LedgerHandlerImpl) GetMonthlyProfit(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	resp, err := h.ledgerService.GetMonthlyProfit(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListTransactions implements LedgerHandler.
func (h *LedgerHandlerImpl) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.ledgerService.ListTransactions(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListExpenses implements LedgerHandler.
func (h *LedgerHandlerImpl) ListExpenses(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	resp, err := h.ledgerService.ListExpenses(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
