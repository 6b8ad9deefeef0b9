package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/retouchhive/office-backend/internal/domain/report"
	"github.com/retouchhive/office-backend/internal/handler/http/response"
	"github.com/retouchhive/office-backend/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	Receivables(w http.ResponseWriter, r *http.Request)
	AttendanceXLSX(w http.ResponseWriter, r *http.Request)
	EarningsXLSX(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func writeXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// MonthlySummary implements ReportHandler.
func (h *ReportHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	resp, err := h.reportService.MonthlySummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Receivables implements ReportHandler.
func (h *ReportHandlerImpl) Receivables(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	resp, err := h.reportService.Receivables(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AttendanceXLSX implements ReportHandler. It streams a workbook of
// attendance snapshots for the requested range; email narrows the
// export to a single employee.
func (h *ReportHandlerImpl) AttendanceXLSX(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, okFrom := validator.IsValidDate(q.Get("from"))
	to, okTo := validator.IsValidDate(q.Get("to"))
	if !okFrom || !okTo {
		response.BadRequest(w, "from and to must be YYYY-MM-DD", nil)
		return
	}

	data, err := h.reportService.AttendanceXLSX(r.Context(), q.Get("email"), from, to)
	if err != nil {
		slog.Error("Attendance export error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeXLSX(w, fmt.Sprintf("attendance_%s_%s.xlsx", from.Format(time.DateOnly), to.Format(time.DateOnly)), data)
}

// EarningsXLSX implements ReportHandler.
func (h *ReportHandlerImpl) EarningsXLSX(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearQuery(r)

	data, err := h.reportService.EarningsXLSX(r.Context(), month, year)
	if err != nil {
		slog.Error("Earnings export error", "month", month, "year", year, "error", err)
		response.HandleError(w, err)
		return
	}

	writeXLSX(w, fmt.Sprintf("earnings_%s_%d.xlsx", month, year), data)
}
