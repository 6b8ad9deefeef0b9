package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/retouchhive/office-backend/internal/config"
	"github.com/retouchhive/office-backend/internal/handler/http/middleware"
	"github.com/retouchhive/office-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Shift      ShiftHandler
	Attendance AttendanceHandler
	Order      OrderHandler
	Client     ClientHandler
	Ledger     LedgerHandler
	Leave      LeaveHandler
	Notice     NoticeHandler
	Report     ReportHandler
	OTP        OTPHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "office-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	ja := jwtService.JWTAuth()

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Use(httprate.LimitByIP(10, time.Minute))
			r.Post("/login", h.Auth.Login)
			r.Post("/activate", h.Auth.Activate)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(middleware.AuthRequired(ja))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)
				r.Put("/me/salary-pin", h.Employee.SetSalaryPin)
				r.Post("/me/salary-pin/verify", h.Employee.VerifySalaryPin)

				// Management only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", h.Employee.Register)
					r.Get("/", h.Employee.List)
					r.Put("/{email}", h.Employee.UpdateProfile)
					r.Patch("/{email}/status", h.Employee.SetStatus)
				})

				r.With(middleware.SelfOrManagement(emailParam)).
					Get("/{email}", h.Employee.Get)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Post("/", h.Shift.Assign)
					r.Get("/", h.Shift.List)
					r.Delete("/{email}", h.Shift.Remove)
					r.Post("/ot", h.Shift.EnrollOT)
					r.Get("/ot", h.Shift.ListOT)
				})

				r.With(middleware.SelfOrManagement(emailParam)).
					Get("/{email}", h.Shift.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Post("/ot/start", h.Attendance.StartOT)
				r.Post("/ot/stop", h.Attendance.StopOT)

				r.With(middleware.RequireManagement).
					Get("/", h.Attendance.ListSnapshots)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/mine", h.Leave.ListMine)

				// HR decisions
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManagement)
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/{applicationID}/decision", h.Leave.Decide)
					r.Put("/balance/{email}", h.Leave.SetBalance)
				})

				r.With(middleware.SelfOrManagement(emailParam)).
					Get("/balance/{email}", h.Leave.GetBalance)
			})

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", h.Notice.List)

				r.With(middleware.RequireManagement).
					Post("/", h.Notice.Create)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notice.ListNotifications)
				r.Patch("/{notificationID}/read", h.Notice.MarkRead)
			})

			// Business desk, management only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManagement)

				r.Route("/orders", func(r chi.Router) {
					r.Post("/", h.Order.Create)
					r.Get("/", h.Order.List)
					r.Get("/{orderID}", h.Order.Get)
					r.Patch("/{orderID}/status", h.Order.SetStatus)
					r.Patch("/{orderID}/deadline", h.Order.ExtendDeadline)
					r.Post("/{orderID}/restore", h.Order.Restore)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Post("/", h.Client.Create)
					r.Get("/", h.Client.List)
					r.Get("/{clientID}", h.Client.Get)
				})

				r.Route("/ledger", func(r chi.Router) {
					r.Post("/expenses", h.Ledger.AddExpense)
					r.Get("/expenses", h.Ledger.ListExpenses)
					r.Post("/balances", h.Ledger.AddBalance)
					r.Get("/balances", h.Ledger.GetBalances)
					r.Post("/earnings", h.Ledger.AddEarning)
					r.Get("/earnings", h.Ledger.ListEarnings)
					r.Patch("/earnings/{earningID}", h.Ledger.UpdateEarning)
					r.Patch("/earnings/{earningID}/status", h.Ledger.ChangeEarningStatus)
					r.Get("/profit", h.Ledger.GetMonthlyProfit)
					r.Post("/profit/share", h.Ledger.ShareProfit)
					r.Get("/transactions", h.Ledger.ListTransactions)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/summary", h.Report.MonthlySummary)
					r.Get("/receivables", h.Report.Receivables)
					r.Get("/attendance.xlsx", h.Report.AttendanceXLSX)
					r.Get("/earnings.xlsx", h.Report.EarningsXLSX)
				})

				r.Get("/otp", h.OTP.Fetch)
			})
		})
	})

	return r
}

func emailParam(r *http.Request) string {
	return chi.URLParam(r, "email")
}
