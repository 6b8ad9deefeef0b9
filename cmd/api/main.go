package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"github.com/retouchhive/office-backend/internal/config"
	appHTTP "github.com/retouchhive/office-backend/internal/handler/http"
	"github.com/retouchhive/office-backend/internal/pkg/database"
	"github.com/retouchhive/office-backend/internal/pkg/email"
	"github.com/retouchhive/office-backend/internal/pkg/iprn"
	"github.com/retouchhive/office-backend/internal/pkg/jwt"
	"github.com/retouchhive/office-backend/internal/pkg/storage"
	"github.com/retouchhive/office-backend/internal/repository/postgresql"
	attendanceService "github.com/retouchhive/office-backend/internal/service/attendance"
	authService "github.com/retouchhive/office-backend/internal/service/auth"
	clientService "github.com/retouchhive/office-backend/internal/service/client"
	employeeService "github.com/retouchhive/office-backend/internal/service/employee"
	leaveService "github.com/retouchhive/office-backend/internal/service/leave"
	ledgerService "github.com/retouchhive/office-backend/internal/service/ledger"
	noticeService "github.com/retouchhive/office-backend/internal/service/notice"
	orderService "github.com/retouchhive/office-backend/internal/service/order"
	reportService "github.com/retouchhive/office-backend/internal/service/report"
	shiftService "github.com/retouchhive/office-backend/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Error loading timezone: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration, cfg.JWT.ActivationExpiration)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Error initializing email service: ", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Error initializing local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	iprnClient := iprn.NewClient(cfg.IPRN)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer asynqClient.Close()

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, jwtService, emailSvc, cfg.App.FrontendURL)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, employeeRepo, location)
	orderSvc := orderService.NewOrderService(orderRepo, clientRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, ledgerRepo, clientRepo)
	noticeSvc := noticeService.NewNoticeService(noticeRepo, employeeRepo, fileStorage, asynqClient)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, noticeSvc)
	reportSvc := reportService.NewReportService(attendanceRepo, ledgerRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Order:      appHTTP.NewOrderHandler(orderSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Ledger:     appHTTP.NewLedgerHandler(ledgerSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Notice:     appHTTP.NewNoticeHandler(noticeSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		OTP:        appHTTP.NewOTPHandler(iprnClient),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
