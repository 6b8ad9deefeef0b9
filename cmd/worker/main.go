package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/retouchhive/office-backend/internal/config"
	"github.com/retouchhive/office-backend/internal/jobs"
	"github.com/retouchhive/office-backend/internal/pkg/email"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "office-backend-worker"),
	)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Error initializing email service: ", err)
	}

	broadcaster := jobs.NewNoticeBroadcaster(emailSvc, logger)
	worker := jobs.NewWorker(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, broadcaster, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("job worker started")
	if err := worker.Run(ctx); err != nil {
		log.Fatal("Worker error: ", err)
	}
}
