package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

// Worker wraps the asynq server that drains the background queue.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *slog.Logger
}

func NewWorker(redisOpts asynq.RedisClientOpt, broadcaster *NoticeBroadcaster, logger *slog.Logger) *Worker {
	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueDefault: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TaskTypeNoticeBroadcast, broadcaster)

	return &Worker{server: srv, mux: mux, logger: logger}
}

// Run processes jobs until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return err
	}

	<-ctx.Done()
	w.logger.Info("shutting down job worker")
	w.server.Shutdown()
	return nil
}
