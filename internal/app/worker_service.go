package app

import (
	"context"

	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/provider"
	"github.com/yallaorder-next/internal/queue"
	"github.com/yallaorder-next/internal/worker"

	"github.com/hibiken/asynq"
)

// WorkerService runs the background task consumer.
type WorkerService struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewWorkerService builds the worker service. Returns nil when the queue
// is disabled; the runner then simply has nothing to consume.
func NewWorkerService(container *provider.Container) *WorkerService {
	if !container.Cfg.Queue.Enabled {
		return nil
	}

	redisOpt, serverCfg := queue.BuildServerConfig(&container.Cfg.Queue)
	server := asynq.NewServer(redisOpt, serverCfg)

	mux := asynq.NewServeMux()
	worker.NewConsumer(container).Register(mux)

	return &WorkerService{server: server, mux: mux}
}

// Name identifies the service in logs.
func (s *WorkerService) Name() string { return "worker" }

// Start begins consuming tasks in the background.
func (s *WorkerService) Start(_ context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	logger.Infow("worker_started")
	return nil
}

// Stop waits for in-flight tasks and shuts the consumer down.
func (s *WorkerService) Stop(_ context.Context) error {
	s.server.Shutdown()
	return nil
}
