package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/yallaorder-next/internal/logger"
)

// Service is a long-running component managed by the Runner.
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner starts a set of services and stops them in reverse order when the
// process receives an interrupt.
type Runner struct {
	services    []Service
	stopTimeout time.Duration
}

// NewRunner creates a runner with the default stop timeout.
func NewRunner(services ...Service) *Runner {
	return &Runner{
		services:    services,
		stopTimeout: 15 * time.Second,
	}
}

// Run blocks until a service fails or the process is signalled, then shuts
// everything down.
func (r *Runner) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, len(r.services))
	started := make([]Service, 0, len(r.services))

	for _, svc := range r.services {
		logger.Infow("service_starting", "service", svc.Name())
		if err := svc.Start(ctx); err != nil {
			logger.Errorw("service_start_failed", "service", svc.Name(), "error", err)
			r.stopAll(started)
			return err
		}
		started = append(started, svc)
		go func(s Service) {
			<-ctx.Done()
			errCh <- nil
		}(svc)
	}

	<-ctx.Done()
	logger.Infow("shutdown_signal_received")
	r.stopAll(started)
	return nil
}

func (r *Runner) stopAll(started []Service) {
	ctx, cancel := context.WithTimeout(context.Background(), r.stopTimeout)
	defer cancel()

	for i := len(started) - 1; i >= 0; i-- {
		svc := started[i]
		if err := svc.Stop(ctx); err != nil {
			logger.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			continue
		}
		logger.Infow("service_stopped", "service", svc.Name())
	}
}
