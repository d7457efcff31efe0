package app

import (
	"fmt"

	"github.com/yallaorder-next/internal/cache"
	"github.com/yallaorder-next/internal/config"
	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/models"
	"github.com/yallaorder-next/internal/provider"
	"github.com/yallaorder-next/internal/queue"
)

// Run modes.
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Bootstrap initializes shared backends and assembles the services for the
// requested mode.
func Bootstrap(mode string) (*Runner, error) {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("redis_init_failed",
			"error", err,
			"fallback", "cache_disabled",
		)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		return nil, fmt.Errorf("init queue client: %w", err)
	}

	container := provider.NewContainer(cfg, queueClient)

	var services []Service
	switch mode {
	case ModeAPI:
		services = append(services, NewHTTPService(container))
	case ModeWorker:
		if ws := NewWorkerService(container); ws != nil {
			services = append(services, ws)
		}
	case ModeAll:
		services = append(services, NewHTTPService(container))
		if ws := NewWorkerService(container); ws != nil {
			services = append(services, ws)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	if len(services) == 0 {
		return nil, fmt.Errorf("no services enabled for mode %q", mode)
	}
	return NewRunner(services...), nil
}
