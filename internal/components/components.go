package components

import (
	"context"
	"log/slog"
	"os"
	"time"

	"geotrail/internal/api"
	"geotrail/internal/config"
	"geotrail/internal/geocode"
	"geotrail/internal/history"
	"geotrail/internal/locator"
	"geotrail/internal/redis"
	"geotrail/internal/service"
	"geotrail/internal/workers"
	"geotrail/pkg/e"
	"geotrail/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	History    *history.Manager
	Poller     *workers.Poller
	Redis      *redis.Redis
	Telemetry  *service.TelemetrySender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	hist := history.NewManager(cfg.History.Capacity)

	geocoder := geocode.NewClient(logger, cfg.Geocoder)

	var (
		redisClient *redis.Redis
		queue       service.TelemetryQueue
		sender      *service.TelemetrySender
	)
	if !cfg.Telemetry.Disabled {
		logger.Info("Initializing Redis")
		rc, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, e.Wrap("failed to init redis", err)
		}
		redisClient = rc

		q := redis.NewTelemetryQueue(rc.Client, "telemetry:queue")
		queue = q
		sender = service.NewTelemetrySender(logger, cfg.Telemetry, q)
	}

	locationSvc := service.NewLocationService(hist, geocoder, queue, logger)

	provider := locator.NewSim(cfg.Locator.StartLat, cfg.Locator.StartLng, time.Now().UnixNano())
	poller := workers.NewPoller(logger, provider, locationSvc, cfg.Poller)

	svc := service.NewService(locationSvc, poller)

	httpServer := api.NewServer(ctx, cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		History:    hist,
		Poller:     poller,
		Redis:      redisClient,
		Telemetry:  sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	if c.Poller.Running() {
		if err := c.Poller.Stop(); err != nil {
			c.logger.Error("poller stop failed", slog.String("err", err.Error()))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components shut down",
		slog.Duration("latency", time.Since(start)))
}
