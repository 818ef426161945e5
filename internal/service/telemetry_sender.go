package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"geotrail/internal/config"
	"geotrail/internal/domain"
	"geotrail/pkg/e"
)

// telemetryPopper is the dequeue side of the telemetry queue.
type telemetryPopper interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.TelemetryEvent, error)
}

// TelemetrySender drains the telemetry queue and POSTs each event to the
// sink exactly once. The sink's response is ignored; a failed delivery is
// logged and dropped, never retried.
type TelemetrySender struct {
	logger *slog.Logger
	cfg    config.TelemetryConfig
	queue  telemetryPopper
	http   *http.Client
}

func NewTelemetrySender(logger *slog.Logger, cfg config.TelemetryConfig, q telemetryPopper) *TelemetrySender {
	return &TelemetrySender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *TelemetrySender) Run(ctx context.Context) {
	s.logger.Info("telemetrySender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("telemetrySender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.send(ctx, ev)
	}
}

func (s *TelemetrySender) send(ctx context.Context, ev domain.TelemetryEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal telemetry event failed", slog.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("create telemetry request failed", slog.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_ = resp.Body.Close()
		return
	}
	if resp != nil {
		_ = resp.Body.Close()
	}

	reason := "unknown"
	if err != nil {
		reason = err.Error()
	} else if resp != nil {
		reason = resp.Status
	}

	// fire-and-forget: the event is discarded here
	s.logger.Warn("telemetry post failed",
		slog.String("url", s.cfg.URL),
		slog.String("location_name", ev.LocationName),
		slog.String("reason", reason),
	)
}
