package service

import (
	"context"
	"time"

	"log/slog"

	"geotrail/internal/domain"
	"geotrail/internal/history"
	"geotrail/pkg/e"

	"github.com/google/uuid"
)

type locationService struct {
	history   *history.Manager
	geocoder  Geocoder
	telemetry TelemetryQueue
	logger    *slog.Logger
	now       func() time.Time
}

// NewLocationService wires the resolve → append → notify pipeline. telemetry
// may be nil when the sink is disabled.
func NewLocationService(
	hist *history.Manager,
	geocoder Geocoder,
	telemetry TelemetryQueue,
	logger *slog.Logger,
) HistoryService {
	return &locationService{
		history:   hist,
		geocoder:  geocoder,
		telemetry: telemetry,
		logger:    logger,
		now:       time.Now,
	}
}

// RecordFix turns a raw fix into a history record. Resolution strictly
// precedes the append: the address, resolved or not, is fixed before the
// record enters history and is never patched in afterward.
func (s *locationService) RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error) {
	if fix.Latitude < -90 || fix.Latitude > 90 || fix.Longitude < -180 || fix.Longitude > 180 {
		s.logger.Warn("rejecting fix with invalid coordinates",
			slog.Float64("lat", fix.Latitude),
			slog.Float64("lng", fix.Longitude),
		)
		return domain.LocationRecord{}, e.ErrInvalidCoordinates
	}

	capturedAt := fix.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = s.now().UTC()
	}

	address, resolved := s.geocoder.Resolve(ctx, fix.Latitude, fix.Longitude)
	if !resolved {
		s.logger.Warn("address unresolved, recording coordinates only",
			slog.Float64("lat", fix.Latitude),
			slog.Float64("lng", fix.Longitude),
		)
	}

	rec := domain.LocationRecord{
		ID:         uuid.New(),
		Address:    address,
		Resolved:   resolved,
		Timestamp:  capturedAt.Local().Format(domain.DisplayTimeLayout),
		CapturedAt: capturedAt,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
	}

	s.history.Append(rec)
	s.logger.Info("location recorded",
		slog.String("id", rec.ID.String()),
		slog.String("address", rec.Address),
		slog.Bool("resolved", rec.Resolved),
	)

	// Fire-and-forget: a failed enqueue never affects the recorded history.
	if s.telemetry != nil {
		ev := domain.TelemetryEvent{
			LocationName: rec.Address,
			Time:         capturedAt.UnixMilli(),
		}
		if err := s.telemetry.Enqueue(ctx, ev); err != nil {
			s.logger.Error("telemetry enqueue failed", slog.Any("error", err))
		}
	}

	return rec, nil
}

func (s *locationService) Snapshot() domain.Snapshot {
	return s.history.Snapshot()
}

func (s *locationService) RemoveAt(previousIndex int) error {
	if err := s.history.RemoveAt(previousIndex); err != nil {
		s.logger.Warn("remove previous location failed",
			slog.Int("previous_index", previousIndex),
			slog.Any("error", err),
		)
		return err
	}
	s.logger.Info("previous location removed", slog.Int("previous_index", previousIndex))
	return nil
}

func (s *locationService) ClearPrevious() {
	s.history.ClearPrevious()
	s.logger.Info("previous locations cleared")
}
