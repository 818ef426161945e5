package service

import (
	"context"

	"geotrail/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Geocoder translates a coordinate pair into a display address. The boolean
// reports whether an address was resolved; resolution failure is not an
// error, it degrades to an address-less record.
type Geocoder interface {
	Resolve(ctx context.Context, lat, lng float64) (address string, resolved bool)
}

// TelemetryQueue accepts fire-and-forget notification events.
type TelemetryQueue interface {
	Enqueue(ctx context.Context, ev domain.TelemetryEvent) error
}

// HistoryService is the use-case surface over the location history.
type HistoryService interface {
	RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error)
	Snapshot() domain.Snapshot
	RemoveAt(previousIndex int) error
	ClearPrevious()
}

// PollerControl is the explicit lifecycle of the acquisition loop.
type PollerControl interface {
	Start(ctx context.Context) error
	Stop() error
	Status() domain.PollerStatus
}

type Service struct {
	HistoryService HistoryService
	PollerControl  PollerControl
}

func NewService(historyService HistoryService, pollerControl PollerControl) *Service {
	return &Service{
		HistoryService: historyService,
		PollerControl:  pollerControl,
	}
}
