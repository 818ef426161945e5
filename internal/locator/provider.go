package locator

import (
	"context"
	"time"

	"geotrail/internal/domain"
)

// Options mirror the device geolocation contract: prefer a high-accuracy
// fix, accept a cached fix no older than MaximumAge, give up after Timeout.
type Options struct {
	EnableHighAccuracy bool
	MaximumAge         time.Duration
	Timeout            time.Duration
}

// Provider is the black-box source of raw coordinate fixes. Real device GPS
// lives behind this boundary; the service only ever sees a Fix or an error.
type Provider interface {
	CurrentPosition(ctx context.Context, opts Options) (domain.Fix, error)
}
