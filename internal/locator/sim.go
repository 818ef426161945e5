package locator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"geotrail/internal/domain"
	"geotrail/pkg/e"
)

// maximum per-step drift in degrees, roughly 50m
const simStepDegrees = 0.0005

// Sim is a random-walk provider for running the service without real
// hardware. It honors MaximumAge by replaying the last fix while it is still
// fresh, the same way a device returns a cached position.
type Sim struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	lat    float64
	lng    float64
	last   domain.Fix
	lastAt time.Time
	now    func() time.Time
}

func NewSim(startLat, startLng float64, seed int64) *Sim {
	return &Sim{
		rnd: rand.New(rand.NewSource(seed)),
		lat: startLat,
		lng: startLng,
		now: time.Now,
	}
}

func (s *Sim) CurrentPosition(ctx context.Context, opts Options) (domain.Fix, error) {
	if err := ctx.Err(); err != nil {
		return domain.Fix{}, e.WrapError(ctx, "current position", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastAt.IsZero() && opts.MaximumAge > 0 && s.now().Sub(s.lastAt) <= opts.MaximumAge {
		return s.last, nil
	}

	s.lat += (s.rnd.Float64()*2 - 1) * simStepDegrees
	s.lng += (s.rnd.Float64()*2 - 1) * simStepDegrees
	s.lat = clamp(s.lat, -90, 90)
	s.lng = clamp(s.lng, -180, 180)

	fix := domain.Fix{
		Latitude:   s.lat,
		Longitude:  s.lng,
		CapturedAt: s.now().UTC(),
	}
	s.last = fix
	s.lastAt = s.now()
	return fix, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
