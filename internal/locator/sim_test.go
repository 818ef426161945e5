package locator

import (
	"context"
	"errors"
	"testing"
	"time"

	"geotrail/pkg/e"
)

func TestSim_ReturnsFixNearStart(t *testing.T) {
	t.Parallel()

	s := NewSim(17.3920466, 78.4758037, 1)
	fix, err := s.CurrentPosition(context.Background(), Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if fix.Latitude < 17.39 || fix.Latitude > 17.40 {
		t.Fatalf("latitude drifted too far: %f", fix.Latitude)
	}
	if fix.Longitude < 78.47 || fix.Longitude > 78.48 {
		t.Fatalf("longitude drifted too far: %f", fix.Longitude)
	}
	if fix.CapturedAt.IsZero() {
		t.Fatal("capture instant must be set")
	}
}

func TestSim_CachedFixWithinMaximumAge(t *testing.T) {
	t.Parallel()

	s := NewSim(10, 20, 1)

	first, err := s.CurrentPosition(context.Background(), Options{MaximumAge: time.Minute})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := s.CurrentPosition(context.Background(), Options{MaximumAge: time.Minute})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if first != second {
		t.Fatalf("expected the cached fix within MaximumAge, got %+v then %+v", first, second)
	}
}

func TestSim_FreshFixWhenMaximumAgeZero(t *testing.T) {
	t.Parallel()

	s := NewSim(10, 20, 1)

	first, _ := s.CurrentPosition(context.Background(), Options{})
	second, _ := s.CurrentPosition(context.Background(), Options{})

	if first.Latitude == second.Latitude && first.Longitude == second.Longitude {
		t.Fatal("expected the walk to move between uncached fixes")
	}
}

func TestSim_HonorsCancelledContext(t *testing.T) {
	t.Parallel()

	s := NewSim(10, 20, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CurrentPosition(ctx, Options{})
	if !errors.Is(err, e.ErrCanceled) {
		t.Fatalf("expected ErrCanceled, got %v", err)
	}
}

func TestSim_HonorsExpiredDeadline(t *testing.T) {
	t.Parallel()

	s := NewSim(10, 20, 1)
	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	_, err := s.CurrentPosition(ctx, Options{})
	if !errors.Is(err, e.ErrDeadline) {
		t.Fatalf("expected ErrDeadline, got %v", err)
	}
}
