package workers_test

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"log/slog"

	"geotrail/internal/config"
	"geotrail/internal/domain"
	"geotrail/internal/locator"
	"geotrail/internal/workers"
	"geotrail/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type providerFunc func(ctx context.Context, opts locator.Options) (domain.Fix, error)

func (f providerFunc) CurrentPosition(ctx context.Context, opts locator.Options) (domain.Fix, error) {
	return f(ctx, opts)
}

type countingRecorder struct {
	calls atomic.Int64
	fixes chan domain.Fix
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{fixes: make(chan domain.Fix, 64)}
}

func (r *countingRecorder) RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error) {
	r.calls.Add(1)
	r.fixes <- fix
	return domain.LocationRecord{Latitude: fix.Latitude, Longitude: fix.Longitude}, nil
}

func pollerConfig(interval time.Duration) config.PollerConfig {
	return config.PollerConfig{
		Interval:     interval,
		Timeout:      time.Second,
		MaximumAge:   10 * time.Second,
		HighAccuracy: true,
	}
}

func TestPoller_ImmediateFirstAcquisition(t *testing.T) {
	t.Parallel()

	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		if !opts.EnableHighAccuracy {
			t.Error("expected high-accuracy acquisition")
		}
		return domain.Fix{Latitude: 17.39, Longitude: 78.47, CapturedAt: time.Now()}, nil
	})
	recorder := newCountingRecorder()

	p := workers.NewPoller(newTestLogger(), provider, recorder, pollerConfig(time.Hour))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = p.Stop() }()

	select {
	case fix := <-recorder.fixes:
		if fix.Latitude != 17.39 || fix.Longitude != 78.47 {
			t.Fatalf("unexpected fix %+v", fix)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first acquisition must happen at start, not after the first interval")
	}
}

func TestPoller_StartTwice(t *testing.T) {
	t.Parallel()

	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		return domain.Fix{}, nil
	})
	p := workers.NewPoller(newTestLogger(), provider, newCountingRecorder(), pollerConfig(time.Hour))

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = p.Stop() }()

	if err := p.Start(context.Background()); !errors.Is(err, e.ErrPollerRunning) {
		t.Fatalf("expected ErrPollerRunning, got %v", err)
	}
}

func TestPoller_StopWhenNotRunning(t *testing.T) {
	t.Parallel()

	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		return domain.Fix{}, nil
	})
	p := workers.NewPoller(newTestLogger(), provider, newCountingRecorder(), pollerConfig(time.Hour))

	if err := p.Stop(); !errors.Is(err, e.ErrPollerNotRunning) {
		t.Fatalf("expected ErrPollerNotRunning, got %v", err)
	}
}

func TestPoller_AcquisitionFailureDoesNotAppend(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int64
	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		if attempts.Add(1) == 1 {
			return domain.Fix{}, errors.New("gps timeout")
		}
		return domain.Fix{Latitude: 1, Longitude: 2}, nil
	})
	recorder := newCountingRecorder()

	p := workers.NewPoller(newTestLogger(), provider, recorder, pollerConfig(20*time.Millisecond))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = p.Stop() }()

	// first cycle fails with no append; the next scheduled cycle is the retry
	select {
	case fix := <-recorder.fixes:
		if attempts.Load() < 2 {
			t.Fatal("a failed cycle must not append")
		}
		if fix.Latitude != 1 || fix.Longitude != 2 {
			t.Fatalf("unexpected fix %+v", fix)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected the next cycle to recover")
	}
}

func TestPoller_DiscardsResultAfterStop(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	acquiring := make(chan struct{})
	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		close(acquiring)
		<-release
		return domain.Fix{Latitude: 50, Longitude: 60}, nil
	})
	recorder := newCountingRecorder()

	p := workers.NewPoller(newTestLogger(), provider, recorder, pollerConfig(time.Hour))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	<-acquiring
	if err := p.Stop(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	close(release)

	select {
	case fix := <-recorder.fixes:
		t.Fatalf("fix arriving after stop must be discarded, got %+v", fix)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestPoller_RestartAfterStopPollsImmediately(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	acquiring := make(chan struct{})
	var calls atomic.Int64
	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		if calls.Add(1) == 1 {
			close(acquiring)
			<-release
		}
		return domain.Fix{Latitude: 5, Longitude: 6, CapturedAt: time.Now()}, nil
	})
	recorder := newCountingRecorder()

	p := workers.NewPoller(newTestLogger(), provider, recorder, pollerConfig(time.Hour))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	<-acquiring
	if err := p.Stop(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// the first run's acquisition is still draining; the restart must not
	// have its first cycle skipped by it
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = p.Stop() }()
	defer close(release)

	select {
	case fix := <-recorder.fixes:
		if fix.Latitude != 5 || fix.Longitude != 6 {
			t.Fatalf("unexpected fix %+v", fix)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("restart must acquire immediately despite a draining cycle")
	}
}

func TestPoller_SkipsTickWhileAcquisitionInFlight(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	acquiring := make(chan struct{})
	var once atomic.Bool
	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		if once.CompareAndSwap(false, true) {
			close(acquiring)
		}
		<-release
		return domain.Fix{Latitude: 1, Longitude: 2}, nil
	})
	recorder := newCountingRecorder()

	p := workers.NewPoller(newTestLogger(), provider, recorder, pollerConfig(10*time.Millisecond))
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer func() { _ = p.Stop() }()

	<-acquiring
	time.Sleep(100 * time.Millisecond) // several ticks fire while blocked

	status := p.Status()
	if status.Skipped == 0 {
		t.Fatal("expected skipped cycles while acquisition is in flight")
	}
	if recorder.calls.Load() != 0 {
		t.Fatal("nothing may be recorded while the acquisition hangs")
	}
	close(release)
}

func TestPoller_StatusReflectsLifecycle(t *testing.T) {
	t.Parallel()

	provider := providerFunc(func(ctx context.Context, opts locator.Options) (domain.Fix, error) {
		return domain.Fix{}, nil
	})
	p := workers.NewPoller(newTestLogger(), provider, newCountingRecorder(), pollerConfig(time.Hour))

	if p.Status().Running {
		t.Fatal("poller must start stopped")
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !p.Status().Running {
		t.Fatal("expected running after Start")
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Status().Running {
		t.Fatal("expected stopped after Stop")
	}
}
