package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"log/slog"

	"geotrail/internal/config"
	"geotrail/internal/domain"
	"geotrail/internal/locator"
	"geotrail/pkg/e"
)

// FixRecorder is the slice of the location service the poller needs.
type FixRecorder interface {
	RecordFix(ctx context.Context, fix domain.Fix) (domain.LocationRecord, error)
}

// Poller drives periodic acquisition of raw fixes. Start performs one
// immediate acquisition, then one per interval. A cycle that fails is not
// retried; the next tick is the only retry mechanism. A tick that fires
// while the previous acquisition is still in flight is skipped.
type Poller struct {
	logger   *slog.Logger
	provider locator.Provider
	recorder FixRecorder
	interval time.Duration
	opts     locator.Options

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	cycles  atomic.Uint64
	skipped atomic.Uint64
}

func NewPoller(logger *slog.Logger, provider locator.Provider, recorder FixRecorder, cfg config.PollerConfig) *Poller {
	return &Poller{
		logger:   logger,
		provider: provider,
		recorder: recorder,
		interval: cfg.Interval,
		opts: locator.Options{
			EnableHighAccuracy: cfg.HighAccuracy,
			MaximumAge:         cfg.MaximumAge,
			Timeout:            cfg.Timeout,
		},
	}
}

// Start begins the repeating cycle. The first acquisition happens right
// away, not after the first interval.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return e.ErrPollerRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(runCtx, p.done)

	p.logger.Info("poller started", slog.Duration("interval", p.interval))
	return nil
}

// Stop cancels future cycles. An in-flight acquisition is not aborted, but
// its result is discarded before it can reach the history.
func (p *Poller) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil {
		return e.ErrPollerNotRunning
	}

	p.cancel()
	<-p.done
	p.cancel = nil
	p.done = nil

	p.logger.Info("poller stopped")
	return nil
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) Status() domain.PollerStatus {
	return domain.PollerStatus{
		Running:  p.Running(),
		Interval: p.interval,
		Cycles:   p.cycles.Load(),
		Skipped:  p.skipped.Load(),
	}
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// The guard is scoped to this run: a cycle still draining after Stop
	// cannot suppress the first acquisition of a later Start.
	guard := new(atomic.Bool)

	p.spawnCycle(ctx, guard)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.spawnCycle(ctx, guard)
		}
	}
}

func (p *Poller) spawnCycle(ctx context.Context, guard *atomic.Bool) {
	if !guard.CompareAndSwap(false, true) {
		p.skipped.Add(1)
		p.logger.Warn("previous acquisition still in flight, skipping cycle")
		return
	}

	go func() {
		defer guard.Store(false)
		p.cycle(ctx)
	}()
}

func (p *Poller) cycle(ctx context.Context) {
	p.cycles.Add(1)

	// The acquisition context is independent of the run context: Stop does
	// not abort an in-flight request, it only discards its result.
	acqCtx, cancel := context.WithTimeout(context.Background(), p.opts.Timeout)
	defer cancel()

	fix, err := p.provider.CurrentPosition(acqCtx, p.opts)
	if err != nil {
		p.logger.Error("position acquisition failed", slog.Any("error", err))
		return
	}

	if ctx.Err() != nil {
		p.logger.Info("discarding fix acquired after stop",
			slog.Float64("lat", fix.Latitude),
			slog.Float64("lng", fix.Longitude),
		)
		return
	}

	if _, err := p.recorder.RecordFix(ctx, fix); err != nil {
		p.logger.Error("record fix failed", slog.Any("error", err))
	}
}
