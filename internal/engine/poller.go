package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// DefaultResetInterval is how often a running process re-checks the day.
const DefaultResetInterval = 60 * time.Second

// ResetPoller re-runs the daily reset check on a fixed interval so a
// process left open across midnight still starts the new day clean.
type ResetPoller struct {
	tracker  *Tracker
	interval time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	sched   gocron.Scheduler
	onReset func()
}

func NewResetPoller(tracker *Tracker, interval time.Duration, log *slog.Logger) *ResetPoller {
	if interval <= 0 {
		interval = DefaultResetInterval
	}
	if log == nil {
		log = slog.Default()
	}
	return &ResetPoller{tracker: tracker, interval: interval, log: log}
}

// OnReset registers fn to run after each reset the poller applies.
// It must be called before Start.
func (p *ResetPoller) OnReset(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onReset = fn
}

// Start schedules the check. Calling Start on a running poller is a no-op.
func (p *ResetPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sched != nil {
		return nil
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("reset poller: new scheduler: %w", err)
	}
	onReset := p.onReset
	_, err = sched.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() { p.tick(ctx, onReset) }),
		gocron.WithName("daily-reset"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("reset poller: new job: %w", err)
	}
	sched.Start()
	p.sched = sched
	return nil
}

// Stop cancels the schedule and waits for a running check to finish.
func (p *ResetPoller) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sched == nil {
		return nil
	}
	err := p.sched.Shutdown()
	p.sched = nil
	if err != nil {
		return fmt.Errorf("reset poller: shutdown: %w", err)
	}
	return nil
}

func (p *ResetPoller) tick(ctx context.Context, onReset func()) {
	if ctx.Err() != nil {
		return
	}
	reset, err := p.tracker.CheckDailyReset(ctx)
	if err != nil {
		p.log.Error("daily reset check failed", "error", err)
		return
	}
	if reset && onReset != nil {
		onReset()
	}
}
