package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/greenlens/backend/internal/domain"
	"go.uber.org/zap"
)

// errResultDiscarded is returned by a publish func when the panel stopped
// being the session's active view before its result was stored
var errResultDiscarded = errors.New("panel no longer active, result discarded")

// WallClockSleeper waits on real time
type WallClockSleeper struct{}

// Sleep blocks for d or until ctx is done
func (WallClockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AnalysisRunner simulates the latency of a model call for each panel and
// allows a single in-flight analysis per (session, panel) pair
type AnalysisRunner struct {
	sleeper  domain.Sleeper
	delays   map[domain.Section]time.Duration
	observer domain.AnalysisObserver
	logger   *zap.Logger

	mu   sync.Mutex
	busy map[string]struct{}
}

// NewAnalysisRunner creates a runner. A nil sleeper waits on the wall clock.
func NewAnalysisRunner(sleeper domain.Sleeper, delays map[domain.Section]time.Duration, logger *zap.Logger) *AnalysisRunner {
	if sleeper == nil {
		sleeper = WallClockSleeper{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	copied := make(map[domain.Section]time.Duration, len(delays))
	for section, d := range delays {
		copied[section] = d
	}
	return &AnalysisRunner{
		sleeper: sleeper,
		delays:  copied,
		logger:  logger,
		busy:    make(map[string]struct{}),
	}
}

// SetObserver installs the observer notified after every attempt
func (r *AnalysisRunner) SetObserver(observer domain.AnalysisObserver) {
	r.observer = observer
}

// Delay returns the simulated latency configured for a section
func (r *AnalysisRunner) Delay(section domain.Section) time.Duration {
	return r.delays[section]
}

// InFlight reports whether the panel is currently busy for the session
func (r *AnalysisRunner) InFlight(sessionID string, section domain.Section) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.busy[busyKey(sessionID, section)]
	return ok
}

func busyKey(sessionID string, section domain.Section) string {
	return fmt.Sprintf("%s:%s", sessionID, section)
}

func (r *AnalysisRunner) acquire(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.busy[key]; ok {
		return false
	}
	r.busy[key] = struct{}{}
	return true
}

func (r *AnalysisRunner) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.busy, key)
}

func (r *AnalysisRunner) observe(section domain.Section, outcome string, started time.Time) {
	if r.observer != nil {
		r.observer.ObserveAnalysis(section, outcome, time.Since(started))
	}
}

// Run marks the panel busy, waits the section's delay, then calls publish.
// publish runs while the panel is still busy so a result is visible before
// the next trigger is accepted.
func (r *AnalysisRunner) Run(ctx context.Context, sessionID string, section domain.Section, publish func() error) error {
	started := time.Now()
	key := busyKey(sessionID, section)

	if !r.acquire(key) {
		r.observe(section, domain.OutcomeBusy, started)
		return fmt.Errorf("%w: %s", domain.ErrAnalysisInProgress, section)
	}
	defer r.release(key)

	r.logger.Debug("analysis started",
		zap.String("section", string(section)),
		zap.String("session_id", sessionID),
		zap.Duration("delay", r.delays[section]))

	if err := r.sleeper.Sleep(ctx, r.delays[section]); err != nil {
		r.observe(section, domain.OutcomeCanceled, started)
		return err
	}

	if err := publish(); err != nil {
		if errors.Is(err, errResultDiscarded) {
			r.observe(section, domain.OutcomeDiscarded, started)
			r.logger.Debug("analysis result discarded",
				zap.String("section", string(section)),
				zap.String("session_id", sessionID))
			return err
		}
		r.observe(section, domain.OutcomeError, started)
		return err
	}

	r.observe(section, domain.OutcomeSuccess, started)
	r.logger.Debug("analysis published",
		zap.String("section", string(section)),
		zap.String("session_id", sessionID),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}
