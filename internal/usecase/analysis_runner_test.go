package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/greenlens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallClockSleeper(t *testing.T) {
	t.Run("zero delay returns at once", func(t *testing.T) {
		assert.NoError(t, WallClockSleeper{}.Sleep(context.Background(), 0))
	})

	t.Run("waits for the delay", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, WallClockSleeper{}.Sleep(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WallClockSleeper{}.Sleep(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAnalysisRunner_Run(t *testing.T) {
	delays := map[domain.Section]time.Duration{
		domain.SectionCarbon: 2 * time.Second,
		domain.SectionESG:    2500 * time.Millisecond,
	}

	t.Run("waits the section delay then publishes", func(t *testing.T) {
		sleeper := &recordingSleeper{}
		observer := &recordingObserver{}
		runner := NewAnalysisRunner(sleeper, delays, nil)
		runner.SetObserver(observer)

		published := false
		err := runner.Run(context.Background(), "s1", domain.SectionESG, func() error {
			published = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, published)
		assert.Equal(t, []time.Duration{2500 * time.Millisecond}, sleeper.delays)
		assert.Equal(t, []observation{{domain.SectionESG, domain.OutcomeSuccess}}, observer.all())
		assert.False(t, runner.InFlight("s1", domain.SectionESG))
	})

	t.Run("rejects a second trigger while busy", func(t *testing.T) {
		sleeper := newBlockingSleeper()
		observer := &recordingObserver{}
		runner := NewAnalysisRunner(sleeper, delays, nil)
		runner.SetObserver(observer)

		done := make(chan error, 1)
		go func() {
			done <- runner.Run(context.Background(), "s1", domain.SectionCarbon, func() error { return nil })
		}()
		<-sleeper.entered
		assert.True(t, runner.InFlight("s1", domain.SectionCarbon))

		err := runner.Run(context.Background(), "s1", domain.SectionCarbon, func() error {
			t.Error("busy trigger must not publish")
			return nil
		})
		assert.ErrorIs(t, err, domain.ErrAnalysisInProgress)

		close(sleeper.release)
		require.NoError(t, <-done)
		assert.False(t, runner.InFlight("s1", domain.SectionCarbon))
		assert.Equal(t, []observation{
			{domain.SectionCarbon, domain.OutcomeBusy},
			{domain.SectionCarbon, domain.OutcomeSuccess},
		}, observer.all())
	})

	t.Run("other sessions and panels are not blocked", func(t *testing.T) {
		sleeper := newBlockingSleeper()
		runner := NewAnalysisRunner(sleeper, delays, nil)

		done := make(chan error, 3)
		run := func(session string, section domain.Section) {
			done <- runner.Run(context.Background(), session, section, func() error { return nil })
		}
		go run("s1", domain.SectionCarbon)
		go run("s2", domain.SectionCarbon)
		go run("s1", domain.SectionESG)
		for i := 0; i < 3; i++ {
			<-sleeper.entered
		}

		close(sleeper.release)
		for i := 0; i < 3; i++ {
			assert.NoError(t, <-done)
		}
	})

	t.Run("cancellation discards the result", func(t *testing.T) {
		observer := &recordingObserver{}
		runner := NewAnalysisRunner(newBlockingSleeper(), delays, nil)
		runner.SetObserver(observer)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runner.Run(ctx, "s1", domain.SectionCarbon, func() error {
			t.Error("canceled analysis must not publish")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, runner.InFlight("s1", domain.SectionCarbon))
		assert.Equal(t, []observation{{domain.SectionCarbon, domain.OutcomeCanceled}}, observer.all())
	})

	t.Run("publish errors are returned and release the panel", func(t *testing.T) {
		observer := &recordingObserver{}
		runner := NewAnalysisRunner(&recordingSleeper{}, delays, nil)
		runner.SetObserver(observer)
		boom := errors.New("boom")

		err := runner.Run(context.Background(), "s1", domain.SectionCarbon, func() error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, runner.InFlight("s1", domain.SectionCarbon))
		assert.Equal(t, []observation{{domain.SectionCarbon, domain.OutcomeError}}, observer.all())
	})

	t.Run("discarded results are counted apart from errors", func(t *testing.T) {
		observer := &recordingObserver{}
		runner := NewAnalysisRunner(&recordingSleeper{}, delays, nil)
		runner.SetObserver(observer)

		err := runner.Run(context.Background(), "s1", domain.SectionESG, func() error { return errResultDiscarded })
		assert.ErrorIs(t, err, errResultDiscarded)
		assert.False(t, runner.InFlight("s1", domain.SectionESG))
		assert.Equal(t, []observation{{domain.SectionESG, domain.OutcomeDiscarded}}, observer.all())
	})
}

func TestNewAnalysisRunner(t *testing.T) {
	delays := map[domain.Section]time.Duration{domain.SectionCarbon: time.Second}
	runner := NewAnalysisRunner(nil, delays, nil)

	assert.IsType(t, WallClockSleeper{}, runner.sleeper)

	delays[domain.SectionCarbon] = time.Hour
	assert.Equal(t, time.Second, runner.Delay(domain.SectionCarbon))
	assert.Zero(t, runner.Delay(domain.SectionDashboard))
}
