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

func TestSessionStore_Active(t *testing.T) {
	ctx := context.Background()

	t.Run("new session starts on the dashboard", func(t *testing.T) {
		store := NewSessionStore(NewMockCacheRepository(), time.Minute)

		section, err := store.Active(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.SectionDashboard, section)
	})

	t.Run("returns the activated section", func(t *testing.T) {
		store := NewSessionStore(NewMockCacheRepository(), time.Minute)
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionPackaging))

		section, err := store.Active(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.SectionPackaging, section)
	})

	t.Run("cache errors propagate", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.getError = errors.New("cache down")
		store := NewSessionStore(cache, time.Minute)

		_, err := store.Active(ctx, "s1")
		assert.EqualError(t, err, "cache down")
	})
}

func TestSessionStore_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("switching discards every other result", func(t *testing.T) {
		cache := NewMockCacheRepository()
		store := NewSessionStore(cache, time.Minute)

		for _, section := range []domain.Section{domain.SectionCarbon, domain.SectionESG, domain.SectionProducts} {
			require.NoError(t, store.Publish(ctx, "s1", section, map[string]int{"v": 1}))
		}
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionESG))

		assert.False(t, cache.has(resultKey("s1", domain.SectionCarbon)))
		assert.False(t, cache.has(resultKey("s1", domain.SectionProducts)))
		assert.True(t, cache.has(resultKey("s1", domain.SectionESG)))
	})

	t.Run("re-activating keeps the result", func(t *testing.T) {
		cache := NewMockCacheRepository()
		store := NewSessionStore(cache, time.Minute)

		require.NoError(t, store.Activate(ctx, "s1", domain.SectionCarbon))
		require.NoError(t, store.Publish(ctx, "s1", domain.SectionCarbon, 1))
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionCarbon))

		assert.True(t, cache.has(resultKey("s1", domain.SectionCarbon)))
	})

	t.Run("sessions do not affect each other", func(t *testing.T) {
		cache := NewMockCacheRepository()
		store := NewSessionStore(cache, time.Minute)

		require.NoError(t, store.Publish(ctx, "s1", domain.SectionCarbon, 1))
		require.NoError(t, store.Activate(ctx, "s2", domain.SectionESG))

		assert.True(t, cache.has(resultKey("s1", domain.SectionCarbon)))
	})

	t.Run("delete errors propagate", func(t *testing.T) {
		cache := NewMockCacheRepository()
		cache.deleteError = errors.New("delete failed")
		store := NewSessionStore(cache, time.Minute)

		err := store.Activate(ctx, "s1", domain.SectionESG)
		assert.EqualError(t, err, "delete failed")
	})
}

func TestSessionStore_Result(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(NewMockCacheRepository(), 0)

	t.Run("missing result", func(t *testing.T) {
		var out domain.CarbonResult
		err := store.Result(ctx, "s1", domain.SectionCarbon, &out)
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		want := CalculateCarbon(&domain.CarbonRequest{TotalPurchases: domain.Num(3)})
		require.NoError(t, store.Publish(ctx, "s1", domain.SectionCarbon, want))

		var got domain.CarbonResult
		require.NoError(t, store.Result(ctx, "s1", domain.SectionCarbon, &got))
		assert.Equal(t, *want, got)
	})

	t.Run("publish replaces the previous result", func(t *testing.T) {
		require.NoError(t, store.Publish(ctx, "s1", domain.SectionESG, AnalyzeESG(&domain.ESGRequest{})))
		require.NoError(t, store.Publish(ctx, "s1", domain.SectionESG, AnalyzeESG(&domain.ESGRequest{Sentiment: domain.SentimentPositive})))

		var got domain.ESGResult
		require.NoError(t, store.Result(ctx, "s1", domain.SectionESG, &got))
		assert.Equal(t, 60, got.ESGScore)
	})
}

func TestSessionStore_PublishIfActive(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the result of the active panel", func(t *testing.T) {
		store := NewSessionStore(NewMockCacheRepository(), time.Minute)
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionCarbon))

		ok, err := store.PublishIfActive(ctx, "s1", domain.SectionCarbon, CalculateCarbon(&domain.CarbonRequest{}))
		require.NoError(t, err)
		assert.True(t, ok)

		var got domain.CarbonResult
		assert.NoError(t, store.Result(ctx, "s1", domain.SectionCarbon, &got))
	})

	t.Run("drops the result once another section is active", func(t *testing.T) {
		cache := NewMockCacheRepository()
		store := NewSessionStore(cache, time.Minute)
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionCarbon))
		require.NoError(t, store.Activate(ctx, "s1", domain.SectionESG))

		ok, err := store.PublishIfActive(ctx, "s1", domain.SectionCarbon, CalculateCarbon(&domain.CarbonRequest{}))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, cache.has(resultKey("s1", domain.SectionCarbon)))
	})

	t.Run("cache errors propagate", func(t *testing.T) {
		cache := NewMockCacheRepository()
		store := NewSessionStore(cache, time.Minute)
		cache.getError = errors.New("cache down")

		_, err := store.PublishIfActive(ctx, "s1", domain.SectionCarbon, CalculateCarbon(&domain.CarbonRequest{}))
		assert.EqualError(t, err, "cache down")
	})
}

func TestSessionStore_State(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(NewMockCacheRepository(), time.Minute)

	state, err := store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, &domain.SessionState{
		SessionID:     "s1",
		ActiveSection: domain.SectionDashboard,
		Results:       []domain.Section{},
	}, state)

	require.NoError(t, store.Activate(ctx, "s1", domain.SectionPackaging))
	require.NoError(t, store.Publish(ctx, "s1", domain.SectionPackaging, SuggestPackaging(&domain.PackagingRequest{})))

	state, err = store.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.SectionPackaging, state.ActiveSection)
	assert.Equal(t, []domain.Section{domain.SectionPackaging}, state.Results)
}

func TestNewSessionStoreDefaultTTL(t *testing.T) {
	store := NewSessionStore(NewMockCacheRepository(), 0)
	assert.Equal(t, 30*time.Minute, store.ttl)
}
