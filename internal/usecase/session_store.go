package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/greenlens/backend/internal/domain"
)

// SessionStore keeps each session's active section and the latest result of
// every panel. Switching the active section discards the other panels' results.
type SessionStore struct {
	cache domain.CacheRepository
	ttl   time.Duration

	// serialises section switches against conditional publishes
	mu sync.Mutex
}

// NewSessionStore creates a session store over the cache
func NewSessionStore(cache domain.CacheRepository, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{cache: cache, ttl: ttl}
}

// Format: "session:{id}:active"
func activeKey(sessionID string) string {
	return fmt.Sprintf("session:%s:active", sessionID)
}

// Format: "session:{id}:result:{section}"
func resultKey(sessionID string, section domain.Section) string {
	return fmt.Sprintf("session:%s:result:%s", sessionID, section)
}

// Active returns the session's active section, or the default section for a new session
func (s *SessionStore) Active(ctx context.Context, sessionID string) (domain.Section, error) {
	raw, err := s.cache.Get(ctx, activeKey(sessionID))
	if errors.Is(err, domain.ErrCacheMiss) {
		return domain.DefaultSection, nil
	}
	if err != nil {
		return "", err
	}
	return domain.ParseSection(string(raw))
}

// Activate makes section the active view and drops every other panel's result
func (s *SessionStore) Activate(ctx context.Context, sessionID string, section domain.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Active(ctx, sessionID)
	if err != nil {
		return err
	}
	if current == section {
		// refresh the ttl only
		return s.cache.Set(ctx, activeKey(sessionID), []byte(section), s.ttl)
	}

	for _, other := range domain.Sections {
		if other == section || !other.HasResult() {
			continue
		}
		if err := s.cache.Delete(ctx, resultKey(sessionID, other)); err != nil {
			return err
		}
	}
	return s.cache.Set(ctx, activeKey(sessionID), []byte(section), s.ttl)
}

// Publish stores the panel's result, replacing the previous one
func (s *SessionStore) Publish(ctx context.Context, sessionID string, section domain.Section, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode %s result: %w", section, err)
	}
	return s.cache.Set(ctx, resultKey(sessionID, section), data, s.ttl)
}

// PublishIfActive stores the panel's result only while section is still the
// session's active view. It reports whether the result was stored.
func (s *SessionStore) PublishIfActive(ctx context.Context, sessionID string, section domain.Section, result any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.Active(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if active != section {
		return false, nil
	}
	return true, s.Publish(ctx, sessionID, section, result)
}

// Result decodes the panel's latest result into out
func (s *SessionStore) Result(ctx context.Context, sessionID string, section domain.Section, out any) error {
	data, err := s.cache.Get(ctx, resultKey(sessionID, section))
	if errors.Is(err, domain.ErrCacheMiss) {
		return fmt.Errorf("%w: %s", domain.ErrResultNotFound, section)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// State summarises the session
func (s *SessionStore) State(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	active, err := s.Active(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := &domain.SessionState{
		SessionID:     sessionID,
		ActiveSection: active,
		Results:       []domain.Section{},
	}
	for _, section := range domain.Sections {
		if !section.HasResult() {
			continue
		}
		ok, err := s.cache.Exists(ctx, resultKey(sessionID, section))
		if err != nil {
			return nil, err
		}
		if ok {
			state.Results = append(state.Results, section)
		}
	}
	return state, nil
}
