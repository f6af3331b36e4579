package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenlens/backend/internal/domain"
	"go.uber.org/zap"
)

// SustainabilityServiceConfig holds configuration for the sustainability service.
// A zero delay publishes results without waiting.
type SustainabilityServiceConfig struct {
	CarbonDelay    time.Duration
	ESGDelay       time.Duration
	PackagingDelay time.Duration
	ProductsDelay  time.Duration
	SessionTTL     time.Duration
	// Sleeper replaces wall-clock waiting, mainly for tests
	Sleeper domain.Sleeper
}

// SustainabilityService runs the dashboard panels: it simulates each panel's
// model latency, computes the result and publishes it into the session
type SustainabilityService struct {
	catalog  domain.CatalogRepository
	sessions *SessionStore
	runner   *AnalysisRunner
	logger   *zap.Logger
}

// NewSustainabilityService creates a new sustainability service with dependencies.
func NewSustainabilityService(
	cache domain.CacheRepository,
	catalog domain.CatalogRepository,
	logger *zap.Logger,
	config SustainabilityServiceConfig,
) *SustainabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}

	delays := map[domain.Section]time.Duration{
		domain.SectionCarbon:    config.CarbonDelay,
		domain.SectionESG:       config.ESGDelay,
		domain.SectionPackaging: config.PackagingDelay,
		domain.SectionProducts:  config.ProductsDelay,
	}

	return &SustainabilityService{
		catalog:  catalog,
		sessions: NewSessionStore(cache, config.SessionTTL),
		runner:   NewAnalysisRunner(config.Sleeper, delays, logger),
		logger:   logger,
	}
}

// Runner exposes the analysis runner, e.g. to attach a metrics observer
func (s *SustainabilityService) Runner() *AnalysisRunner {
	return s.runner
}

// Sessions exposes the session store
func (s *SustainabilityService) Sessions() *SessionStore {
	return s.sessions
}

// compute runs one panel analysis: the panel becomes the active view, the
// simulated delay elapses, then the result computed from req is published.
// If the session switched to another section during the delay the result is
// still returned to the caller but not stored.
func compute[T any](ctx context.Context, s *SustainabilityService, sessionID string, section domain.Section, calc func() (T, error)) (T, error) {
	var result T
	if sessionID == "" {
		return result, fmt.Errorf("%w: missing session id", domain.ErrInvalidRequest)
	}
	if err := s.sessions.Activate(ctx, sessionID, section); err != nil {
		return result, err
	}

	err := s.runner.Run(ctx, sessionID, section, func() error {
		var err error
		result, err = calc()
		if err != nil {
			return err
		}
		published, err := s.sessions.PublishIfActive(ctx, sessionID, section, result)
		if err != nil {
			return err
		}
		if !published {
			return errResultDiscarded
		}
		return nil
	})
	if errors.Is(err, errResultDiscarded) {
		s.logger.Info("panel result discarded after section switch",
			zap.String("session_id", sessionID),
			zap.String("section", string(section)))
		return result, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// CalculateCarbon estimates the carbon footprint for the session
func (s *SustainabilityService) CalculateCarbon(ctx context.Context, sessionID string, req *domain.CarbonRequest) (*domain.CarbonResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	result, err := compute(ctx, s, sessionID, domain.SectionCarbon, func() (*domain.CarbonResult, error) {
		return CalculateCarbon(req), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("carbon footprint calculated",
		zap.String("session_id", sessionID),
		zap.Int("footprint", result.Footprint),
		zap.String("category", string(result.Category)))
	return result, nil
}

// AnalyzeESG scores the product description for the session
func (s *SustainabilityService) AnalyzeESG(ctx context.Context, sessionID string, req *domain.ESGRequest) (*domain.ESGResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	result, err := compute(ctx, s, sessionID, domain.SectionESG, func() (*domain.ESGResult, error) {
		return AnalyzeESG(req), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("esg score analyzed",
		zap.String("session_id", sessionID),
		zap.Int("score", result.ESGScore),
		zap.String("category", string(result.Category)))
	return result, nil
}

// SuggestPackaging recommends packaging for the session
func (s *SustainabilityService) SuggestPackaging(ctx context.Context, sessionID string, req *domain.PackagingRequest) (*domain.PackagingResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	result, err := compute(ctx, s, sessionID, domain.SectionPackaging, func() (*domain.PackagingResult, error) {
		return SuggestPackaging(req), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("packaging suggested",
		zap.String("session_id", sessionID),
		zap.String("packaging", result.SuggestedPackaging))
	return result, nil
}

// RecommendProducts filters the catalog for the session
func (s *SustainabilityService) RecommendProducts(ctx context.Context, sessionID string, req *domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}
	result, err := compute(ctx, s, sessionID, domain.SectionProducts, func() (*domain.RecommendationResult, error) {
		return s.Recommend(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("products recommended",
		zap.String("session_id", sessionID),
		zap.Int("count", result.Count))
	return result, nil
}

// Recommend filters the catalog immediately, without session state or delay
func (s *SustainabilityService) Recommend(ctx context.Context, req *domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	return RecommendFromCatalog(ctx, s.catalog, req)
}

// RecommendFromCatalog loads every catalog product and applies the filters
func RecommendFromCatalog(ctx context.Context, catalog domain.CatalogRepository, req *domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	products, err := catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	filtered := FilterProducts(products, req)
	return &domain.RecommendationResult{
		Filters:  normalizeFilters(req),
		Count:    len(filtered),
		Products: filtered,
	}, nil
}

// Catalog returns every catalog product
func (s *SustainabilityService) Catalog(ctx context.Context) ([]domain.Product, error) {
	return s.catalog.All(ctx)
}

// Product returns a single catalog product
func (s *SustainabilityService) Product(ctx context.Context, id int) (*domain.Product, error) {
	return s.catalog.GetByID(ctx, id)
}

// CarbonResult returns the session's latest carbon result
func (s *SustainabilityService) CarbonResult(ctx context.Context, sessionID string) (*domain.CarbonResult, error) {
	var result domain.CarbonResult
	if err := s.sessions.Result(ctx, sessionID, domain.SectionCarbon, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ESGResult returns the session's latest ESG result
func (s *SustainabilityService) ESGResult(ctx context.Context, sessionID string) (*domain.ESGResult, error) {
	var result domain.ESGResult
	if err := s.sessions.Result(ctx, sessionID, domain.SectionESG, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PackagingResult returns the session's latest packaging result
func (s *SustainabilityService) PackagingResult(ctx context.Context, sessionID string) (*domain.PackagingResult, error) {
	var result domain.PackagingResult
	if err := s.sessions.Result(ctx, sessionID, domain.SectionPackaging, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProductsResult returns the session's latest recommendation result
func (s *SustainabilityService) ProductsResult(ctx context.Context, sessionID string) (*domain.RecommendationResult, error) {
	var result domain.RecommendationResult
	if err := s.sessions.Result(ctx, sessionID, domain.SectionProducts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SwitchSection makes section the session's active view
func (s *SustainabilityService) SwitchSection(ctx context.Context, sessionID string, section domain.Section) (*domain.SessionState, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", domain.ErrInvalidRequest)
	}
	if err := s.sessions.Activate(ctx, sessionID, section); err != nil {
		return nil, err
	}
	s.logger.Debug("section switched",
		zap.String("session_id", sessionID),
		zap.String("section", string(section)))
	return s.sessions.State(ctx, sessionID)
}

// Session returns the session's view state
func (s *SustainabilityService) Session(ctx context.Context, sessionID string) (*domain.SessionState, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", domain.ErrInvalidRequest)
	}
	return s.sessions.State(ctx, sessionID)
}
