package usecase

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/greenlens/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Minimum sustainability scores per tier
const (
	highSustainabilityScore   = 85
	mediumSustainabilityScore = 70
)

// priceBounds is a parsed price-range bucket. A nil max is open-ended and
// an invalid bucket matches nothing.
type priceBounds struct {
	min   decimal.Decimal
	max   *decimal.Decimal
	valid bool
}

// parsePriceRange parses "min-max" or "min". A max that is absent, zero or
// unparsable leaves the bucket open-ended above.
func parsePriceRange(raw string) priceBounds {
	parts := strings.Split(raw, "-")
	lo, err := parseBound(parts[0])
	if err != nil {
		return priceBounds{}
	}
	bounds := priceBounds{min: lo, valid: true}
	if len(parts) > 1 {
		if hi, err := parseBound(parts[1]); err == nil && !hi.IsZero() {
			bounds.max = &hi
		}
	}
	return bounds
}

func parseBound(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, strconv.ErrSyntax
	}
	return decimal.NewFromFloat(f), nil
}

func (b priceBounds) contains(price decimal.Decimal) bool {
	if !b.valid || price.LessThan(b.min) {
		return false
	}
	return b.max == nil || price.LessThanOrEqual(*b.max)
}

func isActive(filter string) bool {
	return filter != "" && !strings.EqualFold(filter, domain.FilterAll)
}

// minimumScore returns the score threshold for a sustainability tier
func minimumScore(level string) int {
	if strings.EqualFold(level, "high") {
		return highSustainabilityScore
	}
	return mediumSustainabilityScore
}

// FilterProducts returns the products matching every active filter, sorted
// by purchase likelihood, highest first. Ties keep catalog order. The input
// slice is not modified.
func FilterProducts(products []domain.Product, req *domain.RecommendationRequest) []domain.Product {
	var bounds priceBounds
	if isActive(req.PriceRange) {
		bounds = parsePriceRange(req.PriceRange)
	}
	brand := strings.ToLower(strings.TrimSpace(req.Brand))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if isActive(req.Category) && !strings.EqualFold(string(p.Category), req.Category) {
			continue
		}
		if isActive(req.PriceRange) && !bounds.contains(p.Price) {
			continue
		}
		if isActive(req.SustainabilityLevel) && p.SustainabilityScore < minimumScore(req.SustainabilityLevel) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(p.Brand), brand) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PurchaseLikelihood > filtered[j].PurchaseLikelihood
	})

	return filtered
}

// normalizeFilters fills inactive filters with "all" so results echo a complete filter set
func normalizeFilters(req *domain.RecommendationRequest) domain.RecommendationRequest {
	out := *req
	if out.Category == "" {
		out.Category = domain.FilterAll
	}
	if out.PriceRange == "" {
		out.PriceRange = domain.FilterAll
	}
	if out.SustainabilityLevel == "" {
		out.SustainabilityLevel = domain.FilterAll
	}
	out.Brand = strings.TrimSpace(out.Brand)
	return out
}
