package catalog

import (
	"fmt"

	"github.com/greenlens/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// categories is the closed set a record category must belong to
var categories = map[string]domain.Category{
	"Clothing":    domain.CategoryClothing,
	"Electronics": domain.CategoryElectronics,
	"Home":        domain.CategoryHome,
	"Food":        domain.CategoryFood,
	"Sports":      domain.CategorySports,
}

// mapToProduct converts a raw record to our domain Product, checking the
// record invariants on the way
func mapToProduct(r record) (domain.Product, error) {
	category, ok := categories[r.category]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %d: unknown category %q", r.id, r.category)
	}

	price, err := decimal.NewFromString(r.price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d: invalid price %q: %w", r.id, r.price, err)
	}

	switch {
	case price.IsNegative():
		return domain.Product{}, fmt.Errorf("product %d: negative price", r.id)
	case r.rating < 0 || r.rating > 5:
		return domain.Product{}, fmt.Errorf("product %d: rating %.1f out of range", r.id, r.rating)
	case r.sustainabilityScore < 0 || r.sustainabilityScore > 100:
		return domain.Product{}, fmt.Errorf("product %d: sustainability score %d out of range", r.id, r.sustainabilityScore)
	case r.purchaseLikelihood < 0 || r.purchaseLikelihood > 100:
		return domain.Product{}, fmt.Errorf("product %d: purchase likelihood %d out of range", r.id, r.purchaseLikelihood)
	case r.carbonFootprint < 0 || r.waterUsage < 0:
		return domain.Product{}, fmt.Errorf("product %d: negative impact figures", r.id)
	}

	return domain.Product{
		ID:                  r.id,
		Name:                r.name,
		Brand:               r.brand,
		Category:            category,
		Price:               price,
		Rating:              r.rating,
		SustainabilityScore: r.sustainabilityScore,
		CarbonFootprint:     r.carbonFootprint,
		WaterUsage:          r.waterUsage,
		PurchaseLikelihood:  r.purchaseLikelihood,
		Image:               r.image,
		Features:            append([]string(nil), r.features...),
	}, nil
}

// cloneProduct returns a copy that shares no slices with p
func cloneProduct(p domain.Product) domain.Product {
	p.Features = append([]string(nil), p.Features...)
	return p
}
