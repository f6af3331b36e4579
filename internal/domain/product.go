package domain

import "github.com/shopspring/decimal"

// Category is the closed set of catalog categories
type Category string

const (
	CategoryClothing    Category = "Clothing"
	CategoryElectronics Category = "Electronics"
	CategoryHome        Category = "Home"
	CategoryFood        Category = "Food"
	CategorySports      Category = "Sports"
)

// Product represents a sustainable product in the recommendation catalog
type Product struct {
	ID                  int             `json:"id"`
	Name                string          `json:"name"`
	Brand               string          `json:"brand"`
	Category            Category        `json:"category"`
	Price               decimal.Decimal `json:"price"`
	Rating              float64         `json:"rating"`              // 0-5
	SustainabilityScore int             `json:"sustainabilityScore"` // 0-100
	CarbonFootprint     float64         `json:"carbonFootprint"`     // kg CO2e
	WaterUsage          float64         `json:"waterUsage"`          // litres
	PurchaseLikelihood  int             `json:"purchaseLikelihood"`  // 0-100
	Image               string          `json:"image"`
	Features            []string        `json:"features"`
}

// FilterAll marks a product filter as inactive
const FilterAll = "all"

// RecommendationRequest holds the product preference filters
type RecommendationRequest struct {
	Category            string `json:"category"`
	PriceRange          string `json:"priceRange"`
	SustainabilityLevel string `json:"sustainabilityLevel"`
	Brand               string `json:"brand,omitempty"`
}

// RecommendationResult is the filtered, sorted view over the catalog
type RecommendationResult struct {
	Filters  RecommendationRequest `json:"filters"`
	Count    int                   `json:"count"`
	Products []Product             `json:"products"`
}
