package usecase

import (
	"math"

	"github.com/greenlens/backend/internal/domain"
)

// Footprint coefficients, kg CO2e per unit of each form field
const (
	purchaseFactor    = 2.5  // per purchase
	shippingFactor    = 0.12 // per km shipped
	electricityFactor = 0.4  // per kWh
	travelFactor      = 0.2  // per km travelled
	serviceFactor     = 1.8  // per service hour
	returnsFactor     = 0.5  // per percent returned, applied after the packaging multiplier
)

// GlobalAverageFootprint is the reference footprint results are compared against
const GlobalAverageFootprint = 120

// DefaultPackaging is the packaging preselected on the carbon form
const DefaultPackaging = "cardboard"

var reductionTips = []string{
	"Choose biodegradable packaging when possible",
	"Reduce return rates by reading product descriptions carefully",
	"Use renewable energy sources for electricity",
	"Combine purchases to reduce shipping frequency",
	"Consider local products to reduce shipping distances",
}

// packagingMultiplier scales the base footprint by packaging material.
// Anything that is neither plastic nor cardboard counts as biodegradable.
func packagingMultiplier(packaging string) float64 {
	switch packaging {
	case "plastic":
		return 1.2
	case "cardboard":
		return 1.0
	default:
		return 0.8
	}
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
// Values beyond the int range saturate; NaN rounds to zero.
func roundHalfUp(x float64) int {
	r := math.Floor(x + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}

// EstimateFootprint computes the monthly carbon footprint for the form.
// Missing numeric fields count as zero.
func EstimateFootprint(req *domain.CarbonRequest) int {
	packaging := req.PreferredPackaging
	if packaging == "" {
		packaging = DefaultPackaging
	}

	base := req.TotalPurchases.Float()*purchaseFactor +
		req.AvgDistance.Float()*shippingFactor +
		req.ElectricityUsage.Float()*electricityFactor +
		req.TravelDistance.Float()*travelFactor +
		req.ServiceUsage.Float()*serviceFactor

	returnsImpact := req.ReturnsPercentage.Float() * returnsFactor

	return roundHalfUp(base*packagingMultiplier(packaging) + returnsImpact)
}

// ClassifyFootprint returns the band and its description for a footprint
func ClassifyFootprint(footprint int) (domain.FootprintBand, string) {
	switch {
	case footprint < 50:
		return domain.BandExcellent, "Well below average"
	case footprint < 100:
		return domain.BandGood, "Below average"
	case footprint < 150:
		return domain.BandAverage, "Typical footprint"
	case footprint < 200:
		return domain.BandHigh, "Above average"
	default:
		return domain.BandVeryHigh, "Significantly above average"
	}
}

// CalculateCarbon builds the full carbon result record for the form
func CalculateCarbon(req *domain.CarbonRequest) *domain.CarbonResult {
	footprint := EstimateFootprint(req)
	band, description := ClassifyFootprint(footprint)

	direction := "above"
	difference := footprint - GlobalAverageFootprint
	if footprint < GlobalAverageFootprint {
		direction = "below"
		difference = GlobalAverageFootprint - footprint
		if difference < 0 {
			// wrapped around for a saturated negative footprint
			difference = math.MaxInt
		}
	}

	tips := make([]string, len(reductionTips))
	copy(tips, reductionTips)

	return &domain.CarbonResult{
		Footprint:     footprint,
		Unit:          "kg CO2e",
		Category:      band,
		Description:   description,
		GlobalAverage: GlobalAverageFootprint,
		Difference:    difference,
		Direction:     direction,
		Tips:          tips,
	}
}
