package usecase

import "github.com/greenlens/backend/internal/domain"

// Packaging form defaults
const (
	DefaultMaterial      = "plastic"
	DefaultFragility     = "low"
	DefaultRecyclable    = "yes"
	DefaultTransportMode = "land"
)

// Weight thresholds in grams
const (
	fragileHeavyWeight = 500.0
	heavyWeight        = 1000.0
)

// packagingOption is one outcome of the decision chain
type packagingOption struct {
	label          string
	sustainability string
	costEfficiency string
	impact         string
}

var (
	standardCardboard  = packagingOption{"Standard Cardboard", "Good", "Medium", "Low"}
	reinforcedEcoFoam  = packagingOption{"Reinforced Eco-Foam", "Fair", "High", "Medium"}
	bubbleWrap         = packagingOption{"Biodegradable Bubble Wrap", "Excellent", "Medium", "Very Low"}
	moldedPulp         = packagingOption{"Recycled Cardboard with Molded Pulp", "Excellent", "Medium", "Very Low"}
	heavyDutyCardboard = packagingOption{"Heavy-Duty Recycled Cardboard", "Good", "High", "Low"}
	compostable        = packagingOption{"Compostable Packaging", "Excellent", "Low", "Very Low"}
)

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// choosePackaging runs the ordered rule chain; the first matching rule wins
func choosePackaging(material, fragility, recyclable string, weight float64) packagingOption {
	switch {
	case fragility == "high" && weight > fragileHeavyWeight:
		return reinforcedEcoFoam
	case fragility == "high":
		return bubbleWrap
	case material == "glass":
		return moldedPulp
	case weight > heavyWeight:
		return heavyDutyCardboard
	case recyclable == "no":
		return compostable
	default:
		return standardCardboard
	}
}

// worsenImpact moves an impact rating one step toward High
func worsenImpact(impact string) string {
	switch impact {
	case "Very Low":
		return "Low"
	case "Low":
		return "Medium"
	default:
		return "High"
	}
}

// SuggestPackaging builds the packaging recommendation for the form.
// The LCA emission figure is carried through to the result but does not
// take part in the decision.
func SuggestPackaging(req *domain.PackagingRequest) *domain.PackagingResult {
	option := choosePackaging(
		withDefault(req.MaterialType, DefaultMaterial),
		withDefault(req.Fragility, DefaultFragility),
		withDefault(req.Recyclable, DefaultRecyclable),
		req.ProductWeight.Float(),
	)

	result := &domain.PackagingResult{
		SuggestedPackaging:  option.label,
		Sustainability:      option.sustainability,
		CostEfficiency:      option.costEfficiency,
		EnvironmentalImpact: option.impact,
		LCAEmission:         req.LCAEmission.Float(),
	}

	if withDefault(req.TransportMode, DefaultTransportMode) == "air" {
		result.SuggestedPackaging = "Lightweight " + result.SuggestedPackaging
		result.EnvironmentalImpact = worsenImpact(result.EnvironmentalImpact)
	}

	return result
}
