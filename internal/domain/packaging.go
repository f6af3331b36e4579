package domain

// PackagingRequest holds the packaging suggestion form fields
type PackagingRequest struct {
	MaterialType  string     `json:"materialType"`
	ProductWeight FormNumber `json:"productWeight"` // grams
	Fragility     string     `json:"fragility"`
	Recyclable    string     `json:"recyclable"`
	TransportMode string     `json:"transportMode"`
	LCAEmission   FormNumber `json:"lcaEmission"`
}

// PackagingResult is the published packaging recommendation
type PackagingResult struct {
	SuggestedPackaging  string  `json:"suggestedPackaging"`
	Sustainability      string  `json:"sustainability"`
	CostEfficiency      string  `json:"costEfficiency"`
	EnvironmentalImpact string  `json:"environmentalImpact"`
	LCAEmission         float64 `json:"lcaEmission"` // echoed, not scored
}
