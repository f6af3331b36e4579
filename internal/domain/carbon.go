package domain

// CarbonRequest holds the carbon footprint form fields
type CarbonRequest struct {
	TotalPurchases     FormNumber `json:"totalPurchases"`
	AvgDistance        FormNumber `json:"avgDistance"`
	PreferredPackaging string     `json:"preferredPackaging"`
	ReturnsPercentage  FormNumber `json:"returnsPercentage"`
	ElectricityUsage   FormNumber `json:"electricityUsage"`
	TravelDistance     FormNumber `json:"travelDistance"`
	ServiceUsage       FormNumber `json:"serviceUsage"`
}

// FootprintBand classifies a footprint value
type FootprintBand string

const (
	BandExcellent FootprintBand = "Excellent"
	BandGood      FootprintBand = "Good"
	BandAverage   FootprintBand = "Average"
	BandHigh      FootprintBand = "High"
	BandVeryHigh  FootprintBand = "Very High"
)

// CarbonResult is the published carbon footprint estimate
type CarbonResult struct {
	Footprint     int           `json:"footprint"` // kg CO2e
	Unit          string        `json:"unit"`
	Category      FootprintBand `json:"category"`
	Description   string        `json:"description"`
	GlobalAverage int           `json:"globalAverage"`
	Difference    int           `json:"difference"`
	Direction     string        `json:"direction"` // "below" or "above"
	Tips          []string      `json:"tips"`
}
