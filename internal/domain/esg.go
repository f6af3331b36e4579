package domain

// Sentiment is the market sentiment selected for an ESG analysis
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// ESGRequest holds the ESG analysis form fields
type ESGRequest struct {
	ProductName        string     `json:"productName"`
	Description        string     `json:"description"`
	Sentiment          Sentiment  `json:"sentiment"`
	EnvironmentalScore FormNumber `json:"environmentalScore"`
}

// ESGCategory is the band an ESG score falls into
type ESGCategory string

const (
	ESGExcellent ESGCategory = "Excellent"
	ESGGood      ESGCategory = "Good"
	ESGFair      ESGCategory = "Fair"
	ESGPoor      ESGCategory = "Poor"
)

// ESGBreakdown splits the score into its three pillars for display
type ESGBreakdown struct {
	Environmental int `json:"environmental"`
	Social        int `json:"social"`
	Governance    int `json:"governance"`
}

// ESGResult is the published ESG analysis
type ESGResult struct {
	ESGScore         int          `json:"esgScore"`
	Category         ESGCategory  `json:"category"`
	Recommendations  []string     `json:"recommendations"`
	Breakdown        ESGBreakdown `json:"breakdown"`
	PositiveKeywords []string     `json:"positiveKeywords"`
	NegativeKeywords []string     `json:"negativeKeywords"`
}
