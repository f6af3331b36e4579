package domain

// CarbonTrendPoint is one month of the footprint trend chart
type CarbonTrendPoint struct {
	Month     string `json:"month"`
	Footprint int    `json:"footprint"`
	Target    int    `json:"target"`
}

// ESGPillarScore is one bar of the ESG breakdown chart
type ESGPillarScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// PackagingShare is one slice of the packaging mix chart
type PackagingShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HeadlineStat is one of the summary cards
type HeadlineStat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"` // "up" or "down"
}

// DashboardOverview is the static content of the dashboard section
type DashboardOverview struct {
	Stats        []HeadlineStat     `json:"stats"`
	CarbonTrend  []CarbonTrendPoint `json:"carbonTrend"`
	ESGBreakdown []ESGPillarScore   `json:"esgBreakdown"`
	PackagingMix []PackagingShare   `json:"packagingMix"`
}

// SessionState summarises a session's view state
type SessionState struct {
	SessionID     string    `json:"sessionId"`
	ActiveSection Section   `json:"activeSection"`
	Results       []Section `json:"results"`
}
