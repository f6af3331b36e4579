package usecase

import "github.com/greenlens/backend/internal/domain"

// DashboardOverview returns the static datasets shown on the dashboard.
// A fresh value is built on each call so callers may modify it.
func DashboardOverview() *domain.DashboardOverview {
	return &domain.DashboardOverview{
		Stats: []domain.HeadlineStat{
			{Title: "Carbon Footprint", Value: "82 kg CO₂e", Change: "-15%", Trend: "down"},
			{Title: "ESG Score", Value: "85/100", Change: "+8%", Trend: "up"},
			{Title: "Sustainable Packaging", Value: "90%", Change: "+12%", Trend: "up"},
			{Title: "Eco Products", Value: "156", Change: "+23%", Trend: "up"},
		},
		CarbonTrend: []domain.CarbonTrendPoint{
			{Month: "Jan", Footprint: 120, Target: 100},
			{Month: "Feb", Footprint: 115, Target: 100},
			{Month: "Mar", Footprint: 108, Target: 100},
			{Month: "Apr", Footprint: 95, Target: 100},
			{Month: "May", Footprint: 88, Target: 100},
			{Month: "Jun", Footprint: 82, Target: 100},
		},
		ESGBreakdown: []domain.ESGPillarScore{
			{Category: "Environmental", Score: 85},
			{Category: "Social", Score: 78},
			{Category: "Governance", Score: 92},
		},
		PackagingMix: []domain.PackagingShare{
			{Name: "Recyclable", Value: 65},
			{Name: "Biodegradable", Value: 25},
			{Name: "Conventional", Value: 10},
		},
	}
}
