package usecase

import (
	"fmt"

	"github.com/greenlens/backend/internal/domain"
)

func bound(v float64) *float64 {
	return &v
}

func options(pairs ...string) []domain.FieldOption {
	opts := make([]domain.FieldOption, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		opts = append(opts, domain.FieldOption{Value: pairs[i], Label: pairs[i+1]})
	}
	return opts
}

var panelForms = map[domain.Section]domain.PanelForm{
	domain.SectionCarbon: {
		Section: domain.SectionCarbon,
		Title:   "Carbon Footprint Calculator",
		Action:  "Calculate Footprint",
		Fields: []domain.FormField{
			{Name: "totalPurchases", Kind: domain.FieldNumber, Label: "Total Purchases (per month)", Placeholder: "e.g., 15"},
			{Name: "avgDistance", Kind: domain.FieldNumber, Label: "Average Shipping Distance (km)", Placeholder: "e.g., 450"},
			{
				Name: "preferredPackaging", Kind: domain.FieldSelect, Label: "Preferred Packaging", Default: DefaultPackaging,
				Options: options("cardboard", "Cardboard", "plastic", "Plastic", "biodegradable", "Biodegradable"),
			},
			{Name: "returnsPercentage", Kind: domain.FieldNumber, Label: "Returns Percentage (%)", Placeholder: "e.g., 3"},
			{Name: "electricityUsage", Kind: domain.FieldNumber, Label: "Monthly Electricity Usage (kWh)", Placeholder: "e.g., 320"},
			{Name: "travelDistance", Kind: domain.FieldNumber, Label: "Monthly Travel Distance (km)", Placeholder: "e.g., 1000"},
			{Name: "serviceUsage", Kind: domain.FieldNumber, Label: "Service Usage (hours/month)", Placeholder: "e.g., 25"},
		},
	},
	domain.SectionESG: {
		Section: domain.SectionESG,
		Title:   "ESG Score Analysis",
		Action:  "Analyze ESG Score",
		Fields: []domain.FormField{
			{Name: "productName", Kind: domain.FieldText, Label: "Product Name", Placeholder: "e.g., Solar-powered Water Heater"},
			{Name: "description", Kind: domain.FieldTextarea, Label: "Product Description",
				Placeholder: "Describe the product's environmental impact, sustainability features, and social benefits..."},
			{
				Name: "sentiment", Kind: domain.FieldSelect, Label: "Market Sentiment", Default: string(domain.SentimentNeutral),
				Options: options("positive", "Positive", "neutral", "Neutral", "negative", "Negative"),
			},
			{Name: "environmentalScore", Kind: domain.FieldNumber, Label: "Environmental Score (0-100)",
				Placeholder: "e.g., 75", Min: bound(0), Max: bound(100)},
		},
	},
	domain.SectionPackaging: {
		Section: domain.SectionPackaging,
		Title:   "Smart Packaging Suggestions",
		Action:  "Get Packaging Suggestion",
		Fields: []domain.FormField{
			{
				Name: "materialType", Kind: domain.FieldSelect, Label: "Material Type", Default: DefaultMaterial,
				Options: options("plastic", "Plastic", "glass", "Glass", "metal", "Metal",
					"ceramic", "Ceramic", "textile", "Textile", "electronics", "Electronics"),
			},
			{Name: "productWeight", Kind: domain.FieldNumber, Label: "Product Weight (grams)", Placeholder: "e.g., 150"},
			{
				Name: "fragility", Kind: domain.FieldSelect, Label: "Fragility Level", Default: DefaultFragility,
				Options: options("low", "Low", "medium", "Medium", "high", "High"),
			},
			{
				Name: "recyclable", Kind: domain.FieldSelect, Label: "Recyclable Product", Default: DefaultRecyclable,
				Options: options("yes", "Yes", "no", "No"),
			},
			{
				Name: "transportMode", Kind: domain.FieldSelect, Label: "Transport Mode", Default: DefaultTransportMode,
				Options: options("land", "Land", "sea", "Sea", "air", "Air"),
			},
			{Name: "lcaEmission", Kind: domain.FieldNumber, Label: "LCA Emission (kg CO2e)", Placeholder: "e.g., 2.5"},
		},
	},
	domain.SectionProducts: {
		Section: domain.SectionProducts,
		Title:   "Smart Product Recommendations",
		Action:  "Get Recommendations",
		Fields: []domain.FormField{
			{
				Name: "category", Kind: domain.FieldSelect, Label: "Category", Default: domain.FilterAll,
				Options: options("all", "All Categories", "clothing", "Clothing", "electronics", "Electronics",
					"home", "Home", "food", "Food", "sports", "Sports"),
			},
			{
				Name: "priceRange", Kind: domain.FieldSelect, Label: "Price Range", Default: domain.FilterAll,
				Options: options("all", "All Prices", "0-25", "$0 - $25", "25-50", "$25 - $50",
					"50-100", "$50 - $100", "100", "$100+"),
			},
			{
				Name: "sustainabilityLevel", Kind: domain.FieldSelect, Label: "Sustainability Level", Default: domain.FilterAll,
				Options: options("all", "All Levels", "high", "High (85+)", "medium", "Medium (70+)"),
			},
			{Name: "brand", Kind: domain.FieldText, Label: "Brand", Placeholder: "e.g., EcoWear"},
		},
	},
	domain.SectionDashboard: {
		Section: domain.SectionDashboard,
		Title:   "Sustainability Dashboard",
		Fields:  []domain.FormField{},
	},
}

// PanelForm returns the input contract of a section
func PanelForm(section domain.Section) (domain.PanelForm, error) {
	form, ok := panelForms[section]
	if !ok {
		return domain.PanelForm{}, fmt.Errorf("%w: %q", domain.ErrUnknownSection, section)
	}
	return form, nil
}

// SectionList returns the navigation entries in order
func SectionList() []domain.SectionInfo {
	list := make([]domain.SectionInfo, 0, len(domain.Sections))
	for _, s := range domain.Sections {
		list = append(list, domain.SectionInfo{ID: s, Label: s.Label()})
	}
	return list
}
