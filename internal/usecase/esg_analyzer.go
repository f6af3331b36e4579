package usecase

import (
	"math"
	"strings"

	"github.com/greenlens/backend/internal/domain"
)

// Keyword weights for the text adjustment
const (
	positiveKeywordBonus   = 5
	negativeKeywordPenalty = 8
	defaultBaseScore       = 50.0
)

var sustainabilityKeywords = []string{"eco", "green", "sustainable", "renewable", "organic", "recycled"}

var negativeKeywords = []string{"toxic", "polluting", "waste", "harmful", "chemical"}

var esgRecommendations = map[domain.ESGCategory][]string{
	domain.ESGExcellent: {
		"Maintain current sustainable practices",
		"Consider becoming a sustainability leader in your industry",
		"Share best practices with stakeholders",
	},
	domain.ESGGood: {
		"Implement additional renewable energy sources",
		"Improve waste reduction strategies",
		"Enhance supply chain transparency",
	},
	domain.ESGFair: {
		"Develop comprehensive sustainability strategy",
		"Invest in cleaner technologies",
		"Establish environmental management systems",
	},
	domain.ESGPoor: {
		"Urgent need for environmental impact assessment",
		"Implement immediate waste reduction measures",
		"Consider switching to sustainable materials",
	},
}

// sentimentMultiplier scales the base score; unrecognised sentiment is neutral
func sentimentMultiplier(s domain.Sentiment) float64 {
	switch s {
	case domain.SentimentPositive:
		return 1.2
	case domain.SentimentNegative:
		return 0.8
	default:
		return 1.0
	}
}

// matchKeywords returns the keywords contained in text, each at most once
func matchKeywords(text string, keywords []string) []string {
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// baseScore returns the environmental score, falling back to 50 when it is
// empty, unparsable or zero
func baseScore(n domain.FormNumber) float64 {
	if !n.Set || n.Value == 0 {
		return defaultBaseScore
	}
	return n.Value
}

// ScoreESG computes the clamped ESG score and the keywords that moved it
func ScoreESG(req *domain.ESGRequest) (score int, positive, negative []string) {
	text := strings.ToLower(req.ProductName + " " + req.Description)
	positive = matchKeywords(text, sustainabilityKeywords)
	negative = matchKeywords(text, negativeKeywords)

	textScore := len(positive)*positiveKeywordBonus - len(negative)*negativeKeywordPenalty
	raw := baseScore(req.EnvironmentalScore)*sentimentMultiplier(req.Sentiment) + float64(textScore)

	return roundHalfUp(clamp(raw, 0, 100)), positive, negative
}

// CategorizeESG maps a score onto its band
func CategorizeESG(score int) domain.ESGCategory {
	switch {
	case score >= 80:
		return domain.ESGExcellent
	case score >= 60:
		return domain.ESGGood
	case score >= 40:
		return domain.ESGFair
	default:
		return domain.ESGPoor
	}
}

// AnalyzeESG builds the full ESG result record for the form
func AnalyzeESG(req *domain.ESGRequest) *domain.ESGResult {
	score, positive, negative := ScoreESG(req)
	category := CategorizeESG(score)

	recommendations := make([]string, len(esgRecommendations[category]))
	copy(recommendations, esgRecommendations[category])

	return &domain.ESGResult{
		ESGScore:        score,
		Category:        category,
		Recommendations: recommendations,
		Breakdown: domain.ESGBreakdown{
			Environmental: min(100, score+5),
			Social:        max(0, score-10),
			Governance:    score,
		},
		PositiveKeywords: positive,
		NegativeKeywords: negative,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
