package scoring

import (
	"math"

	"inquiry-workers/internal/models"
)

// Decision thresholds on the rounded percentage. Boundaries belong to the higher tier.
const (
	AcceptedThreshold     = 75
	PotentialFitThreshold = 55
)

// Classify maps a percentage onto exactly one decision tier.
func Classify(percentage int) models.Decision {
	switch {
	case percentage >= AcceptedThreshold:
		return models.DecisionAccepted
	case percentage >= PotentialFitThreshold:
		return models.DecisionPotentialFit
	default:
		return models.DecisionNotAligned
	}
}

// Percentage rounds total/maxScore to the nearest whole percent.
func Percentage(total, maxScore int) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(maxScore) * 100))
}

// Aggregate sums a category breakdown, classifies it and attaches recommendations.
func Aggregate(breakdown map[models.Category]models.CategoryScore) models.ScoringResult {
	total := 0
	for _, category := range models.Categories {
		total += breakdown[category].Score
	}

	percentage := Percentage(total, models.MaxScore)

	copied := make(map[models.Category]models.CategoryScore, len(breakdown))
	for k, v := range breakdown {
		copied[k] = v
	}

	return models.ScoringResult{
		TotalScore:      total,
		MaxScore:        models.MaxScore,
		Percentage:      percentage,
		Decision:        Classify(percentage),
		Breakdown:       copied,
		Recommendations: Recommend(breakdown),
	}
}
