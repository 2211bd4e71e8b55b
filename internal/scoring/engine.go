// Package scoring evaluates project inquiries: it validates a raw submission,
// scores it across six weighted categories, classifies the result and renders
// the decision letter. Every function is pure and safe for concurrent use.
package scoring

import "inquiry-workers/internal/models"

// Evaluation is the full outcome for one valid submission.
type Evaluation struct {
	Submission *models.Submission   `json:"submission"`
	Result     models.ScoringResult `json:"scoringResult"`
	Letter     string               `json:"letter"`
}

// Breakdown runs the six category scorers.
func Breakdown(sub *models.Submission) map[models.Category]models.CategoryScore {
	return map[models.Category]models.CategoryScore{
		models.CategoryAutonomy:        ScoreAutonomy(sub.Autonomy),
		models.CategoryStack:           ScoreStack(sub.Stack),
		models.CategoryTimeline:        ScoreTimeline(sub.Timeline),
		models.CategoryBudget:          ScoreBudget(sub.Budget),
		models.CategoryExperimentation: ScoreExperimentation(sub.AllowsExperimentation, sub.SharingPermission, sub.MeetingFrequency),
		models.CategoryCompliance:      ScoreCompliance(sub.RequiresCompliance, sub.ComplianceStandards),
	}
}

// ScoreApplication scores a validated submission.
func ScoreApplication(sub *models.Submission) models.ScoringResult {
	return Aggregate(Breakdown(sub))
}

// Evaluate validates raw, then scores it and renders the letter.
func Evaluate(raw map[string]interface{}) (*Evaluation, error) {
	sub, err := ValidateSubmission(raw)
	if err != nil {
		return nil, err
	}
	result := ScoreApplication(sub)
	return &Evaluation{
		Submission: sub,
		Result:     result,
		Letter:     GenerateLetter(sub, result),
	}, nil
}
