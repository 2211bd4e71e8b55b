package scoring

import (
	"fmt"

	"inquiry-workers/internal/models"
)

func unreachable(kind string, value interface{}) {
	panic(fmt.Sprintf("scoring: unknown %s %q reached a scorer; submissions must pass ValidateSubmission first", kind, value))
}

// ScoreAutonomy rewards higher declared creative autonomy.
func ScoreAutonomy(autonomy models.Autonomy) models.CategoryScore {
	var score int
	var feedback string
	switch autonomy {
	case models.AutonomyFull:
		score, feedback = 25, "Full creative autonomy is the ideal working arrangement."
	case models.AutonomyHigh:
		score, feedback = 20, "High autonomy leaves plenty of room for creative direction."
	case models.AutonomyMedium:
		score, feedback = 12, "Medium autonomy limits how much creative direction we can bring."
	case models.AutonomyLow:
		score, feedback = 5, "Low autonomy is a poor match for how we work."
	default:
		unreachable("autonomy", autonomy)
	}
	return models.CategoryScore{Score: score, Max: models.MaxAutonomy, Feedback: feedback}
}

// ScoreStack grades the share of submitted technologies found in PreferredStack.
func ScoreStack(stack []string) models.CategoryScore {
	matched := CountMatches(stack, PreferredStack)
	total := len(stack)

	// Integer comparisons keep the 0.7 / 0.4 / 0.2 boundaries exact.
	var score int
	var feedback string
	switch {
	case total > 0 && matched*10 >= total*7:
		score, feedback = 20, "The stack aligns closely with our core tools."
	case total > 0 && matched*10 >= total*4:
		score, feedback = 15, "The stack partially overlaps with our core tools."
	case total > 0 && matched*10 >= total*2:
		score, feedback = 8, "The stack has limited overlap with our core tools."
	default:
		score, feedback = 3, "The stack falls outside our core tools."
	}
	return models.CategoryScore{
		Score:    score,
		Max:      models.MaxStack,
		Feedback: fmt.Sprintf("%s (%d of %d technologies matched)", feedback, matched, total),
	}
}

// ScoreTimeline favours engagements of one to three months.
func ScoreTimeline(timeline models.Timeline) models.CategoryScore {
	var score int
	var feedback string
	switch timeline {
	case models.Timeline1Month, models.Timeline2To3Months:
		score, feedback = 20, "The timeline sits in our sweet spot."
	case models.Timeline3To6Months:
		score, feedback = 15, "The timeline is workable, if longer than ideal."
	case models.Timeline1To2Weeks:
		score, feedback = 12, "The timeline is tight for a considered build."
	case models.Timeline6MonthsPlus:
		score, feedback = 10, "Long engagements are harder for us to commit to."
	default:
		unreachable("timeline", timeline)
	}
	return models.CategoryScore{Score: score, Max: models.MaxTimeline, Feedback: feedback}
}

// ScoreBudget grades the declared budget band.
func ScoreBudget(budget models.Budget) models.CategoryScore {
	var score int
	var feedback string
	switch budget {
	case models.Budget20kTo50k, models.Budget50kPlus:
		score, feedback = 15, "The budget supports the full scope of work."
	case models.Budget10kTo20k:
		score, feedback = 12, "The budget covers a focused version of the project."
	case models.Budget5kTo10k:
		score, feedback = 8, "The budget constrains what can be delivered."
	case models.BudgetUnder5k:
		score, feedback = 3, "The budget is below what this kind of project needs."
	default:
		unreachable("budget", budget)
	}
	return models.CategoryScore{Score: score, Max: models.MaxBudget, Feedback: feedback}
}

// ScoreExperimentation combines the experimentation allowance, sharing
// permission and meeting cadence. Only 10+3+2 reaches the maximum.
func ScoreExperimentation(allows bool, sharing models.SharingPermission, meetings models.MeetingFrequency) models.CategoryScore {
	base := 3
	if allows {
		base = 10
	}

	var sharingPoints int
	switch sharing {
	case models.SharingPublic:
		sharingPoints = 3
	case models.SharingAnonymized:
		sharingPoints = 2
	case models.SharingPrivate:
		sharingPoints = 0
	default:
		unreachable("sharing permission", sharing)
	}

	var bonus int
	switch meetings {
	case models.MeetingAsync, models.MeetingWeekly:
		bonus = 2
	case models.MeetingDaily, models.MeetingBiweekly, models.MeetingMonthly:
		bonus = 0
	default:
		unreachable("meeting frequency", meetings)
	}

	score := base + sharingPoints + bonus
	if score > models.MaxExperimentation {
		score = models.MaxExperimentation
	}

	feedback := "Room to experiment and share the work makes a project far more attractive."
	switch {
	case score == models.MaxExperimentation:
		feedback = "Experimentation with public sharing and a light meeting cadence is the ideal setup."
	case allows:
		feedback = "Experimentation is welcome, though sharing or meeting cadence could be more open."
	}
	return models.CategoryScore{Score: score, Max: models.MaxExperimentation, Feedback: feedback}
}

// ScoreCompliance gives full marks when no compliance is needed or when a
// declared standard is one we already know.
func ScoreCompliance(requires bool, standards []string) models.CategoryScore {
	if !requires {
		return models.CategoryScore{Score: 5, Max: models.MaxCompliance, Feedback: "No compliance requirements."}
	}
	if CountMatches(standards, KnownComplianceStandards) > 0 {
		return models.CategoryScore{Score: 5, Max: models.MaxCompliance, Feedback: "The compliance standards are familiar territory."}
	}
	return models.CategoryScore{Score: 2, Max: models.MaxCompliance, Feedback: "The compliance standards are outside our experience."}
}
