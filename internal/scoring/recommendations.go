package scoring

import "inquiry-workers/internal/models"

type recommendationRule struct {
	category  models.Category
	threshold int
	message   string
}

// Rules are evaluated in priority order. Compliance never recommends.
var recommendationRules = []recommendationRule{
	{
		category:  models.CategoryAutonomy,
		threshold: 15,
		message:   "Consider allowing more creative autonomy; projects with high or full autonomy are the strongest fit.",
	},
	{
		category:  models.CategoryStack,
		threshold: 12,
		message:   "Consider a stack closer to our core tools such as React, Next.js, TypeScript and Node.js.",
	},
	{
		category:  models.CategoryExperimentation,
		threshold: 10,
		message:   "Allowing room for experimentation, and sharing the result publicly or anonymized, would strengthen the fit.",
	},
	{
		category:  models.CategoryTimeline,
		threshold: 12,
		message:   "A timeline of one to three months suits this kind of engagement best.",
	},
	{
		category:  models.CategoryBudget,
		threshold: 8,
		message:   "A budget of at least 5k would allow the project to be scoped properly.",
	},
}

// Recommend lists an improvement for every category scoring under its
// threshold. An ideal breakdown yields an empty, non-nil slice.
func Recommend(breakdown map[models.Category]models.CategoryScore) []string {
	out := []string{}
	for _, rule := range recommendationRules {
		score, ok := breakdown[rule.category]
		if ok && score.Score < rule.threshold {
			out = append(out, rule.message)
		}
	}
	return out
}
