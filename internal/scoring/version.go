package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"inquiry-workers/internal/models"
)

// RulesRevision must be bumped whenever a scorer's point table changes.
const RulesRevision = 1

type rulesFingerprint struct {
	Revision        int                      `json:"revision"`
	Accepted        int                      `json:"accepted"`
	PotentialFit    int                      `json:"potentialFit"`
	Maxima          map[models.Category]int  `json:"maxima"`
	Stack           []string                 `json:"stack"`
	Compliance      []string                 `json:"compliance"`
	Recommendations []recommendationSnapshot `json:"recommendations"`
}

type recommendationSnapshot struct {
	Category  models.Category `json:"category"`
	Threshold int             `json:"threshold"`
	Message   string          `json:"message"`
}

// RulesVersion identifies the scoring rules in effect: the revision, the
// decision thresholds, the category maxima and the reference vocabularies.
// Results computed under one version are not valid under another.
func RulesVersion() string {
	fp := rulesFingerprint{
		Revision:     RulesRevision,
		Accepted:     AcceptedThreshold,
		PotentialFit: PotentialFitThreshold,
		Maxima: map[models.Category]int{
			models.CategoryAutonomy:        models.MaxAutonomy,
			models.CategoryStack:           models.MaxStack,
			models.CategoryTimeline:        models.MaxTimeline,
			models.CategoryBudget:          models.MaxBudget,
			models.CategoryExperimentation: models.MaxExperimentation,
			models.CategoryCompliance:      models.MaxCompliance,
		},
		Stack:      PreferredStack,
		Compliance: KnownComplianceStandards,
	}
	for _, rule := range recommendationRules {
		fp.Recommendations = append(fp.Recommendations, recommendationSnapshot{
			Category:  rule.category,
			Threshold: rule.threshold,
			Message:   rule.message,
		})
	}

	// Marshalling plain strings, ints and string-keyed maps cannot fail.
	data, _ := json.Marshal(fp)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:6])
}
