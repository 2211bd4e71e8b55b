// internal/workers/inquiry/generate-decision-letter/models.go
package generateletter

import "inquiry-workers/internal/models"

type Input struct {
	Submission    map[string]interface{} `json:"submission"`
	ScoringResult *models.ScoringResult   `json:"scoringResult,omitempty"`
}

type Output struct {
	Letter     string                `json:"letter"`
	LetterHTML string                `json:"letterHtml,omitempty"`
	Export     models.ExportArtifact `json:"export"`
	Decision   models.Decision       `json:"decision"`
}
