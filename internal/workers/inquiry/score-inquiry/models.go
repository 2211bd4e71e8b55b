// internal/workers/inquiry/score-inquiry/models.go
package scoreinquiry

import "inquiry-workers/internal/models"

type Input struct {
	Submission map[string]interface{} `json:"submission"`
}

type Output struct {
	ScoringResult models.ScoringResult `json:"scoringResult"`
	Decision      models.Decision      `json:"decision"`
	Cached        bool                 `json:"cached"`
}

const cacheKeyPrefix = "inquiry:score:"
