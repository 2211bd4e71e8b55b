// internal/models/scoring.go
package models

type Category string

const (
	CategoryAutonomy        Category = "autonomy"
	CategoryStack           Category = "stack"
	CategoryTimeline        Category = "timeline"
	CategoryBudget          Category = "budget"
	CategoryExperimentation Category = "experimentation"
	CategoryCompliance      Category = "compliance"
)

// Categories lists every scored category in breakdown order.
var Categories = []Category{
	CategoryAutonomy,
	CategoryStack,
	CategoryTimeline,
	CategoryBudget,
	CategoryExperimentation,
	CategoryCompliance,
}

// Per-category maxima. They sum to MaxScore.
const (
	MaxAutonomy        = 25
	MaxStack           = 20
	MaxTimeline        = 20
	MaxBudget          = 15
	MaxExperimentation = 15
	MaxCompliance      = 5

	MaxScore = MaxAutonomy + MaxStack + MaxTimeline + MaxBudget + MaxExperimentation + MaxCompliance
)

type Decision string

const (
	DecisionAccepted     Decision = "accepted"
	DecisionPotentialFit Decision = "potential-fit"
	DecisionNotAligned   Decision = "not-aligned"
)

type CategoryScore struct {
	Score    int    `json:"score"`
	Max      int    `json:"max"`
	Feedback string `json:"feedback"`
}

type ScoringResult struct {
	TotalScore      int                        `json:"totalScore"`
	MaxScore        int                        `json:"maxScore"`
	Percentage      int                        `json:"percentage"`
	Decision        Decision                   `json:"decision"`
	Breakdown       map[Category]CategoryScore `json:"breakdown"`
	Recommendations []string                   `json:"recommendations"`
}

// ExportArtifact is a downloadable decision letter.
type ExportArtifact struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
