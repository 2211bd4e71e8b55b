package scoring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inquiry-workers/internal/models"
)

func TestScoreApplication_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		sub          *models.Submission
		wantTotal    int
		wantDecision models.Decision
		wantRecs     int
	}{
		{"ideal inquiry", idealSubmission(), 100, models.DecisionAccepted, 0},
		{"misaligned inquiry", misalignedSubmission(), 31, models.DecisionNotAligned, 4},
		{"partial inquiry", partialSubmission(), 55, models.DecisionPotentialFit, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreApplication(tt.sub)
			assert.Equal(t, tt.wantTotal, result.TotalScore)
			assert.Equal(t, tt.wantTotal, result.Percentage)
			assert.Equal(t, tt.wantDecision, result.Decision)
			assert.Len(t, result.Recommendations, tt.wantRecs)
		})
	}
}

func TestScoreApplication_ComplianceScenario(t *testing.T) {
	sub := idealSubmission()
	sub.RequiresCompliance = true

	sub.ComplianceStandards = []string{"ISO 13485", "FDA"}
	assert.Equal(t, 5, ScoreApplication(sub).Breakdown[models.CategoryCompliance].Score)

	sub.ComplianceStandards = []string{"PCI-DSS", "FEDRAMP"}
	result := ScoreApplication(sub)
	assert.Equal(t, 2, result.Breakdown[models.CategoryCompliance].Score)
	assert.Empty(t, result.Recommendations, "compliance never recommends")
}

func TestScoreApplication_Bounds(t *testing.T) {
	stacks := [][]string{{"React"}, {"Cobol"}, {"react", "cobol", "fortran"}}
	for _, autonomy := range models.Autonomies {
		for _, timeline := range models.Timelines {
			for _, budget := range models.Budgets {
				for _, sharing := range models.SharingPermissions {
					for _, stack := range stacks {
						sub := idealSubmission()
						sub.Autonomy = autonomy
						sub.Timeline = timeline
						sub.Budget = budget
						sub.SharingPermission = sharing
						sub.Stack = stack

						result := ScoreApplication(sub)
						assert.GreaterOrEqual(t, result.TotalScore, 0)
						assert.LessOrEqual(t, result.TotalScore, models.MaxScore)

						sum := 0
						for _, c := range models.Categories {
							score, ok := result.Breakdown[c]
							require.True(t, ok, c)
							assert.GreaterOrEqual(t, score.Score, 0)
							assert.LessOrEqual(t, score.Score, score.Max)
							sum += score.Score
						}
						assert.Equal(t, sum, result.TotalScore)
						assert.Equal(t, Classify(result.Percentage), result.Decision)
					}
				}
			}
		}
	}
}

func TestScoreApplication_AutonomyMonotonic(t *testing.T) {
	for _, base := range []*models.Submission{idealSubmission(), partialSubmission(), misalignedSubmission()} {
		previous := -1
		for _, autonomy := range models.Autonomies {
			sub := *base
			sub.Autonomy = autonomy
			total := ScoreApplication(&sub).TotalScore
			assert.GreaterOrEqual(t, total, previous, autonomy)
			previous = total
		}
	}
}

func TestScoreApplication_StackCaseInsensitive(t *testing.T) {
	a := partialSubmission()
	a.Stack = []string{"NEXTJS", "REACT", "typescript"}
	b := partialSubmission()
	b.Stack = []string{"nextjs", "react", "TypeScript"}
	assert.Equal(t, ScoreApplication(a), ScoreApplication(b))
}

func TestScoreApplication_Deterministic(t *testing.T) {
	sub := partialSubmission()
	first := ScoreApplication(sub)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ScoreApplication(sub))
	}
}

func TestScoreApplication_ConcurrentUse(t *testing.T) {
	sub := idealSubmission()
	want := ScoreApplication(sub)

	var wg sync.WaitGroup
	results := make([]models.ScoringResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ScoreApplication(sub)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEvaluate(t *testing.T) {
	eval, err := Evaluate(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "Tech & Corp Inc.", eval.Submission.CompanyName)
	assert.Equal(t, models.DecisionAccepted, eval.Result.Decision)
	assert.Equal(t, 100, eval.Result.Percentage)
	assert.Equal(t, GenerateLetter(eval.Submission, eval.Result), eval.Letter)
}

func TestEvaluate_RejectsUnknownEnum(t *testing.T) {
	raw := validRaw()
	raw["autonomy"] = "unlimited"

	eval, err := Evaluate(raw)
	assert.Nil(t, eval)
	assert.Error(t, err)
}
