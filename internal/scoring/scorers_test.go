package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inquiry-workers/internal/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		term, reference string
		want            bool
	}{
		{"NEXTJS", "nextjs", true},
		{"React Native", "react", true},
		{"node", "node.js", true},
		{"TypeScript", "typescript", true},
		{"Cobol", "react", false},
		{"", "react", false},
		{"react", "   ", false},
		{"ISO 13485:2016", "iso 13485", true},
		{"PCI-DSS", "fda", false},
	}

	for _, tt := range tests {
		t.Run(tt.term+" vs "+tt.reference, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.term, tt.reference))
			assert.Equal(t, tt.want, Matches(tt.reference, tt.term), "matching is bidirectional")
		})
	}
}

func TestScoreAutonomy(t *testing.T) {
	expected := map[models.Autonomy]int{
		models.AutonomyLow:    5,
		models.AutonomyMedium: 12,
		models.AutonomyHigh:   20,
		models.AutonomyFull:   25,
	}
	for autonomy, want := range expected {
		got := ScoreAutonomy(autonomy)
		assert.Equal(t, want, got.Score, autonomy)
		assert.Equal(t, models.MaxAutonomy, got.Max)
		assert.NotEmpty(t, got.Feedback)
	}
}

func TestScoreStack(t *testing.T) {
	tests := []struct {
		name  string
		stack []string
		want  int
	}{
		{"all preferred", []string{"React", "Next.js", "TypeScript"}, 20},
		{"exactly 70 percent", []string{"react", "nextjs", "typescript", "python", "tailwind", "graphql", "rust", "cobol", "fortran", "pascal"}, 20},
		{"just under 70 percent", []string{"react", "nextjs", "typescript", "python", "tailwind", "graphql", "cobol", "fortran", "pascal", "delphi"}, 15},
		{"half", []string{"React", "TypeScript", "Cobol", "Fortran"}, 15},
		{"exactly 40 percent", []string{"react", "rust", "cobol", "fortran", "pascal"}, 15},
		{"exactly 20 percent", []string{"react", "cobol", "fortran", "pascal", "delphi"}, 8},
		{"under 20 percent", []string{"react", "cobol", "fortran", "pascal", "delphi", "perl"}, 3},
		{"nothing preferred", []string{"Cobol", "Fortran"}, 3},
		{"empty", nil, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreStack(tt.stack)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, models.MaxStack, got.Max)
		})
	}
}

func TestScoreStack_CaseInsensitive(t *testing.T) {
	upper := ScoreStack([]string{"NEXTJS", "REACT", "typescript"})
	mixed := ScoreStack([]string{"nextjs", "react", "TypeScript"})
	assert.Equal(t, mixed, upper)
	assert.Equal(t, 20, upper.Score)
}

func TestScoreTimeline(t *testing.T) {
	expected := map[models.Timeline]int{
		models.Timeline1To2Weeks:   12,
		models.Timeline1Month:      20,
		models.Timeline2To3Months:  20,
		models.Timeline3To6Months:  15,
		models.Timeline6MonthsPlus: 10,
	}
	for timeline, want := range expected {
		assert.Equal(t, want, ScoreTimeline(timeline).Score, timeline)
	}
}

func TestScoreBudget(t *testing.T) {
	expected := map[models.Budget]int{
		models.BudgetUnder5k:  3,
		models.Budget5kTo10k:  8,
		models.Budget10kTo20k: 12,
		models.Budget20kTo50k: 15,
		models.Budget50kPlus:  15,
	}
	for budget, want := range expected {
		assert.Equal(t, want, ScoreBudget(budget).Score, budget)
	}
}

func TestScoreExperimentation(t *testing.T) {
	tests := []struct {
		name     string
		allows   bool
		sharing  models.SharingPermission
		meetings models.MeetingFrequency
		want     int
	}{
		{"ceiling", true, models.SharingPublic, models.MeetingAsync, 15},
		{"ceiling weekly", true, models.SharingPublic, models.MeetingWeekly, 15},
		{"anonymized async", true, models.SharingAnonymized, models.MeetingAsync, 14},
		{"public daily", true, models.SharingPublic, models.MeetingDaily, 13},
		{"private monthly", true, models.SharingPrivate, models.MeetingMonthly, 10},
		{"disallowed public async", false, models.SharingPublic, models.MeetingAsync, 8},
		{"disallowed private daily", false, models.SharingPrivate, models.MeetingDaily, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreExperimentation(tt.allows, tt.sharing, tt.meetings)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, models.MaxExperimentation, got.Max)
		})
	}
}

// Only experimentation + public sharing + async/weekly reaches the ceiling.
func TestScoreExperimentation_CeilingOnlyFromFullCombination(t *testing.T) {
	for _, allows := range []bool{true, false} {
		for _, sharing := range models.SharingPermissions {
			for _, meetings := range models.MeetingFrequencies {
				got := ScoreExperimentation(allows, sharing, meetings).Score
				assert.LessOrEqual(t, got, models.MaxExperimentation)

				full := allows && sharing == models.SharingPublic &&
					(meetings == models.MeetingAsync || meetings == models.MeetingWeekly)
				assert.Equal(t, full, got == models.MaxExperimentation, "%v/%s/%s", allows, sharing, meetings)
			}
		}
	}
}

func TestScoreCompliance(t *testing.T) {
	tests := []struct {
		name      string
		requires  bool
		standards []string
		want      int
	}{
		{"not required", false, nil, 5},
		{"not required ignores standards", false, []string{"PCI-DSS"}, 5},
		{"known standards", true, []string{"ISO 13485", "FDA"}, 5},
		{"one known among unknown", true, []string{"PCI-DSS", "gdpr"}, 5},
		{"unknown standards", true, []string{"PCI-DSS", "FEDRAMP"}, 2},
		{"required without standards", true, nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCompliance(tt.requires, tt.standards)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, models.MaxCompliance, got.Max)
		})
	}
}

func TestScorers_PanicOnUnvalidatedEnums(t *testing.T) {
	assert.Panics(t, func() { ScoreAutonomy("total") })
	assert.Panics(t, func() { ScoreTimeline("forever") })
	assert.Panics(t, func() { ScoreBudget("free") })
	assert.Panics(t, func() { ScoreExperimentation(true, "secret", models.MeetingAsync) })
	assert.Panics(t, func() { ScoreExperimentation(true, models.SharingPublic, "hourly") })
}
