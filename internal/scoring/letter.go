package scoring

import (
	"fmt"
	"strings"

	"inquiry-workers/internal/models"
)

// Signature closes every decision letter.
const Signature = "The Studio Team"

type highlight struct {
	category models.Category
	minScore int
	text     string
}

// Strong categories called out in acceptance letters, in letter order.
var acceptedHighlights = []highlight{
	{models.CategoryAutonomy, 20, "The creative freedom you are offering is exactly how we do our best work."},
	{models.CategoryStack, 15, "Your technology stack lines up with the tools we know best."},
	{models.CategoryExperimentation, 10, "Your openness to experimentation gives us room to push the work further."},
	{models.CategoryTimeline, 15, "Your timeline gives the project the time it deserves."},
}

type letterTemplate func(sub *models.Submission, result models.ScoringResult) string

var letterTemplates = map[models.Decision]letterTemplate{
	models.DecisionAccepted:     acceptedLetter,
	models.DecisionPotentialFit: potentialFitLetter,
	models.DecisionNotAligned:   notAlignedLetter,
}

// GenerateLetter renders the decision letter for a scored submission.
// The output depends only on its inputs.
func GenerateLetter(sub *models.Submission, result models.ScoringResult) string {
	tmpl, ok := letterTemplates[result.Decision]
	if !ok {
		unreachable("decision", result.Decision)
	}
	return tmpl(sub, result)
}

func acceptedLetter(sub *models.Submission, result models.ScoringResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", sub.ContactName)
	fmt.Fprintf(&b, "Thank you for telling us about \"%s\". We are delighted to accept your inquiry: it scored %d%% against our project criteria.\n",
		sub.ProjectTitle, result.Percentage)

	var lines []string
	for _, h := range acceptedHighlights {
		if score, ok := result.Breakdown[h.category]; ok && score.Score >= h.minScore {
			lines = append(lines, h.text)
		}
	}
	if len(lines) > 0 {
		b.WriteString("\nWhat stood out:\n")
		writeBullets(&b, lines)
	}

	b.WriteString("\nWe will be in touch shortly to schedule a kickoff conversation.\n")
	writeClosing(&b)
	return b.String()
}

func potentialFitLetter(sub *models.Submission, result models.ScoringResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", sub.ContactName)
	fmt.Fprintf(&b, "Thank you for telling us about \"%s\". Your inquiry scored %d%%, which makes it a potential fit for us.\n",
		sub.ProjectTitle, result.Percentage)

	if len(result.Recommendations) > 0 {
		b.WriteString("\nA few adjustments would make this a stronger match:\n")
		writeBullets(&b, result.Recommendations)
	}

	b.WriteString("\nIf any of these are open for discussion, reply to this letter and we can talk it through.\n")
	writeClosing(&b)
	return b.String()
}

func notAlignedLetter(sub *models.Submission, result models.ScoringResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", sub.ContactName)
	fmt.Fprintf(&b, "Thank you for telling us about \"%s\". After reviewing your inquiry it scored %d%%, and we do not think we are the right partner for it at this time.\n",
		sub.ProjectTitle, result.Percentage)

	if len(result.Recommendations) > 0 {
		b.WriteString("\nShould the project change, these are the areas that mattered most:\n")
		writeBullets(&b, result.Recommendations)
	}

	b.WriteString("\nWe wish you the best with the project and would be glad to hear from you again.\n")
	writeClosing(&b)
	return b.String()
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
}

func writeClosing(b *strings.Builder) {
	fmt.Fprintf(b, "\nBest regards,\n%s\n", Signature)
}
