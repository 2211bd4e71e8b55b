package scoring

import (
	"fmt"
	"strings"
	"time"

	"inquiry-workers/internal/models"
)

const (
	exportDateLayout = "2006-01-02"
	fallbackSlug     = "inquiry"
)

// Slug lower-cases name and collapses every run of characters outside
// [a-z0-9] into a single hyphen. Leading and trailing runs are dropped, and
// a name with no letters or digits yields "inquiry".
func Slug(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// ExportFilename builds decision-<slug>-<YYYY-MM-DD>.txt.
func ExportFilename(companyName string, at time.Time) string {
	return fmt.Sprintf("decision-%s-%s.txt", Slug(companyName), at.Format(exportDateLayout))
}

// ExportLetter packages the decision letter under today's file name.
func ExportLetter(sub *models.Submission, result models.ScoringResult) models.ExportArtifact {
	return ExportLetterAt(sub, result, time.Now())
}

// ExportLetterAt is ExportLetter with a fixed export date.
func ExportLetterAt(sub *models.Submission, result models.ScoringResult, at time.Time) models.ExportArtifact {
	return models.ExportArtifact{
		Filename: ExportFilename(sub.CompanyName, at),
		Content:  GenerateLetter(sub, result),
	}
}
