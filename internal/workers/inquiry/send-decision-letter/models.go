// internal/workers/inquiry/send-decision-letter/models.go
package sendletter

import "inquiry-workers/internal/models"

type Recipient struct {
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ProjectTitle string `json:"projectTitle"`
}

type Input struct {
	Submission Recipient             `json:"submission"`
	Letter     string                `json:"letter"`
	LetterHTML string                `json:"letterHtml"`
	Export     models.ExportArtifact `json:"export"`
	Decision   models.Decision       `json:"decision"`
}

type Output struct {
	MessageID string `json:"messageId,omitempty"`
	EventID   string `json:"eventId,omitempty"`
	Status    string `json:"status"`
}

// DecisionEvent is published to the team topic. It carries no contact details.
type DecisionEvent struct {
	EventID     string          `json:"eventId"`
	Type        string          `json:"type"`
	Decision    models.Decision `json:"decision"`
	CompanySlug string          `json:"companySlug"`
	Filename    string          `json:"filename"`
	OccurredAt  string          `json:"occurredAt"`
}

const (
	StatusSent     = "sent"
	StatusPartial  = "partial"
	StatusDisabled = "disabled"

	EventTypeDecision = "inquiry.decision"
)
