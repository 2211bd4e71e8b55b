// internal/workers/inquiry/record-decision/models.go
package recorddecision

import "inquiry-workers/internal/models"

type Input struct {
	CompanyName        string               `json:"companyName"`
	ScoringResult      models.ScoringResult `json:"scoringResult"`
	ProcessInstanceKey int64                `json:"-"`
}

type Output struct {
	AuditID    string `json:"auditId"`
	RecordedAt string `json:"recordedAt"`
}

const insertAuditQuery = `
	INSERT INTO decision_audit (
		id, company_slug, decision, total_score, percentage, breakdown, process_key, recorded_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
