// internal/workers/inquiry/validate-inquiry/models.go
package validateinquiry

import (
	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/models"
)

type Input struct {
	Submission map[string]interface{} `json:"submission"`
}

type Output struct {
	IsValid          bool                `json:"isValid"`
	Submission       *models.Submission  `json:"submission,omitempty"`
	ValidationErrors []errors.FieldError `json:"validationErrors"`
}
