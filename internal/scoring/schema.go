package scoring

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/validation"
	"inquiry-workers/internal/models"
)

// Field error codes reported by ValidateSubmission.
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeTooShort     = "too_short"
	CodeInvalidEmail = "invalid_email"
	CodeInvalidURL   = "invalid_url"
	CodeInvalidEnum  = "invalid_enum"
	CodeEmpty        = "empty"
	CodeInvalidJSON  = "invalid_json"
)

// Minimum lengths, counted in runes after trimming.
const (
	MinCompanyNameLength        = 2
	MinContactNameLength        = 2
	MinContactRoleLength        = 2
	MinProjectTitleLength       = 5
	MinProjectDescriptionLength = 50
)

type fieldChecker struct {
	raw    map[string]interface{}
	errors []errors.FieldError
}

func (c *fieldChecker) fail(field, code, format string, args ...interface{}) {
	c.errors = append(c.errors, errors.FieldError{
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *fieldChecker) str(field string) (string, bool) {
	value, exists := c.raw[field]
	if !exists || value == nil {
		c.fail(field, CodeRequired, "is required")
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		c.fail(field, CodeInvalidType, "must be a string")
		return "", false
	}
	return strings.TrimSpace(s), true
}

func (c *fieldChecker) text(field string, minLength int) string {
	s, ok := c.str(field)
	if !ok {
		return ""
	}
	if utf8.RuneCountInString(s) < minLength {
		c.fail(field, CodeTooShort, "must be at least %d characters", minLength)
	}
	return s
}

func (c *fieldChecker) email(field string) string {
	s, ok := c.str(field)
	if !ok {
		return ""
	}
	if !validation.ValidateEmail(s) {
		c.fail(field, CodeInvalidEmail, "must be a valid email address")
	}
	return s
}

// website may be absent or empty; anything else must be an http(s) URL.
func (c *fieldChecker) website(field string) string {
	value, exists := c.raw[field]
	if !exists || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		c.fail(field, CodeInvalidType, "must be a string")
		return ""
	}
	s = strings.TrimSpace(s)
	if s != "" && !validation.ValidateURL(s) {
		c.fail(field, CodeInvalidURL, "must be a valid URL or empty")
	}
	return s
}

func (c *fieldChecker) boolean(field string) bool {
	value, exists := c.raw[field]
	if !exists || value == nil {
		c.fail(field, CodeRequired, "is required")
		return false
	}
	b, ok := value.(bool)
	if !ok {
		c.fail(field, CodeInvalidType, "must be a boolean")
		return false
	}
	return b
}

// list accepts both decoded JSON arrays and native string slices.
func (c *fieldChecker) list(field string, required bool) []string {
	value, exists := c.raw[field]
	if !exists || value == nil {
		if required {
			c.fail(field, CodeRequired, "is required")
		}
		return nil
	}

	var items []string
	switch v := value.(type) {
	case []string:
		items = append(items, v...)
	case []interface{}:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				c.fail(field, CodeInvalidType, "must be a list of strings")
				return nil
			}
			items = append(items, s)
		}
	default:
		c.fail(field, CodeInvalidType, "must be a list of strings")
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" && required {
			c.fail(field, CodeEmpty, "must not contain blank entries")
			return nil
		}
		if item != "" {
			out = append(out, item)
		}
	}
	if required && len(out) == 0 {
		c.fail(field, CodeEmpty, "must list at least one entry")
		return nil
	}
	return out
}

func enum[T ~string](c *fieldChecker, field string, vocabulary []T) T {
	s, ok := c.str(field)
	if !ok {
		return ""
	}
	for _, v := range vocabulary {
		if string(v) == s {
			return v
		}
	}
	allowed := make([]string, len(vocabulary))
	for i, v := range vocabulary {
		allowed[i] = string(v)
	}
	c.fail(field, CodeInvalidEnum, "must be one of %s", strings.Join(allowed, ", "))
	return ""
}

// ValidateSubmission checks every field of a raw inquiry and reports all
// violations at once. On failure the error is an *errors.InvalidSubmissionError
// and no Submission is returned.
func ValidateSubmission(raw map[string]interface{}) (*models.Submission, error) {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	c := &fieldChecker{raw: raw}

	sub := &models.Submission{
		CompanyName:           c.text("companyName", MinCompanyNameLength),
		Website:               c.website("website"),
		ContactName:           c.text("contactName", MinContactNameLength),
		ContactEmail:          c.email("contactEmail"),
		ContactRole:           c.text("contactRole", MinContactRoleLength),
		ProjectTitle:          c.text("projectTitle", MinProjectTitleLength),
		ProjectDescription:    c.text("projectDescription", MinProjectDescriptionLength),
		Stack:                 c.list("stack", true),
		Timeline:              enum(c, "timeline", models.Timelines),
		Budget:                enum(c, "budget", models.Budgets),
		Autonomy:              enum(c, "autonomy", models.Autonomies),
		MeetingFrequency:      enum(c, "meetingFrequency", models.MeetingFrequencies),
		AllowsExperimentation: c.boolean("allowsExperimentation"),
		SharingPermission:     enum(c, "sharingPermission", models.SharingPermissions),
		RequiresCompliance:    c.boolean("requiresCompliance"),
		ComplianceStandards:   c.list("complianceStandards", false),
	}

	if len(c.errors) > 0 {
		return nil, &errors.InvalidSubmissionError{Errors: c.errors}
	}
	return sub, nil
}

// DecodeSubmission parses a JSON document and validates it.
func DecodeSubmission(data []byte) (*models.Submission, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &errors.InvalidSubmissionError{Errors: []errors.FieldError{{
			Field:   "submission",
			Code:    CodeInvalidJSON,
			Message: fmt.Sprintf("must be a JSON object: %v", err),
		}}}
	}
	return ValidateSubmission(raw)
}

// ToMap converts a Submission back into its raw form.
func ToMap(sub *models.Submission) (map[string]interface{}, error) {
	data, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
