package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidSubmissionError(t *testing.T) {
	err := &InvalidSubmissionError{Errors: []FieldError{
		{Field: "contactEmail", Code: "invalid_email", Message: "must be a valid email address"},
		{Field: "budget", Code: "invalid_enum", Message: "must be one of under-5k, 5k-10k"},
	}}

	assert.Equal(t, []string{
		"contactEmail: must be a valid email address",
		"budget: must be one of under-5k, 5k-10k",
	}, err.Messages())
	assert.Contains(t, err.Error(), "INVALID_SUBMISSION")
	assert.True(t, err.HasField("budget"))
	assert.False(t, err.HasField("stack"))

	wrapped := fmt.Errorf("evaluate: %w", err)
	assert.True(t, IsInvalidSubmission(wrapped))
	assert.False(t, IsInvalidSubmission(stderrors.New("boom")))

	stdErr := err.ToStandardError()
	assert.Equal(t, ErrCodeInvalidSubmission, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, []string{"contactEmail", "budget"}, stdErr.Metadata["fields"])
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{"standard error", NewAuditInsertFailedError(stderrors.New("insert")), ErrCodeAuditInsertFailed},
		{"wrapped standard error", fmt.Errorf("ctx: %w", NewScoreCacheFailedError(stderrors.New("down"))), ErrCodeScoreCacheFailed},
		{"invalid submission", &InvalidSubmissionError{Errors: []FieldError{{Field: "stack"}}}, ErrCodeInvalidSubmission},
		{"plain error", stderrors.New("unexpected"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, Normalize(tt.err).Code)
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name        string
		err         *StandardError
		wantCode    string
		wantRetries int
	}{
		{"invalid submission", (&InvalidSubmissionError{}).ToStandardError(), "INVALID_SUBMISSION", 0},
		{"input parsing", NewInputParsingFailedError("bad json"), "INPUT_PARSING_FAILED", 0},
		{"cache", NewScoreCacheFailedError(stderrors.New("down")), "SCORE_CACHE_FAILED", 2},
		{"letter render", NewLetterRenderFailedError(stderrors.New("render")), "LETTER_RENDER_FAILED", 0},
		{"database", NewDatabaseConnectionFailedError(stderrors.New("refused")), "DATABASE_CONNECTION_FAILED", 3},
		{"notification", NewNotificationSendFailedError("email", stderrors.New("throttled")), "NOTIFICATION_SEND_FAILED", 3},
		{"event", NewEventPublishFailedError(stderrors.New("throttled")), "EVENT_PUBLISH_FAILED", 3},
		{"timeout", NewTimeoutError("ses", stderrors.New("deadline")), "TIMEOUT_ERROR", 2},
		{"not found", NewResourceNotFoundError("registry", "missing"), "RESOURCE_NOT_FOUND", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmnErr := ConvertToBPMNError(tt.err)

			assert.Equal(t, tt.wantCode, bpmnErr.Code)
			assert.Equal(t, tt.wantRetries, bpmnErr.Retries)
			assert.Equal(t, string(tt.err.Code), bpmnErr.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestBPMNError_ToErrorVariables(t *testing.T) {
	stdErr := (&InvalidSubmissionError{Errors: []FieldError{{Field: "website", Message: "must be a valid URL"}}}).ToStandardError()
	vars := ConvertToBPMNError(stdErr).ToErrorVariables()

	require.Contains(t, vars, "errorCode")
	assert.Equal(t, "INVALID_SUBMISSION", vars["errorCode"])
	assert.Equal(t, "website: must be a valid URL", vars["errorDetails"])
	assert.Equal(t, false, vars["retryable"])
	assert.Equal(t, []string{"website"}, vars["fields"])
}

func TestGetErrorCategory(t *testing.T) {
	tests := map[ErrorCode]string{
		ErrCodeInvalidSubmission:        "VALIDATION",
		ErrCodeInputParsingFailed:       "VALIDATION",
		ErrCodeScoreCacheFailed:         "CACHE",
		ErrCodeDatabaseConnectionFailed: "DATABASE",
		ErrCodeAuditInsertFailed:        "DATABASE",
		ErrCodeNotificationSendFailed:   "NOTIFICATION",
		ErrCodeEventPublishFailed:       "NOTIFICATION",
		ErrCodeLetterRenderFailed:       "LETTER",
		ErrCodeInternal:                 "OTHER",
	}

	for code, want := range tests {
		assert.Equal(t, want, GetErrorCategory(code), string(code))
	}
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeAuditInsertFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeScoreCacheFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidSubmission))
	assert.False(t, IsRetryableErrorCode(ErrCodeInternal))
}
