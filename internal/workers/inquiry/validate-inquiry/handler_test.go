// internal/workers/inquiry/validate-inquiry/handler_test.go
package validateinquiry

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{Timeout: 5 * time.Second}
}

func createTestSubmission() map[string]interface{} {
	return map[string]interface{}{
		"companyName":           "Northwind Studio",
		"website":               "https://northwind.example.com",
		"contactName":           "Avery Quinn",
		"contactEmail":          "avery@northwind.example.com",
		"contactRole":           "Head of Product",
		"projectTitle":          "Interactive Product Tour",
		"projectDescription":    "A guided 3D product tour with scroll-driven animation for our launch campaign.",
		"stack":                 []interface{}{"React", "Three.js"},
		"timeline":              "1-month",
		"budget":                "20k-50k",
		"autonomy":              "high",
		"meetingFrequency":      "weekly",
		"allowsExperimentation": true,
		"sharingPermission":     "public",
		"requiresCompliance":    false,
	}
}

func createMockJob(key int64, variables map[string]interface{}) entities.Job {
	variablesJSON, _ := json.Marshal(variables)
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               TaskType,
		ProcessInstanceKey: key * 10,
		BpmnProcessId:      "inquiry-decision",
		ElementId:          "Activity_ValidateInquiry",
		CustomHeaders:      "{}",
		Worker:             "test-worker",
		Retries:            3,
		Variables:          string(variablesJSON),
	}}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(map[string]interface{})
		wantValid  bool
		wantFields []string
	}{
		{
			name:      "valid submission",
			mutate:    func(map[string]interface{}) {},
			wantValid: true,
		},
		{
			name: "short description",
			mutate: func(s map[string]interface{}) {
				s["projectDescription"] = "Too short."
			},
			wantFields: []string{"projectDescription"},
		},
		{
			name: "several violations",
			mutate: func(s map[string]interface{}) {
				s["contactEmail"] = "avery"
				s["budget"] = "priceless"
				s["stack"] = []interface{}{}
			},
			wantFields: []string{"contactEmail", "stack", "budget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))
			submission := createTestSubmission()
			tt.mutate(submission)

			output, err := handler.Execute(context.Background(), &Input{Submission: submission})
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, output.IsValid)

			if tt.wantValid {
				require.NotNil(t, output.Submission)
				assert.Equal(t, models.AutonomyHigh, output.Submission.Autonomy)
				assert.Empty(t, output.ValidationErrors)
				return
			}

			assert.Nil(t, output.Submission)
			var fields []string
			for _, fe := range output.ValidationErrors {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestHandler_OutputShape(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewNoOpLogger())
	output, err := handler.Execute(context.Background(), &Input{Submission: map[string]interface{}{}})
	require.NoError(t, err)

	data, err := json.Marshal(output)
	require.NoError(t, err)

	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &vars))
	assert.Equal(t, false, vars["isValid"])
	assert.NotContains(t, vars, "submission")
	assert.NotEmpty(t, vars["validationErrors"])
}

func TestHandler_DecodeInput(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	t.Run("valid variables", func(t *testing.T) {
		input, err := handler.decodeInput(createMockJob(1, map[string]interface{}{
			"submission": createTestSubmission(),
		}))
		require.NoError(t, err)
		assert.Equal(t, "Northwind Studio", input.Submission["companyName"])
	})

	t.Run("missing submission", func(t *testing.T) {
		_, err := handler.decodeInput(createMockJob(2, map[string]interface{}{"other": true}))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInputParsingFailed, errors.Normalize(err).Code)
		assert.Contains(t, err.(*errors.StandardError).Details, "submission")
	})

	t.Run("submission is not an object", func(t *testing.T) {
		_, err := handler.decodeInput(createMockJob(3, map[string]interface{}{"submission": "text"}))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInputParsingFailed, errors.Normalize(err).Code)
	})

	t.Run("malformed variables", func(t *testing.T) {
		job := createMockJob(4, nil)
		job.Variables = "{not json"
		_, err := handler.decodeInput(job)
		require.Error(t, err)
		assert.False(t, errors.Normalize(err).Retryable)
	})
}
