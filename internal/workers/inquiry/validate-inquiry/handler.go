// internal/workers/inquiry/validate-inquiry/handler.go
package validateinquiry

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/common/metrics"
	"inquiry-workers/internal/common/validation"
	"inquiry-workers/internal/scoring"
	"inquiry-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-inquiry"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	inputSchema  map[string]interface{}
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
	h.errorHandler = errors.NewErrorHandler(h.logger)
	if activity, ok := registry.MustDefault().Find(TaskType); ok {
		h.inputSchema = activity.InputSchema
	}
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.decodeInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) decodeInput(job entities.Job) (*Input, error) {
	var vars map[string]interface{}
	if err := json.Unmarshal([]byte(job.Variables), &vars); err != nil {
		return nil, errors.NewInputParsingFailedError(fmt.Sprintf("parse variables: %v", err))
	}

	result, err := validation.ValidateVariables(vars, h.inputSchema)
	if err != nil {
		return nil, errors.NewInputParsingFailedError(err.Error())
	}
	if !result.Valid {
		return nil, errors.NewInputParsingFailedError(strings.Join(result.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return nil, errors.NewInputParsingFailedError(fmt.Sprintf("parse input: %v", err))
	}
	return &input, nil
}

// execute never fails for a bad submission; violations are returned as data
// so the process can route back to the submitter.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	sub, err := scoring.ValidateSubmission(input.Submission)
	if err != nil {
		var invalid *errors.InvalidSubmissionError
		if !stderrors.As(err, &invalid) {
			return nil, err
		}
		h.logger.Info("submission rejected", map[string]interface{}{
			"violations": len(invalid.Errors),
			"fields":     invalid.Messages(),
		})
		return &Output{IsValid: false, ValidationErrors: invalid.Errors}, nil
	}

	return &Output{
		IsValid:          true,
		Submission:       sub,
		ValidationErrors: []errors.FieldError{},
	}, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":  job.Key,
		"isValid": output.IsValid,
	})
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
