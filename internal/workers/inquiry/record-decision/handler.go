// internal/workers/inquiry/record-decision/handler.go
package recorddecision

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/common/metrics"
	"inquiry-workers/internal/common/validation"
	"inquiry-workers/internal/models"
	"inquiry-workers/internal/scoring"
	"inquiry-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "record-decision"
)

type Handler struct {
	config       *Config
	db           *sql.DB
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	inputSchema  map[string]interface{}
	now          func() time.Time
	newID        func() string
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		db:     db,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.New().String() },
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
	input.ProcessInstanceKey = job.ProcessInstanceKey

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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	switch input.ScoringResult.Decision {
	case models.DecisionAccepted, models.DecisionPotentialFit, models.DecisionNotAligned:
	default:
		return nil, errors.NewInputParsingFailedError(fmt.Sprintf("unknown decision %q", input.ScoringResult.Decision))
	}

	breakdown, err := json.Marshal(input.ScoringResult.Breakdown)
	if err != nil {
		return nil, errors.NewInputParsingFailedError(fmt.Sprintf("encode breakdown: %v", err))
	}

	var processKey sql.NullInt64
	if input.ProcessInstanceKey != 0 {
		processKey = sql.NullInt64{Int64: input.ProcessInstanceKey, Valid: true}
	}

	auditID := h.newID()
	recordedAt := h.now()

	_, err = h.db.ExecContext(ctx, insertAuditQuery,
		auditID,
		scoring.Slug(input.CompanyName),
		string(input.ScoringResult.Decision),
		input.ScoringResult.TotalScore,
		input.ScoringResult.Percentage,
		breakdown,
		processKey,
		recordedAt,
	)
	if err != nil {
		if isConnectionError(err) {
			return nil, errors.NewDatabaseConnectionFailedError(err)
		}
		return nil, errors.NewAuditInsertFailedError(err)
	}

	h.logger.Info("decision recorded", map[string]interface{}{
		"auditId":  auditID,
		"decision": input.ScoringResult.Decision,
	})

	return &Output{
		AuditID:    auditID,
		RecordedAt: recordedAt.Format(time.RFC3339),
	}, nil
}

func isConnectionError(err error) bool {
	if stderrors.Is(err, driver.ErrBadConn) || stderrors.Is(err, sql.ErrConnDone) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "broken pipe")
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
		"auditId": output.AuditID,
	})
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
