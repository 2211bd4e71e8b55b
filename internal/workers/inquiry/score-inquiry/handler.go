// internal/workers/inquiry/score-inquiry/handler.go
package scoreinquiry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/common/metrics"
	"inquiry-workers/internal/common/observability"
	"inquiry-workers/internal/common/validation"
	"inquiry-workers/internal/models"
	"inquiry-workers/internal/scoring"
	"inquiry-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
)

const (
	TaskType = "score-inquiry"
)

type Handler struct {
	config       *Config
	redis        *redis.Client
	obs          *observability.Observability
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	inputSchema  map[string]interface{}
}

// NewHandler builds the scoring worker. A nil redis client disables caching.
func NewHandler(config *Config, redis *redis.Client, obs *observability.Observability, log logger.Logger) *Handler {
	h := &Handler{
		config: config,
		redis:  redis,
		obs:    obs,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	ctx, span := h.obs.StartSpan(ctx, "inquiry.score")
	defer span.End()

	sub, err := scoring.ValidateSubmission(input.Submission)
	if err != nil {
		return nil, err
	}

	key, err := CacheKey(sub)
	if err != nil {
		return nil, errors.NewScoreCacheFailedError(err)
	}

	if result, ok := h.lookup(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		metrics.ObserveDecision(string(result.Decision), result.Percentage)
		h.obs.RecordEvaluation(ctx, string(result.Decision), true)
		return &Output{ScoringResult: *result, Decision: result.Decision, Cached: true}, nil
	}

	result := scoring.ScoreApplication(sub)
	h.store(ctx, key, result)

	span.SetAttributes(
		attribute.Bool("cache.hit", false),
		attribute.String("inquiry.decision", string(result.Decision)),
		attribute.Int("inquiry.percentage", result.Percentage),
	)
	metrics.ObserveDecision(string(result.Decision), result.Percentage)
	h.obs.RecordEvaluation(ctx, string(result.Decision), false)

	h.logger.Info("inquiry scored", map[string]interface{}{
		"decision":   result.Decision,
		"percentage": result.Percentage,
		"totalScore": result.TotalScore,
	})

	return &Output{ScoringResult: result, Decision: result.Decision}, nil
}

// CacheKey hashes the canonical JSON form of a validated submission under
// the current rules version, so a rules change never serves stale scores.
func CacheKey(sub *models.Submission) (string, error) {
	data, err := json.Marshal(sub)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return cacheKeyPrefix + scoring.RulesVersion() + ":" + hex.EncodeToString(sum[:]), nil
}

// lookup degrades to a miss on any cache problem.
func (h *Handler) lookup(ctx context.Context, key string) (*models.ScoringResult, bool) {
	if h.redis == nil {
		return nil, false
	}

	val, err := h.redis.Get(ctx, key).Result()
	if stderrors.Is(err, redis.Nil) {
		metrics.ScoreCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.ScoreCacheLookups.WithLabelValues("error").Inc()
		h.logger.Warn("score cache lookup failed", map[string]interface{}{"error": err})
		return nil, false
	}

	var result models.ScoringResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		metrics.ScoreCacheLookups.WithLabelValues("error").Inc()
		h.logger.Warn("discarding unreadable cached score", map[string]interface{}{"error": err})
		return nil, false
	}

	metrics.ScoreCacheLookups.WithLabelValues("hit").Inc()
	return &result, true
}

func (h *Handler) store(ctx context.Context, key string, result models.ScoringResult) {
	if h.redis == nil || h.config.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Warn("failed to encode score for cache", map[string]interface{}{"error": err})
		return
	}
	if err := h.redis.Set(ctx, key, string(data), h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("score cache write failed", map[string]interface{}{"error": err})
	}
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
		"jobKey":   job.Key,
		"decision": output.Decision,
		"cached":   output.Cached,
	})
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
