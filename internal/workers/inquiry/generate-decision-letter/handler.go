// internal/workers/inquiry/generate-decision-letter/handler.go
package generateletter

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	TaskType = "generate-decision-letter"
)

type Handler struct {
	config       *Config
	markdown     goldmark.Markdown
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	inputSchema  map[string]interface{}
	now          func() time.Time
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	h := &Handler{
		config:   config,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:      time.Now,
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
	sub, err := scoring.ValidateSubmission(input.Submission)
	if err != nil {
		return nil, err
	}

	result := h.resolveResult(sub, input.ScoringResult)
	export := scoring.ExportLetterAt(sub, result, h.now())

	output := &Output{
		Letter:   export.Content,
		Export:   export,
		Decision: result.Decision,
	}

	if h.config.RenderHTML {
		letterHTML, err := h.renderHTML(sub, result)
		if err != nil {
			return nil, errors.NewLetterRenderFailedError(err)
		}
		output.LetterHTML = letterHTML
	}

	h.logger.Info("decision letter generated", map[string]interface{}{
		"decision": result.Decision,
		"filename": export.Filename,
	})
	return output, nil
}

// resolveResult reuses an upstream score when it carries a known decision
// and rescores the submission otherwise.
func (h *Handler) resolveResult(sub *models.Submission, provided *models.ScoringResult) models.ScoringResult {
	if provided != nil {
		switch provided.Decision {
		case models.DecisionAccepted, models.DecisionPotentialFit, models.DecisionNotAligned:
			return *provided
		}
		h.logger.Warn("ignoring scoring result with unknown decision", map[string]interface{}{
			"decision": provided.Decision,
		})
	}
	return scoring.ScoreApplication(sub)
}

// renderHTML renders the letter as Markdown. Submitter-provided fields are
// escaped first so they always come out as literal text.
func (h *Handler) renderHTML(sub *models.Submission, result models.ScoringResult) (string, error) {
	literal := *sub
	literal.ContactName = escapeMarkdown(sub.ContactName)
	literal.ProjectTitle = escapeMarkdown(sub.ProjectTitle)
	literal.CompanyName = escapeMarkdown(sub.CompanyName)

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(scoring.GenerateLetter(&literal, result)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CommonMark renders a backslash-escaped ASCII punctuation character as
// the character itself.
const markdownPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// escapeMarkdown makes s render as a single line of literal text.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteByte(' ')
		case strings.ContainsRune(markdownPunctuation, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
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
	})
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
