// internal/workers/inquiry/send-decision-letter/handler.go
package sendletter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"inquiry-workers/internal/common/errors"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/common/metrics"
	"inquiry-workers/internal/common/validation"
	"inquiry-workers/internal/scoring"
	"inquiry-workers/pkg/registry"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-decision-letter"
)

// Define interfaces for mocking
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Handler struct {
	config       *Config
	sesClient    SESService
	snsClient    SNSService
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
	inputSchema  map[string]interface{}
	now          func() time.Time
	newID        func() string
}

// NewHandler builds the delivery worker. A nil client disables its channel.
func NewHandler(config *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	h := &Handler{
		config:    config,
		sesClient: sesClient,
		snsClient: snsClient,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
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
	emailEnabled := h.config.EmailEnabled && h.sesClient != nil
	eventsEnabled := h.config.EventsEnabled && h.snsClient != nil

	if !emailEnabled && !eventsEnabled {
		h.logger.Info("decision delivery disabled", map[string]interface{}{
			"decision": input.Decision,
		})
		return &Output{Status: StatusDisabled}, nil
	}

	output := &Output{Status: StatusSent}

	if emailEnabled {
		messageID, err := h.sendEmail(ctx, input)
		if err != nil {
			h.logger.Error("decision email failed", map[string]interface{}{
				"error":    err,
				"filename": input.Export.Filename,
			})
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		output.MessageID = messageID
	}

	if eventsEnabled {
		eventID, err := h.publishEvent(ctx, input)
		if err != nil {
			if !emailEnabled {
				return nil, errors.NewEventPublishFailedError(err)
			}
			// The email already went out; retrying would send it twice.
			h.logger.Warn("decision event publish failed after email was sent", map[string]interface{}{
				"error":     err,
				"messageId": output.MessageID,
			})
			output.Status = StatusPartial
		} else {
			output.EventID = eventID
		}
	}

	h.logger.Info("decision delivered", map[string]interface{}{
		"decision":  input.Decision,
		"status":    output.Status,
		"messageId": output.MessageID,
		"eventId":   output.EventID,
	})
	return output, nil
}

func (h *Handler) sendEmail(ctx context.Context, input *Input) (string, error) {
	body := input.Letter
	if body == "" {
		body = input.Export.Content
	}

	message := &sestypes.Message{
		Subject: &sestypes.Content{
			Data:    aws.String(fmt.Sprintf("Your inquiry: %s", input.Submission.ProjectTitle)),
			Charset: aws.String("UTF-8"),
		},
		Body: &sestypes.Body{
			Text: &sestypes.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
		},
	}
	if input.LetterHTML != "" {
		message.Body.Html = &sestypes.Content{Data: aws.String(input.LetterHTML), Charset: aws.String("UTF-8")}
	}

	params := &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{input.Submission.ContactEmail},
		},
		Message: message,
		Source:  aws.String(h.config.FromEmail),
	}
	if h.config.ReplyTo != "" {
		params.ReplyToAddresses = []string{h.config.ReplyTo}
	}

	out, err := h.sesClient.SendEmail(ctx, params)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (h *Handler) publishEvent(ctx context.Context, input *Input) (string, error) {
	event := DecisionEvent{
		EventID:     h.newID(),
		Type:        EventTypeDecision,
		Decision:    input.Decision,
		CompanySlug: scoring.Slug(input.Submission.CompanyName),
		Filename:    input.Export.Filename,
		OccurredAt:  h.now().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", err
	}

	_, err = h.snsClient.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(h.config.TopicARN),
		Message:  aws.String(string(payload)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"decision": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(input.Decision)),
			},
			"type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(EventTypeDecision),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return event.EventID, nil
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
		"jobKey": job.Key,
		"status": output.Status,
	})
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	bpmnErr := h.errorHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
