// internal/workers/inquiry/send-decision-letter/config.go
package sendletter

import (
	"time"

	"inquiry-workers/internal/common/config"
)

type Config struct {
	Timeout       time.Duration
	EmailEnabled  bool
	FromEmail     string
	ReplyTo       string
	EventsEnabled bool
	TopicARN      string
}

func NewConfig(wc config.WorkerConfig, ic config.IntegrationConfig) *Config {
	timeout := wc.TimeoutDuration()
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Config{
		Timeout:       timeout,
		EmailEnabled:  ic.AWS.SES.Enabled,
		FromEmail:     ic.AWS.SES.FromEmail,
		ReplyTo:       ic.AWS.SES.ReplyTo,
		EventsEnabled: ic.AWS.SNS.Enabled,
		TopicARN:      ic.AWS.SNS.TopicARN,
	}
}
