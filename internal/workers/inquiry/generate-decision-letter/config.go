// internal/workers/inquiry/generate-decision-letter/config.go
package generateletter

import (
	"time"

	"inquiry-workers/internal/common/config"
)

type Config struct {
	Timeout    time.Duration
	RenderHTML bool
}

func NewConfig(wc config.WorkerConfig, sc config.ScoringConfig) *Config {
	timeout := wc.TimeoutDuration()
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		Timeout:    timeout,
		RenderHTML: sc.LetterHTML,
	}
}
