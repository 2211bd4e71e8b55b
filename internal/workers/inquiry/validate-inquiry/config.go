// internal/workers/inquiry/validate-inquiry/config.go
package validateinquiry

import (
	"time"

	"inquiry-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func NewConfig(wc config.WorkerConfig) *Config {
	timeout := wc.TimeoutDuration()
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Config{Timeout: timeout}
}
