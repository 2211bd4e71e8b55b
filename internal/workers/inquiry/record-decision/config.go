// internal/workers/inquiry/record-decision/config.go
package recorddecision

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
		timeout = 15 * time.Second
	}
	return &Config{Timeout: timeout}
}
