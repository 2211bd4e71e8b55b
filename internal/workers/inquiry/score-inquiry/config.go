// internal/workers/inquiry/score-inquiry/config.go
package scoreinquiry

import (
	"time"

	"inquiry-workers/internal/common/config"
)

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func NewConfig(wc config.WorkerConfig, sc config.ScoringConfig) *Config {
	timeout := wc.TimeoutDuration()
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Config{
		Timeout:  timeout,
		CacheTTL: time.Duration(sc.CacheTTL) * time.Second,
	}
}
