package observability

import (
	"context"
	"strings"
	"testing"
	"time"

	"inquiry-workers/internal/common/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_RecordsToRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := New(Options{ServiceName: "inquiry-workers-test", Registerer: reg}, logger.NewTestLogger(t))
	defer obs.Shutdown()

	ctx := context.Background()
	obs.RecordEvaluation(ctx, "accepted", false)
	obs.RecordJobProcessed(ctx, "score-inquiry", "completed")
	obs.RecordJobDuration(ctx, "score-inquiry", 120*time.Millisecond, "completed")

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	assert.Contains(t, joined, "inquiry_evaluations")
	assert.Contains(t, joined, "jobs_processed")
}

func TestObservability_StartSpanWithoutJaeger(t *testing.T) {
	obs := New(Options{ServiceName: "svc", Registerer: prometheus.NewRegistry()}, logger.NewNoOpLogger())
	defer obs.Shutdown()

	ctx, span := obs.StartSpan(context.Background(), "score")
	require.NotNil(t, ctx)
	span.End()
}

func TestObservability_NilSafe(t *testing.T) {
	var obs *Observability
	ctx := context.Background()

	assert.NotPanics(t, func() {
		obs.RecordEvaluation(ctx, "accepted", true)
		obs.RecordJobProcessed(ctx, "score-inquiry", "failed")
		obs.RecordJobDuration(ctx, "score-inquiry", time.Second, "failed")
		_, span := obs.StartSpan(ctx, "noop")
		span.End()
		obs.Shutdown()
	})
}
