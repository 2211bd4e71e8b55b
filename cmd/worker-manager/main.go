// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	awsx "inquiry-workers/internal/common/aws"
	"inquiry-workers/internal/common/camunda"
	"inquiry-workers/internal/common/config"
	"inquiry-workers/internal/common/database"
	"inquiry-workers/internal/common/logger"
	"inquiry-workers/internal/common/observability"
	"inquiry-workers/pkg/registry"

	gdl "inquiry-workers/internal/workers/inquiry/generate-decision-letter"
	rd "inquiry-workers/internal/workers/inquiry/record-decision"
	si "inquiry-workers/internal/workers/inquiry/score-inquiry"
	sdl "inquiry-workers/internal/workers/inquiry/send-decision-letter"
	vi "inquiry-workers/internal/workers/inquiry/validate-inquiry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err,
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// dependencies are the shared clients handed to worker constructors.
type dependencies struct {
	cfg   *config.Config
	pg    *database.PostgresClient
	redis *redis.Client
	ses   sdl.SESService
	sns   sdl.SNSService
	obs   *observability.Observability
	log   logger.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
	})

	log.Info("starting worker manager", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	obs := observability.New(observability.Options{
		ServiceName:    cfg.App.Name,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
	}, log)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Zeebe ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClient(ctx, cfg.Camunda)
		return err
	}, 10, 2*time.Second, log, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	log.Info("zeebe client connected", map[string]interface{}{"gateway": cfg.Camunda.BrokerAddress})

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, log, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	if err := pg.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("postgres schema setup failed", zap.Error(err))
	}
	log.Info("postgres connected", nil)

	// --- Redis (optional: scoring runs uncached without it) ---
	rc := database.NewRedis(cfg.Database.Redis)
	defer rc.Close()
	var scoreCache *redis.Client
	if err := rc.Ping(ctx); err != nil {
		log.Warn("redis unavailable, score cache disabled", map[string]interface{}{"error": err})
	} else {
		scoreCache = rc.Client
		log.Info("redis connected", nil)
	}

	deps := &dependencies{cfg: cfg, pg: pg, redis: scoreCache, obs: obs, log: log}

	// --- AWS ---
	if cfg.Integrations.AWS.SES.Enabled || cfg.Integrations.AWS.SNS.Enabled {
		awsCfg, err := awsx.LoadConfig(ctx, cfg.Integrations.AWS.Region)
		if err != nil {
			zapLog.Fatal("aws config failed", zap.Error(err))
		}
		if cfg.Integrations.AWS.SES.Enabled {
			deps.ses = awsx.NewSESClient(awsCfg)
		}
		if cfg.Integrations.AWS.SNS.Enabled {
			deps.sns = awsx.NewSNSClient(awsCfg)
		}
	}

	// --- Workers ---
	var workers []*camunda.CamundaWorker
	for _, taskType := range registry.MustDefault().TaskTypes() {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		handler, err := deps.handlerFor(taskType)
		if err != nil {
			log.Warn("no handler for registered activity", map[string]interface{}{
				"taskType": taskType,
				"error":    err,
			})
			continue
		}
		workers = append(workers, camunda.NewWorker(
			zeebe.GetClient(), taskType, config.GetWorkerConfig(cfg, taskType), handler, obs, log,
		))
	}
	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	// --- Health & Metrics Server ---
	server := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           newMux(zeebe, pg, rc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("health/metrics server listening", map[string]interface{}{"address": server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("health/metrics server failed", map[string]interface{}{"error": err})
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	log.Info("shutdown signal received, stopping workers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("error stopping health server", map[string]interface{}{"error": err})
	}
	if err := zeebe.Close(); err != nil {
		log.Error("error closing zeebe client", map[string]interface{}{"error": err})
	}

	log.Info("worker manager stopped gracefully", nil)
}

func (d *dependencies) handlerFor(taskType string) (camunda.JobHandler, error) {
	wc := config.GetWorkerConfig(d.cfg, taskType)

	switch taskType {
	case vi.TaskType:
		return vi.NewHandler(vi.NewConfig(wc), d.log), nil
	case si.TaskType:
		return si.NewHandler(si.NewConfig(wc, d.cfg.Scoring), d.redis, d.obs, d.log), nil
	case gdl.TaskType:
		return gdl.NewHandler(gdl.NewConfig(wc, d.cfg.Scoring), d.log), nil
	case rd.TaskType:
		return rd.NewHandler(rd.NewConfig(wc), d.pg.DB, d.log), nil
	case sdl.TaskType:
		return sdl.NewHandler(sdl.NewConfig(wc, d.cfg.Integrations), d.ses, d.sns, d.log), nil
	default:
		return nil, fmt.Errorf("unknown task type %q", taskType)
	}
}

func newMux(zeebe *camunda.Client, pg *database.PostgresClient, rc *database.RedisClient) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]string{
			"zeebe":    checkStatus(zeebe.HealthCheck(ctx)),
			"postgres": checkStatus(pg.Ping(ctx)),
			"redis":    checkStatus(rc.Ping(ctx)),
		}

		// Redis only backs the score cache.
		status, code := "ready", http.StatusOK
		if checks["zeebe"] != "ok" || checks["postgres"] != "ok" {
			status, code = "not_ready", http.StatusServiceUnavailable
		}

		writeStatus(w, code, map[string]interface{}{
			"status": status,
			"checks": checks,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func checkStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}

func writeStatus(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
