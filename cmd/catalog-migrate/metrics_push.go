package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"magazine-catalog/internal/config"
)

// pushTimeout bounds the final push so an unreachable gateway cannot hold the process open.
const pushTimeout = 10 * time.Second

// pushMetrics sends everything in the default registry to the Prometheus Pushgateway.
// catalog-migrate exits as soon as it is done, so a scrape endpoint would never be read;
// the gateway keeps the last pushed values for Prometheus to collect.
//
// The push replaces the previous group for the job (HTTP PUT). It runs even when the
// command failed, so error counters reach the gateway too. Push errors are logged and
// never change the exit status.
func pushMetrics(ctx context.Context, logger *slog.Logger, cfg config.MetricsConfig) {
	if cfg.PushgatewayURL == "" {
		return
	}

	// Still push after SIGINT cancelled the run.
	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
	defer cancel()

	err := push.New(cfg.PushgatewayURL, cfg.Job).
		Gatherer(prometheus.DefaultGatherer).
		PushContext(pushCtx)
	if err != nil {
		logger.Warn("failed to push metrics",
			slog.String("pushgateway_url", cfg.PushgatewayURL),
			slog.Any("error", err))
		return
	}
	logger.Info("metrics pushed",
		slog.String("pushgateway_url", cfg.PushgatewayURL),
		slog.String("job", cfg.Job))
}
