package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "taskapi/internal/adapter/http"
	"taskapi/pkg/config"
	"taskapi/pkg/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := config.NewAppLogger("taskapi")

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	tel, err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		ServiceName:    "taskapi",
		ServiceVersion: "1.0.0",
		MetricsPort:    "9091",
		OTLPEndpoint:   "localhost:4317",
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(context.Background())

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)

	if err := api.StartServer(ctx, cfg, metrics, logger); err != nil {
		log.Fatal("Server failed:", err)
	}

	logger.Logger.Info("Shutting down gracefully...")
}
