package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"taskapi/internal/adapter/database/postgres"
	pgrepo "taskapi/internal/adapter/database/postgres/repository"
	"taskapi/internal/adapter/database/sqlite"
	sqliterepo "taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/adapter/http/routes"
	"taskapi/pkg/config"
	"taskapi/pkg/telemetry"
)

func StartServer(ctx context.Context, cfg *config.Config, metrics *telemetry.AppMetrics, logger *config.AppLogger) error {
	container, cleanup, err := buildContainer(ctx, cfg, metrics)

	if err != nil {
		return err
	}

	defer cleanup()

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		TaskHandler: container.TaskHandler,
	}, container.Tokens, container.Cache, metrics, logger)

	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// buildContainer picks the postgres adapter when DATABASE_URL is set and
// falls back to the sqlite file otherwise.
func buildContainer(ctx context.Context, cfg *config.Config, metrics *telemetry.AppMetrics) (*Container, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg.DatabaseURL, "infra/migrations")

		if err != nil {
			return nil, nil, err
		}

		container := NewContainer(cfg, pgrepo.NewUserRepository(db), pgrepo.NewTaskRepository(db), metrics)

		return container, db.Close, nil
	}

	db, err := sqlite.NewDB(cfg.DatabasePath, "db/migrations")

	if err != nil {
		return nil, nil, err
	}

	container := NewContainer(cfg, sqliterepo.NewUserRepository(db), sqliterepo.NewTaskRepository(db), metrics)

	return container, func() { db.Close() }, nil
}
