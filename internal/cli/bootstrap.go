package cli

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationEngine/internal/config"
	"github.com/m04kA/SMC-ReservationEngine/internal/engine"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/jsonfile"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationEngine/internal/infra/storage/postgres"
	"github.com/m04kA/SMC-ReservationEngine/internal/integrations/identity"
	"github.com/m04kA/SMC-ReservationEngine/internal/session"
	"github.com/m04kA/SMC-ReservationEngine/pkg/logger"
	"github.com/m04kA/SMC-ReservationEngine/pkg/metrics"
)

// app зависимости одной команды
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	engine  *engine.Engine
	metrics *metrics.Metrics

	closers []func() error
}

// newApp загружает конфигурацию и собирает движок
// Метрики создаются только при withMetrics и включённом [metrics]
func newApp(ctx context.Context, configPath string, withMetrics bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: log}
	a.closers = append(a.closers, log.Close)

	gateway, err := a.openGateway(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	identityClient := identity.NewClient(
		cfg.Identity.File,
		cfg.Identity.URL,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	callerID, err := identityClient.CallerID(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to resolve caller identity: %w", err)
	}

	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithMatchPolicy(cfg.Engine.Policy()),
		engine.WithHoldPeriod(cfg.Engine.HoldPeriod()),
	}
	if withMetrics && cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		opts = append(opts, engine.WithRecorder(a.metrics))
	}

	a.engine, err = engine.New(ctx, gateway, callerID, opts...)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to start engine: %w", err)
	}

	return a, nil
}

// openGateway открывает хранилище по storage.driver
func (a *app) openGateway(ctx context.Context) (session.Gateway, error) {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		a.log.Warn("Storage: memory driver, data is lost on exit")
		return memory.NewStore(nil, nil), nil

	case config.DriverPostgres:
		db, err := sql.Open("postgres", a.cfg.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.closers = append(a.closers, db.Close)

		db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		a.log.Info("Storage: connected to database (host=%s, port=%d, db=%s)",
			a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)

		store := postgres.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil

	default:
		store, err := jsonfile.NewStore(a.cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		a.log.Info("Storage: json files in %s", a.cfg.Storage.DataDir)
		return store, nil
	}
}

// Close освобождает ресурсы в обратном порядке
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}
