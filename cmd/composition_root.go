package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpadapter "github.com/LONJEZ/Delivery-app/internal/adapters/in/http"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/memory"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/postgres"
	"github.com/LONJEZ/Delivery-app/internal/adapters/out/rediscache"
	"github.com/LONJEZ/Delivery-app/internal/core/application/registry"
	"github.com/LONJEZ/Delivery-app/internal/core/application/usecases/commands"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"
	"github.com/LONJEZ/Delivery-app/internal/jobs"
	"github.com/LONJEZ/Delivery-app/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the adapters and builds everything the process runs.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	registry *registry.Registry
	closers  []func() error
}

func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{config: config, logger: logger}

	uowFactory, err := c.unitOfWorkFactory(ctx)
	if err != nil {
		return nil, err
	}

	cache, err := c.trackingCache(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.registry = registry.New(uowFactory, cache, config.DispatchThreshold, logger)
	return c, nil
}

func (c *CompositionRoot) Registry() *registry.Registry {
	return c.registry
}

// NewRouter builds the HTTP API. Operator routes accept tokens signed with JWT_SECRET.
func (c *CompositionRoot) NewRouter() (*echo.Echo, error) {
	verifier, err := auth.NewVerifier(c.config.JWTSecret)
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(c.registry, verifier, c.logger)
}

// NewJobManager returns the scheduled jobs. The auto dispatch job is left
// out when no dispatch location is configured.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	manager := jobs.NewJobManager()
	if c.config.AutoDispatchLocation != "" {
		manager.Add("auto dispatch", jobs.NewAutoDispatchJob(
			c.registry,
			c.config.AutoDispatchSchedule,
			c.config.AutoDispatchLocation,
			commands.DefaultDispatchBatchSize,
			c.logger,
		))
	}
	return manager
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) unitOfWorkFactory(ctx context.Context) (ports.UnitOfWorkFactory, error) {
	if c.config.Storage == StorageMemory {
		c.logger.Warn("using in-memory storage, parcels are lost on restart")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), nil
	}

	db, err := postgres.Open(ctx, postgres.ConnectionSettings{
		Host:     c.config.DBHost,
		Port:     c.config.DBPort,
		User:     c.config.DBUser,
		Password: c.config.DBPassword,
		DBName:   c.config.DBName,
		SSLMode:  c.config.DBSslMode,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	return postgres.NewGormUnitOfWorkFactory(db), nil
}

func (c *CompositionRoot) trackingCache(ctx context.Context) (ports.TrackingCache, error) {
	if c.config.RedisURL == "" {
		return memory.NewTrackingCache(), nil
	}

	cache, err := rediscache.NewTrackingCache(c.config.RedisURL, c.config.TrackingCacheTTL)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, cache.Close)

	if err = cache.Ping(ctx); err != nil {
		c.logger.WarnContext(ctx, "tracking cache unreachable, tracking falls back to storage", "error", err)
	}

	return cache, nil
}
