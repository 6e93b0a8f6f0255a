package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insightflow-api/core/apidocs"
	"insightflow-api/core/config"
	"insightflow-api/core/middleware/auth"
	"insightflow-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Prepared is a configured host that has not been bound to a port yet.
type Prepared struct {
	Host *server.Host
	Docs apidocs.Plan

	logger *zap.Logger
}

// Prepare runs every step before listening: host creation, prefix, CORS and docs.
func Prepare(cfg *config.Config, logg *zap.Logger, module server.Module) (*Prepared, error) {
	if cfg == nil {
		return nil, errors.New("configuration is nil")
	}
	if logg == nil {
		logg = zap.NewNop()
	}

	host, err := server.NewHost(module, logg, server.Options{
		Guards:          []fiber.Handler{auth.New(cfg.Auth)},
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create application host: %w", err)
	}

	host.SetGlobalPrefix(cfg.Server.Prefix)

	if err := host.EnableCORS(cfg.CORS.Origin); err != nil {
		return nil, fmt.Errorf("failed to enable CORS: %w", err)
	}

	plan := apidocs.Resolve(cfg.Swagger, cfg.Server.Prefix, cfg.Server.IsProduction())
	if err := plan.Setup(host); err != nil {
		return nil, fmt.Errorf("failed to set up API documentation: %w", err)
	}

	return &Prepared{Host: host, Docs: plan, logger: logg}, nil
}

// Serve binds the port and blocks until ctx is cancelled or the listener fails.
// The startup lines are logged once the port is bound.
func (p *Prepared) Serve(ctx context.Context, port int) error {
	p.Host.OnListen(func(info server.ListenInfo) {
		p.logger.Info(fmt.Sprintf("Application is running on: %s", info.BaseURL))
		if docs, ok := p.Docs.(apidocs.Enabled); ok {
			p.logger.Info(fmt.Sprintf("Swagger documentation: %s", docs.URL(info.BaseURL)))
		}
	})

	if err := p.Host.Listen(ctx, port); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}
	return nil
}

// Run prepares the host and serves it on the configured port.
func Run(ctx context.Context, cfg *config.Config, logg *zap.Logger, module server.Module) error {
	prepared, err := Prepare(cfg, logg, module)
	if err != nil {
		return err
	}
	return prepared.Serve(ctx, cfg.Server.Port)
}
