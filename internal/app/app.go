package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/adapter/oss"
	"github.com/ndavydov/storefront/internal/config"
	"github.com/ndavydov/storefront/internal/metrics"
	"github.com/ndavydov/storefront/internal/payment"
	"github.com/ndavydov/storefront/internal/server/http/handlers"
	"github.com/ndavydov/storefront/internal/server/http/middleware"
	"github.com/ndavydov/storefront/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newStorefrontFacade,
		func(f *StorefrontFacade) handlers.StorefrontFacade { return f },
		newLoginLimiter,
		newHTTPServer,
		newStatusPoller,
	),
	fx.Invoke(registerLifecycle),
)

type facadeParams struct {
	fx.In

	Backend   *backend.Client
	Uploader  *oss.Uploader
	Tracker   *payment.Tracker
	Collector *metrics.Collector
	Logger    *slog.Logger
	Config    *config.Config
}

func newStorefrontFacade(p facadeParams) *StorefrontFacade {
	return NewStorefrontFacade(p.Backend, p.Uploader, p.Tracker, p.Collector, p.Logger, p.Config.StatusWorkerPool)
}

func newLoginLimiter(cfg *config.Config) *middleware.LoginLimiter {
	return middleware.NewLoginLimiter(cfg.LoginRatePerMin, cfg.LoginBurst)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newStatusPoller(p workerParams) *worker.StatusPoller {
	return worker.NewStatusPoller(
		p.Facade,
		p.Config.StatusPollInterval,
		p.Config.StatusBatchSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.StatusPoller
	Limiter    *middleware.LoginLimiter
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting storefront", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()
			p.Limiter.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("storefront stopped")
			return nil
		},
	})
}
