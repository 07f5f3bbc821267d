package di

import (
	"go.uber.org/fx"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/adapter/oss"
	"github.com/ndavydov/storefront/internal/app"
	"github.com/ndavydov/storefront/internal/config"
	"github.com/ndavydov/storefront/internal/logger"
	"github.com/ndavydov/storefront/internal/metrics"
	"github.com/ndavydov/storefront/internal/payment"
	"github.com/ndavydov/storefront/internal/server/http/router"
	"github.com/ndavydov/storefront/internal/session"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		session.Module,
		backend.Module,
		oss.Module,
		payment.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
