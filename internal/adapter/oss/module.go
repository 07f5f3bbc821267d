package oss

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ndavydov/storefront/internal/adapter/backend"
	"github.com/ndavydov/storefront/internal/config"
)

// Module exposes the object storage uploader to the fx graph.
var Module = fx.Provide(newUploader)

type uploaderParams struct {
	fx.In

	Config *config.Config
	Client *backend.Client
	Logger *slog.Logger
}

func newUploader(p uploaderParams) *Uploader {
	return NewUploader(p.Client, p.Config.UploadTimeout, p.Logger)
}
