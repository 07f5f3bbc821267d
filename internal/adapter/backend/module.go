package backend

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ndavydov/storefront/internal/config"
)

// Module exposes the backend client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.BackendAddress, p.Logger)
}
