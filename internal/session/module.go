package session

import (
	"go.uber.org/fx"

	"github.com/ndavydov/storefront/internal/config"
)

// Module wires the cookie session store for dependency injection.
var Module = fx.Provide(newStore)

func newStore(cfg *config.Config) *Store {
	return NewStore(cfg.CookieSecure)
}
