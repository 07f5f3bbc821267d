package logger

import "go.uber.org/fx"

// Module provides the shared slog logger for dependency injection.
var Module = fx.Provide(New)
