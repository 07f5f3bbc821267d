package payment

import "go.uber.org/fx"

// Module wires the status tracker for dependency injection.
var Module = fx.Provide(NewTracker)
