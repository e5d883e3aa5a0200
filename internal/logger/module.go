package logger

import "go.uber.org/fx"

// Module wires slog logger configured from *config.Config.
var Module = fx.Provide(New)
