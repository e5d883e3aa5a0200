package idgen

import "go.uber.org/fx"

// Module provides the UUID generator.
var Module = fx.Provide(func() Generator { return UUID{} })
