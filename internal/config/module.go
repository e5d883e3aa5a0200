package config

import "go.uber.org/fx"

// Module provides *Config assembled from flags, environment and the .env file.
var Module = fx.Provide(Load)
