package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/freightorders/internal/app"
	"github.com/polkiloo/freightorders/internal/config"
	"github.com/polkiloo/freightorders/internal/logger"
	"github.com/polkiloo/freightorders/internal/pkg/clock"
	"github.com/polkiloo/freightorders/internal/pkg/idgen"
	"github.com/polkiloo/freightorders/internal/server/http/handlers"
	"github.com/polkiloo/freightorders/internal/server/http/router"
	"github.com/polkiloo/freightorders/internal/storage/postgres"
	"github.com/polkiloo/freightorders/internal/usecase"
)

// Module assembles the complete service graph. Extra options are applied last, so tests can
// swap infrastructure with fx.Replace.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		clock.Module,
		idgen.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		fx.Provide(func(u *usecase.OrderLifecycle) handlers.OrderService { return u }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
