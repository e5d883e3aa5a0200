package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/freightorders/internal/config"
	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/domain/repository"
	"github.com/polkiloo/freightorders/internal/pkg/idgen"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newClientResolver,
	newOrderLifecycle,
)

type resolverParams struct {
	fx.In

	Config  *config.Config
	Clients repository.ClientRepository
	IDs     idgen.Generator
}

func newClientResolver(p resolverParams) (*ClientResolver, error) {
	return NewClientResolver(ClientPolicy(p.Config.ClientPolicy), p.Clients, p.IDs)
}

type lifecycleParams struct {
	fx.In

	Config  *config.Config
	Tx      repository.Transactor
	Orders  repository.OrderRepository
	Clients *ClientResolver
	Logger  *slog.Logger
}

func newOrderLifecycle(p lifecycleParams) *OrderLifecycle {
	paging := model.Paging{DefaultSize: p.Config.DefaultPageSize, MaxSize: p.Config.MaxPageSize}
	return NewOrderLifecycle(p.Tx, p.Orders, p.Clients, paging, p.Logger)
}
