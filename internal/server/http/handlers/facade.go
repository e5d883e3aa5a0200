package handlers

import (
	"context"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

// OrderService encapsulates order lifecycle operations exposed via HTTP.
type OrderService interface {
	Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Query(ctx context.Context, filter model.OrderFilter, page model.Page) (*model.OrderPage, error)
	UpdateStatus(ctx context.Context, orderNo, status string) (*model.Order, error)
	SoftDelete(ctx context.Context, orderNo string) (*model.Order, error)
	Restore(ctx context.Context, orderNo string) (*model.Order, error)
}

// HealthChecker reports readiness of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
