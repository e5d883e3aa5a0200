package repository

import (
	"context"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// Guarded mutations return errors.ErrNotFound when no row is in the expected state.
type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) (*model.Order, error)
	FindMany(ctx context.Context, filter model.OrderFilter, page model.Page) ([]model.Order, int, error)
	UpdateStatus(ctx context.Context, orderNo string, status model.OrderStatus) (*model.Order, error)
	SoftDelete(ctx context.Context, orderNo string) (*model.Order, error)
	Restore(ctx context.Context, orderNo string) (*model.Order, error)
}
