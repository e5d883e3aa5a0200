package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/domain/repository"
)

// OrderLifecycle encapsulates order lifecycle logic: creation, listing, status changes,
// soft deletion and restoration.
type OrderLifecycle struct {
	tx      repository.Transactor
	orders  repository.OrderRepository
	clients *ClientResolver
	paging  model.Paging
	logger  *slog.Logger
}

// NewOrderLifecycle constructs OrderLifecycle.
func NewOrderLifecycle(tx repository.Transactor, orders repository.OrderRepository, clients *ClientResolver, paging model.Paging, logger *slog.Logger) *OrderLifecycle {
	return &OrderLifecycle{tx: tx, orders: orders, clients: clients, paging: paging, logger: logger}
}

// Create validates draft, binds it to a client and stores it. The client write and the order
// insert share one transaction, so a failed insert leaves no client behind.
func (u *OrderLifecycle) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if verr := ValidateCreate(draft); verr != nil {
		return nil, verr
	}
	if verr := u.clients.Check(draft); verr != nil {
		return nil, verr
	}

	var created *model.Order
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		clientID, err := u.clients.Resolve(ctx, draft)
		if err != nil {
			return err
		}
		created, err = u.orders.Insert(ctx, draft.Order(clientID))
		return err
	})
	if err != nil {
		u.logFailure(ctx, "create", draft.OrderNo, err)
		return nil, err
	}

	u.logger.InfoContext(ctx, "order created",
		slog.String("order_no", created.OrderNo),
		slog.String("client_id", created.ClientID),
	)
	return created, nil
}

// Query lists orders matching filter, most recent first.
func (u *OrderLifecycle) Query(ctx context.Context, filter model.OrderFilter, page model.Page) (*model.OrderPage, error) {
	page = u.paging.Normalize(page)
	orders, total, err := u.orders.FindMany(ctx, filter, page)
	if err != nil {
		u.logFailure(ctx, "query", filter.OrderNo, err)
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return &model.OrderPage{Orders: orders, Total: total, Page: page}, nil
}

// UpdateStatus sets order status. Deleted orders may still be corrected.
func (u *OrderLifecycle) UpdateStatus(ctx context.Context, orderNo, status string) (*model.Order, error) {
	if verr := ValidateUpdate(orderNo, status); verr != nil {
		return nil, verr
	}
	orderNo = strings.TrimSpace(orderNo)

	order, err := u.orders.UpdateStatus(ctx, orderNo, model.OrderStatus(status))
	if err != nil {
		u.logFailure(ctx, "update status", orderNo, err)
		return nil, err
	}
	u.logger.InfoContext(ctx, "order status updated",
		slog.String("order_no", orderNo),
		slog.String("order_status", status),
	)
	return order, nil
}

// SoftDelete marks an active order as deleted. Deleting twice yields errors.ErrNotFound.
func (u *OrderLifecycle) SoftDelete(ctx context.Context, orderNo string) (*model.Order, error) {
	if verr := ValidateOrderNo(orderNo); verr != nil {
		return nil, verr
	}
	orderNo = strings.TrimSpace(orderNo)

	order, err := u.orders.SoftDelete(ctx, orderNo)
	if err != nil {
		u.logFailure(ctx, "soft delete", orderNo, err)
		return nil, err
	}
	u.logger.InfoContext(ctx, "order deleted", slog.String("order_no", orderNo))
	return order, nil
}

// Restore reactivates a deleted order. Restoring an active order yields errors.ErrNotFound.
func (u *OrderLifecycle) Restore(ctx context.Context, orderNo string) (*model.Order, error) {
	if verr := ValidateOrderNo(orderNo); verr != nil {
		return nil, verr
	}
	orderNo = strings.TrimSpace(orderNo)

	order, err := u.orders.Restore(ctx, orderNo)
	if err != nil {
		u.logFailure(ctx, "restore", orderNo, err)
		return nil, err
	}
	u.logger.InfoContext(ctx, "order restored", slog.String("order_no", orderNo))
	return order, nil
}

func (u *OrderLifecycle) logFailure(ctx context.Context, op, orderNo string, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		u.logger.DebugContext(ctx, "order not found",
			slog.String("op", op),
			slog.String("order_no", orderNo),
		)
		return
	}
	u.logger.ErrorContext(ctx, "order operation failed",
		slog.String("op", op),
		slog.String("order_no", orderNo),
		slog.String("error", err.Error()),
	)
}
