package test

import (
	"context"
	"time"

	"github.com/polkiloo/freightorders/internal/domain/model"
)

// SampleOrder returns an active booked order used across handler tests.
func SampleOrder(orderNo string) model.Order {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	return model.Order{
		ID:          1,
		OrderNo:     orderNo,
		ClientID:    "3f2a1c9e-0000-4000-8000-000000000001",
		FreightType: "FCL",
		POL:         "Shanghai",
		POD:         "Rotterdam",
		GoodsName:   "Furniture",
		Freight:     1000,
		TotalAmount: 5000,
		Currency:    "USD",
		Status:      model.OrderStatusBooked,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// OrderServiceStub provides controllable behaviour for order endpoints.
type OrderServiceStub struct {
	CreateFn       func(context.Context, model.OrderDraft) (*model.Order, error)
	QueryFn        func(context.Context, model.OrderFilter, model.Page) (*model.OrderPage, error)
	UpdateStatusFn func(context.Context, string, string) (*model.Order, error)
	SoftDeleteFn   func(context.Context, string) (*model.Order, error)
	RestoreFn      func(context.Context, string) (*model.Order, error)
}

// Create delegates to provided function or echoes the draft as an active order.
func (s OrderServiceStub) Create(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, draft)
	}
	order := SampleOrder(draft.OrderNo)
	return &order, nil
}

// Query returns predefined single order page.
func (s OrderServiceStub) Query(ctx context.Context, filter model.OrderFilter, page model.Page) (*model.OrderPage, error) {
	if s.QueryFn != nil {
		return s.QueryFn(ctx, filter, page)
	}
	return &model.OrderPage{Orders: []model.Order{SampleOrder("O1001")}, Total: 1, Page: model.Page{Number: 1, Size: 20}}, nil
}

// UpdateStatus returns sample order carrying the requested status.
func (s OrderServiceStub) UpdateStatus(ctx context.Context, orderNo, status string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderNo, status)
	}
	order := SampleOrder(orderNo)
	order.Status = model.OrderStatus(status)
	return &order, nil
}

// SoftDelete returns sample order marked deleted.
func (s OrderServiceStub) SoftDelete(ctx context.Context, orderNo string) (*model.Order, error) {
	if s.SoftDeleteFn != nil {
		return s.SoftDeleteFn(ctx, orderNo)
	}
	order := SampleOrder(orderNo)
	deletedAt := order.CreatedAt.Add(time.Hour)
	order.IsDeleted = true
	order.DeletedAt = &deletedAt
	order.UpdatedAt = deletedAt
	return &order, nil
}

// Restore returns sample active order.
func (s OrderServiceStub) Restore(ctx context.Context, orderNo string) (*model.Order, error) {
	if s.RestoreFn != nil {
		return s.RestoreFn(ctx, orderNo)
	}
	order := SampleOrder(orderNo)
	order.UpdatedAt = order.CreatedAt.Add(2 * time.Hour)
	return &order, nil
}

// HealthCheckerStub reports configured database health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
