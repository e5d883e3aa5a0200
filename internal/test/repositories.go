package test

import (
	"context"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
)

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	InsertFn       func(context.Context, *model.Order) (*model.Order, error)
	FindManyFn     func(context.Context, model.OrderFilter, model.Page) ([]model.Order, int, error)
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)
	SoftDeleteFn   func(context.Context, string) (*model.Order, error)
	RestoreFn      func(context.Context, string) (*model.Order, error)

	Inserted []model.Order
	Calls    []string
}

// Insert records the order and echoes it back unless overridden.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Calls = append(s.Calls, "insert")
	s.Inserted = append(s.Inserted, *order)
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	stored := *order
	stored.ID = int64(len(s.Inserted))
	return &stored, nil
}

// FindMany returns configured listing or an empty page.
func (s *OrderRepositoryStub) FindMany(ctx context.Context, filter model.OrderFilter, page model.Page) ([]model.Order, int, error) {
	s.Calls = append(s.Calls, "find")
	if s.FindManyFn != nil {
		return s.FindManyFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// UpdateStatus delegates to override or reports not found.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderNo string, status model.OrderStatus) (*model.Order, error) {
	s.Calls = append(s.Calls, "update")
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderNo, status)
	}
	return nil, domainErrors.ErrNotFound
}

// SoftDelete delegates to override or reports not found.
func (s *OrderRepositoryStub) SoftDelete(ctx context.Context, orderNo string) (*model.Order, error) {
	s.Calls = append(s.Calls, "delete")
	if s.SoftDeleteFn != nil {
		return s.SoftDeleteFn(ctx, orderNo)
	}
	return nil, domainErrors.ErrNotFound
}

// Restore delegates to override or reports not found.
func (s *OrderRepositoryStub) Restore(ctx context.Context, orderNo string) (*model.Order, error) {
	s.Calls = append(s.Calls, "restore")
	if s.RestoreFn != nil {
		return s.RestoreFn(ctx, orderNo)
	}
	return nil, domainErrors.ErrNotFound
}

// ClientRepositoryStub records created clients.
type ClientRepositoryStub struct {
	CreateFn func(context.Context, *model.Client) (*model.Client, error)
	Created  []model.Client
	Err      error
}

// Create stores client unless stub has explicit error.
func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, client)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Created = append(s.Created, *client)
	stored := *client
	return &stored, nil
}

// TransactorStub runs callbacks inline and counts invocations.
type TransactorStub struct {
	Calls int
	Err   error
}

// WithinTransaction invokes fn unless a begin error is configured.
func (s *TransactorStub) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(ctx)
}

// SequenceIDs hands out predictable identifiers.
type SequenceIDs struct {
	IDs  []string
	next int
}

// NewID returns the next configured identifier, repeating the last one when exhausted.
func (s *SequenceIDs) NewID() string {
	if len(s.IDs) == 0 {
		return "00000000-0000-4000-8000-000000000000"
	}
	if s.next >= len(s.IDs) {
		return s.IDs[len(s.IDs)-1]
	}
	id := s.IDs[s.next]
	s.next++
	return id
}
