package test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/pkg/clock"
)

// MemoryStore is an in-memory order and client store applying the same guards as PostgreSQL.
// It implements repository.OrderRepository, repository.ClientRepository and repository.Transactor.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	orders  []model.Order
	clients map[string]model.Client
	nextID  int64

	// InsertErr and ClientErr make the next writes fail.
	InsertErr error
	ClientErr error
	FindErr   error
}

// NewMemoryStore constructs empty store stamping rows with clk.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{clock: clk, clients: make(map[string]model.Client)}
}

// Clients returns a copy of stored clients.
func (s *MemoryStore) Clients() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out
}

// Orders returns a copy of all stored orders, deleted ones included.
func (s *MemoryStore) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.orders))
	for i := range s.orders {
		out[i] = cloneOrder(s.orders[i])
	}
	return out
}

// Order returns stored order by number.
func (s *MemoryStore) Order(orderNo string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(orderNo); i >= 0 {
		return cloneOrder(s.orders[i]), true
	}
	return model.Order{}, false
}

// WithinTransaction restores the previous state when fn fails.
func (s *MemoryStore) WithinTransaction(ctx context.Context, fn func(context.Context) error) error {
	s.mu.Lock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	clients := make(map[string]model.Client, len(s.clients))
	for k, v := range s.clients {
		clients[k] = v
	}
	nextID := s.nextID
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.orders, s.clients, s.nextID = orders, clients, nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

// Create stores client stamping its creation time.
func (s *MemoryStore) Create(_ context.Context, client *model.Client) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ClientErr != nil {
		return nil, domainErrors.NewPersistenceError("insert client", s.ClientErr)
	}
	if _, exists := s.clients[client.ID]; exists {
		return nil, domainErrors.NewPersistenceError("insert client", domainErrors.ErrAlreadyExists)
	}
	stored := *client
	stored.CreatedAt = s.clock.Now()
	s.clients[stored.ID] = stored
	return &stored, nil
}

// Insert stores order with server-stamped lifecycle fields.
func (s *MemoryStore) Insert(_ context.Context, order *model.Order) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.InsertErr != nil {
		return nil, domainErrors.NewPersistenceError("insert order", s.InsertErr)
	}
	if s.indexOf(order.OrderNo) >= 0 {
		return nil, domainErrors.NewPersistenceError("insert order",
			fmt.Errorf("%w: order_no %s", domainErrors.ErrAlreadyExists, order.OrderNo))
	}
	if _, ok := s.clients[order.ClientID]; !ok {
		return nil, domainErrors.NewPersistenceError("insert order",
			fmt.Errorf("%w: client_id %s", domainErrors.ErrUnknownClient, order.ClientID))
	}

	now := s.clock.Now()
	s.nextID++
	stored := *order
	stored.ID = s.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.IsDeleted = false
	stored.DeletedAt = nil
	s.orders = append(s.orders, stored)
	return &stored, nil
}

// AddClient seeds a client without going through Create.
func (s *MemoryStore) AddClient(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = model.Client{ID: id, Name: id, CreatedAt: s.clock.Now()}
}

// FindMany filters, orders by creation time descending and paginates.
func (s *MemoryStore) FindMany(_ context.Context, filter model.OrderFilter, page model.Page) ([]model.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FindErr != nil {
		return nil, 0, domainErrors.NewPersistenceError("count orders", s.FindErr)
	}

	var matched []model.Order
	for _, o := range s.orders {
		if matches(o, filter) {
			matched = append(matched, cloneOrder(o))
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Size
	if page.Size <= 0 || end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// UpdateStatus changes status regardless of lifecycle state.
func (s *MemoryStore) UpdateStatus(_ context.Context, orderNo string, status model.OrderStatus) (*model.Order, error) {
	return s.mutate(orderNo, func(o *model.Order) bool { return true }, func(o *model.Order, now time.Time) {
		o.Status = status
		o.UpdatedAt = now
	})
}

// SoftDelete marks active order as deleted.
func (s *MemoryStore) SoftDelete(_ context.Context, orderNo string) (*model.Order, error) {
	return s.mutate(orderNo, func(o *model.Order) bool { return !o.IsDeleted }, func(o *model.Order, now time.Time) {
		deletedAt := now
		o.IsDeleted = true
		o.DeletedAt = &deletedAt
		o.UpdatedAt = now
	})
}

// Restore reactivates deleted order.
func (s *MemoryStore) Restore(_ context.Context, orderNo string) (*model.Order, error) {
	return s.mutate(orderNo, func(o *model.Order) bool { return o.IsDeleted }, func(o *model.Order, now time.Time) {
		o.IsDeleted = false
		o.DeletedAt = nil
		o.UpdatedAt = now
	})
}

func (s *MemoryStore) mutate(orderNo string, guard func(*model.Order) bool, apply func(*model.Order, time.Time)) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(orderNo)
	if i < 0 || !guard(&s.orders[i]) {
		return nil, domainErrors.ErrNotFound
	}
	apply(&s.orders[i], s.clock.Now())
	updated := cloneOrder(s.orders[i])
	return &updated, nil
}

func (s *MemoryStore) indexOf(orderNo string) int {
	for i := range s.orders {
		if s.orders[i].OrderNo == orderNo {
			return i
		}
	}
	return -1
}

func matches(o model.Order, f model.OrderFilter) bool {
	switch {
	case !f.IncludeDeleted && o.IsDeleted:
		return false
	case f.OrderNo != "" && o.OrderNo != f.OrderNo:
		return false
	case f.ClientID != "" && o.ClientID != f.ClientID:
		return false
	case f.Status != "" && o.Status != f.Status:
		return false
	case f.POL != "" && !containsFold(o.POL, f.POL):
		return false
	case f.POD != "" && !containsFold(o.POD, f.POD):
		return false
	case f.CreatedFrom != nil && o.CreatedAt.Before(*f.CreatedFrom):
		return false
	case f.CreatedTo != nil && o.CreatedAt.After(*f.CreatedTo):
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func cloneOrder(o model.Order) model.Order {
	if o.DeletedAt != nil {
		deletedAt := *o.DeletedAt
		o.DeletedAt = &deletedAt
	}
	return o
}

// TickingClock advances by Step on every reading.
type TickingClock struct {
	mu   sync.Mutex
	At   time.Time
	Step time.Duration
}

// Now returns current reading and advances the clock.
func (c *TickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.At
	step := c.Step
	if step == 0 {
		step = time.Second
	}
	c.At = c.At.Add(step)
	return now
}
