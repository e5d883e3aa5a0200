package model

import (
	"math"
	"time"
)

// OrderFilter narrows order listings. Zero values mean "no constraint".
type OrderFilter struct {
	OrderNo        string
	ClientID       string
	Status         OrderStatus
	POL            string
	POD            string
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	IncludeDeleted bool
}

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Size   int
}

// Offset returns number of rows preceding the window. It saturates at math.MaxInt.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Paging holds page size limits applied to incoming queries.
type Paging struct {
	DefaultSize int
	MaxSize     int
}

// Normalize clamps page into the configured limits.
func (l Paging) Normalize(p Page) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = l.DefaultSize
	}
	if l.MaxSize > 0 && p.Size > l.MaxSize {
		p.Size = l.MaxSize
	}
	if p.Size > 0 && p.Number > math.MaxInt/p.Size {
		p.Number = math.MaxInt / p.Size
	}
	return p
}

// OrderPage is a window of orders together with the unpaginated match count.
type OrderPage struct {
	Orders []Order
	Total  int
	Page   Page
}
