package model

import (
	"strings"
	"time"
)

// OrderStatus describes shipment progress of a freight order.
type OrderStatus string

const (
	OrderStatusBooked    OrderStatus = "已订舱"
	OrderStatusLoaded    OrderStatus = "已装船"
	OrderStatusArrived   OrderStatus = "已到港"
	OrderStatusDelivered OrderStatus = "已签收"
	OrderStatusCancelled OrderStatus = "已取消"
)

// OrderStatuses lists every accepted status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusBooked,
	OrderStatusLoaded,
	OrderStatusArrived,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether status belongs to the closed enumeration.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order describes freight shipment record.
type Order struct {
	ID          int64
	OrderNo     string
	ClientID    string
	FreightType string
	POL         string
	POD         string
	GoodsName   string
	Freight     float64
	TotalAmount float64
	Currency    string
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDeleted   bool
	DeletedAt   *time.Time
}

// OrderDraft carries caller supplied fields of an order before it is stored.
// Numeric fields are pointers so that an explicit zero can be told apart from an absent value.
type OrderDraft struct {
	OrderNo     string
	ClientID    string
	FreightType string
	POL         string
	POD         string
	GoodsName   string
	Freight     *float64
	TotalAmount *float64
	Currency    string
	Status      OrderStatus
}

// Order builds an order for insertion bound to clientID.
func (d OrderDraft) Order(clientID string) *Order {
	order := &Order{
		OrderNo:     strings.TrimSpace(d.OrderNo),
		ClientID:    clientID,
		FreightType: strings.TrimSpace(d.FreightType),
		POL:         strings.TrimSpace(d.POL),
		POD:         strings.TrimSpace(d.POD),
		GoodsName:   strings.TrimSpace(d.GoodsName),
		Currency:    strings.TrimSpace(d.Currency),
		Status:      d.Status,
	}
	if d.Freight != nil {
		order.Freight = *d.Freight
	}
	if d.TotalAmount != nil {
		order.TotalAmount = *d.TotalAmount
	}
	return order
}
