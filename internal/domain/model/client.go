package model

import "time"

// Client represents counterparty referenced by orders.
type Client struct {
	ID           string
	Name         string
	ContactName  string
	ContactPhone string
	CreatedAt    time.Time
}
