package dto

import "time"

// Envelope wraps every JSON response.
type Envelope struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Data          any      `json:"data"`
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
}

// CreateOrderRequest is the body of POST /api/order/create. Amounts are pointers so that an
// explicit zero differs from an omitted field.
type CreateOrderRequest struct {
	OrderNo     string   `json:"order_no"`
	ClientID    string   `json:"client_id"`
	FreightType string   `json:"freight_type"`
	POL         string   `json:"pol"`
	POD         string   `json:"pod"`
	GoodsName   string   `json:"goods_name"`
	Freight     *float64 `json:"freight"`
	TotalAmount *float64 `json:"total_amount"`
	Currency    string   `json:"currency"`
	OrderStatus string   `json:"order_status"`
}

// UpdateStatusRequest is the body of POST /api/order/update.
type UpdateStatusRequest struct {
	OrderNo     string `json:"order_no"`
	OrderStatus string `json:"order_status"`
}

// OrderNoRequest addresses a single order by number.
type OrderNoRequest struct {
	OrderNo string `json:"order_no"`
}

// OrderResponse represents a stored order.
type OrderResponse struct {
	ID          int64      `json:"id"`
	OrderNo     string     `json:"order_no"`
	ClientID    string     `json:"client_id"`
	FreightType string     `json:"freight_type"`
	POL         string     `json:"pol"`
	POD         string     `json:"pod"`
	GoodsName   string     `json:"goods_name"`
	Freight     float64    `json:"freight"`
	TotalAmount float64    `json:"total_amount"`
	Currency    string     `json:"currency"`
	OrderStatus string     `json:"order_status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// OrderListResponse is one page of a query.
type OrderListResponse struct {
	List     []OrderResponse `json:"list"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// DeletedResponse confirms a soft delete.
type DeletedResponse struct {
	OrderNo   string     `json:"order_no"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// RestoredResponse confirms a restore.
type RestoredResponse struct {
	OrderNo   string    `json:"order_no"`
	UpdatedAt time.Time `json:"updated_at"`
}
