package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/server/http/dto"
)

const msgMalformedBody = "request body must be a JSON object"

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	service OrderService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /api/order/create.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	order, err := h.service.Create(c.Request.Context(), model.OrderDraft{
		OrderNo:     req.OrderNo,
		ClientID:    req.ClientID,
		FreightType: req.FreightType,
		POL:         req.POL,
		POD:         req.POD,
		GoodsName:   req.GoodsName,
		Freight:     req.Freight,
		TotalAmount: req.TotalAmount,
		Currency:    req.Currency,
		Status:      model.OrderStatus(strings.TrimSpace(req.OrderStatus)),
	})
	if err != nil {
		respondError(c, err, "order not found")
		return
	}

	respondOK(c, http.StatusCreated, "order created", toOrderResponse(*order))
}

// Query handles GET /api/order/query. Unparsable parameters fall back to defaults.
func (h *OrderHandler) Query(c *gin.Context) {
	filter := model.OrderFilter{
		OrderNo:        strings.TrimSpace(c.Query("order_no")),
		ClientID:       strings.TrimSpace(c.Query("client_id")),
		Status:         model.OrderStatus(strings.TrimSpace(c.Query("order_status"))),
		POL:            strings.TrimSpace(c.Query("pol")),
		POD:            strings.TrimSpace(c.Query("pod")),
		CreatedFrom:    parseTime(c.Query("created_from"), false),
		CreatedTo:      parseTime(c.Query("created_to"), true),
		IncludeDeleted: c.Query("show_deleted") == "true",
	}
	page := model.Page{
		Number: parseInt(c.Query("page")),
		Size:   parseInt(c.Query("page_size")),
	}

	result, err := h.service.Query(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err, "no orders found")
		return
	}

	list := make([]dto.OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		list = append(list, toOrderResponse(o))
	}
	respondOK(c, http.StatusOK, "orders fetched", dto.OrderListResponse{
		List:     list,
		Total:    result.Total,
		Page:     result.Page.Number,
		PageSize: result.Page.Size,
	})
}

// UpdateStatus handles POST /api/order/update.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), req.OrderNo, strings.TrimSpace(req.OrderStatus))
	if err != nil {
		respondError(c, err, fmt.Sprintf("order %s not found", req.OrderNo))
		return
	}

	respondOK(c, http.StatusOK, "order status updated", toOrderResponse(*order))
}

// Delete handles POST /api/order/delete.
func (h *OrderHandler) Delete(c *gin.Context) {
	var req dto.OrderNoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	order, err := h.service.SoftDelete(c.Request.Context(), req.OrderNo)
	if err != nil {
		respondError(c, err, fmt.Sprintf("order %s not found or already deleted", req.OrderNo))
		return
	}

	respondOK(c, http.StatusOK, fmt.Sprintf("order %s deleted, it can be restored", order.OrderNo), dto.DeletedResponse{
		OrderNo:   order.OrderNo,
		DeletedAt: order.DeletedAt,
	})
}

// Restore handles POST /api/order/restore.
func (h *OrderHandler) Restore(c *gin.Context) {
	var req dto.OrderNoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, msgMalformedBody)
		return
	}

	order, err := h.service.Restore(c.Request.Context(), req.OrderNo)
	if err != nil {
		respondError(c, err, fmt.Sprintf("order %s not found or not deleted", req.OrderNo))
		return
	}

	respondOK(c, http.StatusOK, fmt.Sprintf("order %s restored", order.OrderNo), dto.RestoredResponse{
		OrderNo:   order.OrderNo,
		UpdatedAt: order.UpdatedAt,
	})
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// parseTime accepts RFC 3339 timestamps and plain dates in UTC. A plain date used as an upper
// bound covers the whole day, down to the microsecond precision of timestamptz.
func parseTime(raw string, endOfDay bool) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return &t
}
