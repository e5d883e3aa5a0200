package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
	"github.com/polkiloo/freightorders/internal/server/http/dto"
)

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Envelope{Success: true, Message: message, Data: data})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Envelope{Success: false, Message: message})
}

// respondError maps err onto the HTTP contract. notFound is used as message for ErrNotFound.
func respondError(c *gin.Context, err error, notFound string) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.Envelope{
			Success:       false,
			Message:       verr.Error(),
			MissingFields: verr.Missing,
			InvalidFields: verr.Invalid,
		})
	case errors.Is(err, domainErrors.ErrNotFound):
		respondFailure(c, http.StatusNotFound, notFound)
	default:
		respondFailure(c, http.StatusInternalServerError, err.Error())
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		OrderNo:     order.OrderNo,
		ClientID:    order.ClientID,
		FreightType: order.FreightType,
		POL:         order.POL,
		POD:         order.POD,
		GoodsName:   order.GoodsName,
		Freight:     order.Freight,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		OrderStatus: string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		IsDeleted:   order.IsDeleted,
		DeletedAt:   order.DeletedAt,
	}
}
