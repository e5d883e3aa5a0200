package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/freightorders/internal/domain/errors"
	"github.com/polkiloo/freightorders/internal/domain/model"
)

// Field names as they appear in request payloads.
const (
	FieldOrderNo     = "order_no"
	FieldClientID    = "client_id"
	FieldFreightType = "freight_type"
	FieldPOL         = "pol"
	FieldPOD         = "pod"
	FieldGoodsName   = "goods_name"
	FieldFreight     = "freight"
	FieldTotalAmount = "total_amount"
	FieldCurrency    = "currency"
	FieldOrderStatus = "order_status"
)

// ValidateCreate checks draft against the required-field contract.
// Strings are missing when blank; numbers only when absent, so zero amounts are accepted.
// Returns nil when draft is acceptable.
func ValidateCreate(draft model.OrderDraft) *domainErrors.ValidationError {
	var missing, invalid []string

	requireString := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	requireAmount := func(field string, value *float64) {
		switch {
		case value == nil:
			missing = append(missing, field)
		case *value < 0:
			invalid = append(invalid, field)
		}
	}

	requireString(FieldOrderNo, draft.OrderNo)
	requireString(FieldFreightType, draft.FreightType)
	requireString(FieldPOL, draft.POL)
	requireString(FieldPOD, draft.POD)
	requireString(FieldGoodsName, draft.GoodsName)
	requireAmount(FieldFreight, draft.Freight)
	requireAmount(FieldTotalAmount, draft.TotalAmount)
	requireString(FieldCurrency, draft.Currency)
	requireString(FieldOrderStatus, string(draft.Status))
	if draft.Status != "" && !ValidateStatus(string(draft.Status)) {
		invalid = append(invalid, FieldOrderStatus)
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}
	return &domainErrors.ValidationError{Missing: missing, Invalid: invalid}
}

// ValidateStatus reports whether value is one of the known order statuses.
func ValidateStatus(value string) bool {
	return model.OrderStatus(value).Valid()
}

// ValidateUpdate checks a status update request.
func ValidateUpdate(orderNo, status string) *domainErrors.ValidationError {
	var missing []string
	if strings.TrimSpace(orderNo) == "" {
		missing = append(missing, FieldOrderNo)
	}
	if status == "" {
		missing = append(missing, FieldOrderStatus)
	}
	if len(missing) > 0 {
		return domainErrors.NewMissingFieldsError(missing...)
	}
	if !ValidateStatus(status) {
		return domainErrors.NewInvalidFieldsError(FieldOrderStatus)
	}
	return nil
}

// ValidateOrderNo checks that an order number was supplied.
func ValidateOrderNo(orderNo string) *domainErrors.ValidationError {
	if strings.TrimSpace(orderNo) == "" {
		return domainErrors.NewMissingFieldsError(FieldOrderNo)
	}
	return nil
}
