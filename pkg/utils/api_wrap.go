package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fundflow/internal/gateway"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID,
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP statuses.
// Gateway errors keep their processor detail in the message so a failed
// money movement can be reconciled by hand.
func HandleServiceError(c *gin.Context, err error) {
	var gwErr *gateway.Error

	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrAlreadyOnboarded),
		errors.Is(err, ErrNotOnboarded),
		errors.Is(err, ErrNoCustomer),
		errors.Is(err, ErrVendorNotOnboarded),
		errors.Is(err, ErrVendorNotEligible),
		errors.Is(err, ErrPaymentNotSucceeded),
		errors.Is(err, ErrNoPaymentIntentOnInvoice):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidCurrency),
		errors.Is(err, ErrInvalidInterval):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrLedgerWrite):
		log.Printf("ledger write failure, needs reconciliation: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())

	case errors.As(err, &gwErr):
		RespondError(c, http.StatusBadGateway, gwErr.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
