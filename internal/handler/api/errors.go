package api

import (
	"net/http"

	"slot-booking/internal/domain/order"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps usecase sentinels to HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot already booked", nil)
	case errs.Is(err, errs.ErrAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Order already cancelled", nil)
	case errs.Is(err, errs.ErrOwnershipMismatch):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Unauthorized", nil)
	case errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errs.Is(err, errs.ErrConcurrentOrderEdit):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order was modified concurrently, please retry", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func validationMessage(err error) string {
	switch {
	case errs.Is(err, order.ErrCustomerNameRequired):
		return "Name is required"
	case errs.Is(err, order.ErrInvalidPhone):
		return "Phone number must have 10 digits"
	case errs.Is(err, order.ErrInvalidEmail):
		return "Invalid email"
	case errs.Is(err, slot.ErrInvalidDate):
		return "Date must be YYYY-MM-DD"
	case errs.Is(err, errs.ErrLocationNotFound):
		return "Invalid location"
	case errs.Is(err, errs.ErrPackageNotFound):
		return "Invalid package"
	case errs.Is(err, errs.ErrSlotNotFound):
		return "Invalid slot"
	case errs.Is(err, order.ErrInvalidStatus):
		return "Invalid status"
	default:
		return "Invalid request"
	}
}

func abortBadRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing details", nil)
}
