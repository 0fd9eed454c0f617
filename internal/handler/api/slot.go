package api

import (
	"net/http"

	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary Slot availability
// @Description Booked slot ids per package plus the global block list for a date and location
// @Tags slots
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param location query string true "Location"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /slots [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date and location required", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), q.Date, q.Location)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to load slots")
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load slots", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check one slot
// @Tags slots
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param location query string true "Location"
// @Param slotId query string true "Slot ID"
// @Param package query string false "Package tier"
// @Success 200 {object} resdto.SlotCheckResponse
// @Failure 400 {object} httperr.Response
// @Router /slots/check [get]
func (h *SlotHandler) Check(c *gin.Context) {
	var q reqdto.CheckSlotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date, location and slotId required", nil)
		return
	}

	view, err := h.q.Check(c.Request.Context(), q.Date, q.Location, q.SlotID, q.Package)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to check slot")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotCheckView(view))
}
