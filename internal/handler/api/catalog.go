package api

import (
	"net/http"

	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/handler/httperr"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List locations
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.LocationsResponse
// @Router /locations [get]
func (h *CatalogHandler) Locations(c *gin.Context) {
	res, err := resdto.FromLocationViews(h.q.Locations(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load locations", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Packages of a location
// @Tags catalog
// @Produce json
// @Param location path string true "Location"
// @Success 200 {object} resdto.PackagesResponse
// @Failure 404 {object} httperr.Response
// @Router /packages/{location} [get]
func (h *CatalogHandler) Packages(c *gin.Context) {
	view, err := h.q.Packages(c.Request.Context(), c.Param("location"))
	if err != nil {
		if errs.Is(err, errs.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load packages", nil)
		return
	}
	res, err := resdto.FromLocationPackagesView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load packages", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
