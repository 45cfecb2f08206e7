package api

import (
	"net/http"

	"github.com/artwalls/artwalls/internal/service/availability"
	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	service availability.AvailabilityUseCase
}

func NewAvailabilityHandler(service availability.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	venueID := c.Param("venueId")
	weekStart := c.Query("weekStart")

	result, err := h.service.GetAvailability(c.Request.Context(), venueID, weekStart)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
