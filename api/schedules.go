package api

import (
	"net/http"

	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/service/schedule"
	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	service schedule.ScheduleUseCase
}

type scheduleResponse struct {
	ID                         int64  `json:"id"`
	VenueID                    string `json:"venueId"`
	DayOfWeek                  string `json:"dayOfWeek"`
	StartTime                  string `json:"startTime"`
	EndTime                    string `json:"endTime"`
	SlotMinutes                int    `json:"slotMinutes"`
	InstallSlotIntervalMinutes int    `json:"installSlotIntervalMinutes"`
	Timezone                   string `json:"timezone,omitempty"`
}

func NewScheduleHandler(service schedule.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	venueID := c.Param("venueId")
	s, err := h.service.GetSchedule(c.Request.Context(), venueID)
	if err != nil {
		writeError(c, err)
		return
	}
	if s == nil {
		// Not an error: the venue simply hasn't configured scheduling.
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(s))
}

func (h *ScheduleHandler) Upsert(c *gin.Context) {
	venueID := c.Param("venueId")
	var input schedule.SetScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s, err := h.service.SetSchedule(c.Request.Context(), venueID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toScheduleResponse(s))
}

func toScheduleResponse(s *domain.VenueSchedule) scheduleResponse {
	return scheduleResponse{
		ID:                         s.ID,
		VenueID:                    s.VenueID,
		DayOfWeek:                  s.DayOfWeek,
		StartTime:                  s.StartTime,
		EndTime:                    s.EndTime,
		SlotMinutes:                s.SlotMinutes,
		InstallSlotIntervalMinutes: s.SlotMinutes,
		Timezone:                   s.Timezone,
	}
}
