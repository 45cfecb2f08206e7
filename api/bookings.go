package api

import (
	"net/http"
	"time"

	"github.com/artwalls/artwalls/internal/auth"
	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	ID        string  `json:"id"`
	VenueID   string  `json:"venueId"`
	ArtistID  string  `json:"artistId"`
	ArtworkID *string `json:"artworkId,omitempty"`
	Type      string  `json:"type"`
	StartAt   string  `json:"startAt"`
	EndAt     string  `json:"endAt"`
	Status    string  `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Create(c *gin.Context) {
	ident := auth.FromContext(c)
	if ident == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), c.Param("venueId"), ident.ID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": gin.H{"id": created.ID}})
}

func (h *BookingHandler) ListForVenue(c *gin.Context) {
	bookings, err := h.service.ListVenueBookings(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		VenueID:   b.VenueID,
		ArtistID:  b.ArtistID,
		ArtworkID: b.ArtworkID,
		Type:      string(b.Type),
		StartAt:   b.StartAt.UTC().Format(time.RFC3339),
		EndAt:     b.EndAt.UTC().Format(time.RFC3339),
		Status:    string(b.Status),
	}
}
