package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/artwalls/artwalls/internal/auth"
	"github.com/artwalls/artwalls/internal/domain"
	"github.com/artwalls/artwalls/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, venueID, artistID string, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, venueID, artistID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListVenueBookings(ctx context.Context, venueID string) ([]domain.Booking, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func bookingContext(t *testing.T, body string, ident *auth.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "venueId", Value: "venue-1"}}
	c.Request = httptest.NewRequest("POST", "/api/venues/venue-1/bookings", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if ident != nil {
		c.Set("identity", ident)
	}
	return c, w
}

func TestBookingHandler_Create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := `{"type":"install","startAt":"2025-06-05T16:00:00Z"}`
	c, w := bookingContext(t, body, &auth.Identity{ID: "artist-1", Role: "artist"})

	created := &domain.Booking{ID: "b-1", VenueID: "venue-1", ArtistID: "artist-1"}
	mockService.On("CreateBooking", c.Request.Context(), "venue-1", "artist-1", mock.AnythingOfType("booking.CreateBookingInput")).
		Return(created, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"b-1"`)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_CreateUnauthenticated(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := `{"type":"install","startAt":"2025-06-05T16:00:00Z"}`
	c, w := bookingContext(t, body, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_CreateConflict(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := `{"type":"install","startAt":"2025-06-05T16:00:00Z"}`
	c, w := bookingContext(t, body, &auth.Identity{ID: "artist-1", Role: "artist"})

	mockService.On("CreateBooking", c.Request.Context(), "venue-1", "artist-1", mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, domain.ErrSlotTaken)

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
}

func TestBookingHandler_CreateInvalidType(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	body := `{"type":"exhibit","startAt":"2025-06-05T16:00:00Z"}`
	c, w := bookingContext(t, body, &auth.Identity{ID: "artist-1", Role: "artist"})

	mockService.On("CreateBooking", c.Request.Context(), "venue-1", "artist-1", mock.AnythingOfType("booking.CreateBookingInput")).
		Return(nil, domain.Invalid("type", "must be install or pickup"))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_ListForVenue(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "venueId", Value: "venue-1"}}
	c.Request = httptest.NewRequest("GET", "/api/venues/venue-1/bookings", nil)

	bookings := []domain.Booking{{ID: "b-1", VenueID: "venue-1", ArtistID: "artist-1", Type: domain.BookingTypeInstall, Status: domain.BookingStatusConfirmed}}
	mockService.On("ListVenueBookings", c.Request.Context(), "venue-1").Return(bookings, nil)

	handler.ListForVenue(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"b-1"`)
}
