package notify

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/artwalls/artwalls/internal/kafka"
	"go.uber.org/zap"
)

// Sender turns booking events into confirmation notifications. Delivery
// is a log line here; the rendered message carries the calendar links
// the artist-facing UI surfaces after checkout.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	summary := fmt.Sprintf("Artwalls %s at venue %s", event.Kind, event.VenueID)
	s.logger.Info("booking notification",
		zap.String("booking_id", event.BookingID),
		zap.String("artist_id", event.ArtistID),
		zap.String("summary", summary),
		zap.String("google_calendar_url", GoogleCalendarURL(summary, event.StartAt, event.EndAt)),
	)
	return nil
}

// GoogleCalendarURL builds an add-to-calendar link for a booking window.
func GoogleCalendarURL(summary string, startAt, endAt time.Time) string {
	const stamp = "20060102T150405Z"
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", summary)
	q.Set("dates", startAt.UTC().Format(stamp)+"/"+endAt.UTC().Format(stamp))
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// ICS renders a minimal single-event iCalendar payload.
func ICS(uid, summary string, startAt, endAt time.Time) string {
	const stamp = "20060102T150405Z"
	return "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//Artwalls//Bookings//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:" + uid + "\r\n" +
		"DTSTAMP:" + time.Now().UTC().Format(stamp) + "\r\n" +
		"DTSTART:" + startAt.UTC().Format(stamp) + "\r\n" +
		"DTEND:" + endAt.UTC().Format(stamp) + "\r\n" +
		"SUMMARY:" + summary + "\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
}
