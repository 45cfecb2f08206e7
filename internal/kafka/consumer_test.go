package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	messages []kafkaGo.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafkaGo.Message, error) {
	if len(r.messages) == 0 {
		return kafkaGo.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) Close() error { return nil }

func eventMessage(t *testing.T, event BookingEvent) kafkaGo.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkaGo.Message{Key: []byte(event.BookingID), Value: payload}
}

func TestConsume_DeliversDecodedEvents(t *testing.T) {
	sent := BookingEvent{
		Type:      "booking_created",
		BookingID: "b-1",
		VenueID:   "venue-1",
		ArtistID:  "artist-1",
		Kind:      "install",
		StartAt:   time.Date(2025, 6, 5, 16, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 6, 5, 16, 30, 0, 0, time.UTC),
	}
	consumer := &Consumer{
		reader: &fakeReader{messages: []kafkaGo.Message{eventMessage(t, sent)}},
		logger: zap.NewNop(),
	}

	var received []BookingEvent
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		received = append(received, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []BookingEvent{sent}, received)
}

func TestConsume_SkipsUndecodablePayloads(t *testing.T) {
	good := BookingEvent{Type: "booking_created", BookingID: "b-2", VenueID: "venue-1"}
	consumer := &Consumer{
		reader: &fakeReader{messages: []kafkaGo.Message{
			{Key: []byte("junk"), Value: []byte("not json")},
			eventMessage(t, good),
		}},
		logger: zap.NewNop(),
	}

	var received []BookingEvent
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		received = append(received, event)
		return nil
	})

	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []BookingEvent{good}, received)
}

func TestConsume_HandlerErrorStopsLoop(t *testing.T) {
	consumer := &Consumer{
		reader: &fakeReader{messages: []kafkaGo.Message{
			eventMessage(t, BookingEvent{BookingID: "b-3"}),
			eventMessage(t, BookingEvent{BookingID: "b-4"}),
		}},
		logger: zap.NewNop(),
	}

	handlerErr := errors.New("notification failed")
	calls := 0
	err := consumer.Consume(context.Background(), func(ctx context.Context, event BookingEvent) error {
		calls++
		return handlerErr
	})

	assert.ErrorIs(t, err, handlerErr)
	assert.Equal(t, 1, calls)
}
