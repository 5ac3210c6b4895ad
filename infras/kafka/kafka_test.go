package kafka_test

import (
	"testing"
	"tripdesk/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedPayload struct {
	BookingID string  `json:"booking_id"`
	Amount    float64 `json:"amount"`
}

func TestMessage_RoundTrip(t *testing.T) {
	message := kafka.Message{
		Key:   "b-1",
		Value: capturedPayload{BookingID: "b-1", Amount: 50000},
	}

	raw, err := message.ToKafkaMessage("tripdesk.events")
	require.NoError(t, err)
	assert.Equal(t, "tripdesk.events", raw.Topic)
	assert.Equal(t, []byte("b-1"), raw.Key)

	key, value, err := kafka.DecodeKafkaMessage[capturedPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, "b-1", key)
	assert.Equal(t, 50000.0, value.Amount)
}

func TestMessage_UnmarshalableValue(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("tripdesk.events")
	assert.Error(t, err)
}
