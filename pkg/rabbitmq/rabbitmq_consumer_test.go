package rabbitmq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestHandleDeliveryRecoversFromHandlerPanic(t *testing.T) {
	consumer := NewConsumer(nil, "conversion.jobs", "")

	calls := 0
	handler := func(d amqp.Delivery) {
		calls++
		panic("poisoned delivery")
	}

	// Each delivery must be contained; the consumer keeps going.
	consumer.handleDelivery(handler, amqp.Delivery{Body: []byte("first")})
	consumer.handleDelivery(handler, amqp.Delivery{Body: []byte("second")})

	if calls != 2 {
		t.Fatalf("handler ran %d times, want 2", calls)
	}
}

func TestHandleDeliveryPassesDeliveryThrough(t *testing.T) {
	consumer := NewConsumer(nil, "conversion.jobs", "")

	var got []byte
	consumer.handleDelivery(func(d amqp.Delivery) {
		got = d.Body
	}, amqp.Delivery{Body: []byte("payload")})

	if string(got) != "payload" {
		t.Fatalf("handler received %q, want %q", got, "payload")
	}
}
