package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitmqExchangeType string

func (ret RabbitmqExchangeType) String() string {
	return string(ret)
}

const (
	ExchangeFanout  RabbitmqExchangeType = "fanout"
	ExchangeDirect  RabbitmqExchangeType = "direct"
	ExchangeTopic   RabbitmqExchangeType = "topic"
	ExchangeHeaders RabbitmqExchangeType = "headers"
)

// CreateNewExchange declares an exchange (e.g. "conversion", direct)
func CreateNewExchange(ch *amqp.Channel, exchangeConfig RabbitmqExchangeConfig) error {
	return ch.ExchangeDeclare(
		exchangeConfig.ExchangeName,          // name
		exchangeConfig.ExchangeType.String(), // type
		true,                                 // durable
		false,                                // auto-deleted
		false,                                // internal
		false,                                // no-wait
		nil,                                  // arguments
	)
}

// CreateNewQueue declares a queue with given durability/exclusivity
func CreateNewQueue(ch *amqp.Channel, queueConfig RabbitmqQueueConfig) (amqp.Queue, error) {
	return ch.QueueDeclare(
		queueConfig.QueueName, // name
		queueConfig.Durable,   // durable
		false,                 // delete when unused
		queueConfig.Exclusive, // exclusive
		false,                 // no-wait
		nil,                   // arguments
	)
}

// BindQueueToExchange binds a queue to an exchange with a routing key
func BindQueueToExchange(ch *amqp.Channel, queueConfig RabbitmqQueueConfig) error {
	return ch.QueueBind(
		queueConfig.QueueName,       // queue name
		queueConfig.RoutingKey,      // routing key
		queueConfig.ExchangeBinding, // exchange
		false,
		nil,
	)
}

// SetupTopology declares all configured exchanges and queues with their bindings
func SetupTopology(ch *amqp.Channel, rabbimqConfig RabbitmqConfig) error {
	// declare exchanges
	for _, exchangeConf := range rabbimqConfig.ExchangesConfig {
		if err := CreateNewExchange(ch, exchangeConf); err != nil {
			return err
		}
	}

	// declare queues and bind to exchanges
	for _, queueConf := range rabbimqConfig.QueuesConfig {
		if _, err := CreateNewQueue(ch, queueConf); err != nil {
			return err
		}

		if err := BindQueueToExchange(ch, queueConf); err != nil {
			return err
		}
	}

	return nil
}
