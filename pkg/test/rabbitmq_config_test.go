package test

import (
	"testing"

	"github.com/olivmath/ultraplonk-verifier/pkg/rabbitmq"
)

func TestRabbitmqConfigConvertToDomain(t *testing.T) {
	jsonConfig := rabbitmq.RabbimqConfigJson{
		User:     "guest",
		Password: "guest",
		Host:     "rabbitmq:5672",
		ExchangesConfig: []rabbitmq.RabbitmqExchangeConfigJson{
			{ExchangeName: "conversion", ExchangeType: "direct"},
		},
		QueuesConfig: []rabbitmq.RabbitmqQueueConfigJson{
			{
				QueueName:       "conversion.jobs",
				RoutingKey:      "conversion.jobs",
				ExchangeBinding: "conversion",
				Durable:         true,
			},
		},
		PublishersConfig: []rabbitmq.RabbitmqPublishersConfigJson{
			{PublisherAlias: "ConversionResultPublisher", Exchange: "conversion", RoutingKey: "conversion.results"},
		},
		ConsumersConfig: []rabbitmq.RabbitmqConsumerConfigJson{
			{ConsumerAlias: "ConversionJobConsumer", ConsumerTag: "", QueueName: "conversion.jobs"},
		},
	}

	domain := jsonConfig.ConvertToDomain()

	if domain.User != "guest" || domain.Host != "rabbitmq:5672" {
		t.Errorf("connection settings not carried over: %+v", domain)
	}
	if len(domain.ExchangesConfig) != 1 || domain.ExchangesConfig[0].ExchangeType != rabbitmq.ExchangeDirect {
		t.Errorf("exchange config not converted: %+v", domain.ExchangesConfig)
	}
	if len(domain.QueuesConfig) != 1 || !domain.QueuesConfig[0].Durable {
		t.Errorf("queue config not converted: %+v", domain.QueuesConfig)
	}
	if len(domain.PublishersConfig) != 1 ||
		domain.PublishersConfig[0].PublisherAlias != rabbitmq.PublisherAlias("ConversionResultPublisher") {
		t.Errorf("publisher config not converted: %+v", domain.PublishersConfig)
	}
	if len(domain.ConsumersConfig) != 1 ||
		domain.ConsumersConfig[0].ConsumerAlias != rabbitmq.ConsumerAlias("ConversionJobConsumer") {
		t.Errorf("consumer config not converted: %+v", domain.ConsumersConfig)
	}
}
