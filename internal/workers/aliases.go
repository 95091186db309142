package workers

import "github.com/olivmath/ultraplonk-verifier/pkg/rabbitmq"

const (
	conversionWorkerServiceName = "ConversionJobs"

	jobQueueConsumerAlias      rabbitmq.ConsumerAlias  = "ConversionJobConsumer"
	resultQueuePublisherAlias  rabbitmq.PublisherAlias = "ConversionResultPublisher"
	failureQueuePublisherAlias rabbitmq.PublisherAlias = "ConversionFailurePublisher"
)
